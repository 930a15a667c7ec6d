package healthcalc

import (
	"fmt"

	"taafi-health-tools/internal/models"
)

var kcalPerStep = map[models.WalkingIntensity]float64{
	models.IntensitySlow:     0.04,
	models.IntensityModerate: 0.05,
	models.IntensityFast:     0.06,
	models.IntensityVeryFast: 0.08,
}

const referenceWeightKg = 70

// CalculateStepsCalories estimates energy burnt walking. Unknown intensities
// count as moderate.
func CalculateStepsCalories(steps int, weightKg, heightCm float64, age int, gender models.Gender, intensity models.WalkingIntensity) models.StepsCaloriesResult {
	stride := heightCm * 0.413
	if gender == models.GenderMale {
		stride = heightCm * 0.415
	}
	perStep, ok := kcalPerStep[intensity]
	if !ok {
		perStep = kcalPerStep[models.IntensityModerate]
	}

	weekly := make([]models.DayProgress, 0, len(weekdayStepFactors))
	for _, d := range weekdayStepFactors {
		weekly = append(weekly, models.DayProgress{Day: d.Day, Steps: roundInt(float64(steps) * d.Factor)})
	}

	recommendations := copyStrings(stepsAdvice)
	if steps < 5000 {
		recommendations = append(recommendations, "نشاطك منخفض، حاول زيادة خطواتك 1000 خطوة كل أسبوع")
	} else if steps >= 10000 {
		recommendations = append(recommendations, fmt.Sprintf("ممتاز! %d خطوة تحقق الهدف اليومي الموصى به", steps))
	}

	return models.StepsCaloriesResult{
		CaloriesBurned:  roundInt(float64(steps) * perStep * weightKg / referenceWeightKg),
		Distance:        round2(float64(steps) * stride / 100000),
		ActiveMinutes:   roundInt(float64(steps) / 100),
		Recommendations: recommendations,
		WeeklyProgress:  weekly,
	}
}
