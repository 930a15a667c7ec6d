package healthcalc

import (
	"taafi-health-tools/internal/models"
)

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// Macro split as share of target calories, and energy per gram.
const (
	proteinShare = 0.30
	carbsShare   = 0.40
	fatShare     = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// CalculateCalories uses Mifflin-St Jeor. Any gender other than male takes
// the female constant; unknown activity levels count as sedentary.
func CalculateCalories(weightKg, heightCm float64, age int, gender models.Gender, activity models.ActivityLevel, goal models.Goal) models.CalorieResult {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[activity]
	if !ok {
		multiplier = activityMultipliers[models.ActivitySedentary]
	}
	tdee := bmr * multiplier

	target := tdee
	switch goal {
	case models.GoalLose:
		target = tdee * 0.85
	case models.GoalGain:
		target = tdee * 1.15
	}

	return models.CalorieResult{
		BMR:            roundInt(bmr),
		TDEE:           roundInt(tdee),
		TargetCalories: roundInt(target),
		Macros: models.Macros{
			Protein: roundInt(target * proteinShare / kcalPerGramProtein),
			Carbs:   roundInt(target * carbsShare / kcalPerGramCarbs),
			Fats:    roundInt(target * fatShare / kcalPerGramFat),
		},
		MealPlan: copyStrings(sampleMealPlan),
	}
}
