package healthcalc

import (
	"fmt"

	"taafi-health-tools/internal/models"
)

const waterMLPerKg = 35

var waterActivityMultipliers = map[models.ActivityLevel]float64{
	models.ActivityLight:      1.2,
	models.ActivityModerate:   1.3,
	models.ActivityActive:     1.4,
	models.ActivityVeryActive: 1.5,
}

var climateMultipliers = map[models.Climate]float64{
	models.ClimateHot:   1.2,
	models.ClimateHumid: 1.1,
}

var pregnancyExtraML = map[models.PregnancyState]float64{
	models.PregnancyPregnant:      300,
	models.PregnancyBreastfeeding: 700,
}

var conditionAdjustML = map[models.MedicalCondition]float64{
	models.ConditionFever:    500,
	models.ConditionDiabetes: 400,
	models.ConditionKidney:   -300,
	models.ConditionHeart:    -200,
}

var conditionLabels = map[models.MedicalCondition]string{
	models.ConditionFever:    "الحمى",
	models.ConditionDiabetes: "السكري",
	models.ConditionKidney:   "أمراض الكلى (تقليل حسب إرشاد الطبيب)",
	models.ConditionHeart:    "أمراض القلب (تقليل حسب إرشاد الطبيب)",
}

// CalculateWater returns the daily fluid target in ml. Adjustments apply in a
// fixed order: age, activity, climate, pregnancy, medical condition.
func CalculateWater(weightKg float64, age int, activity models.ActivityLevel, climate models.Climate, pregnancy models.PregnancyState, condition models.MedicalCondition) models.WaterResult {
	water := weightKg * waterMLPerKg
	factors := []string{fmt.Sprintf("الاحتياج الأساسي: %d مل (35 مل لكل كجم)", roundInt(water))}

	if age < 18 {
		water *= 1.1
		factors = append(factors, "العمر أقل من 18 سنة: +10%")
	}
	if m, ok := waterActivityMultipliers[activity]; ok {
		water *= m
		factors = append(factors, fmt.Sprintf("النشاط البدني: +%d%%", roundInt((m-1)*100)))
	}
	if m, ok := climateMultipliers[climate]; ok {
		water *= m
		factors = append(factors, fmt.Sprintf("المناخ: +%d%%", roundInt((m-1)*100)))
	}
	switch pregnancy {
	case models.PregnancyPregnant:
		water += pregnancyExtraML[pregnancy]
		factors = append(factors, "الحمل: +300 مل")
	case models.PregnancyBreastfeeding:
		water += pregnancyExtraML[pregnancy]
		factors = append(factors, "الرضاعة الطبيعية: +700 مل")
	}
	if adj, ok := conditionAdjustML[condition]; ok {
		water += adj
		factors = append(factors, fmt.Sprintf("%s: %+d مل", conditionLabels[condition], roundInt(adj)))
	}

	return models.WaterResult{
		DailyWater: roundInt(water),
		Schedule:   copyStrings(drinkingSchedule),
		Factors:    factors,
	}
}
