package healthcalc

import (
	"taafi-health-tools/internal/models"
)

var waistAdvice = map[models.RiskLevel][]string{
	models.RiskLow: {
		"محيط خصرك ضمن المعدل الصحي أو أقل منه",
		"تأكد من حصولك على تغذية كافية",
	},
	models.RiskModerate: {
		"محيط خصرك في النطاق الصحي، حافظ عليه",
		"استمر في النشاط البدني المنتظم",
	},
	models.RiskHigh: {
		"تراكم الدهون حول البطن يزيد خطر أمراض القلب والسكري",
		"قلل السكريات والنشويات المكررة",
		"مارس التمارين الهوائية 30 دقيقة يومياً",
	},
	models.RiskVeryHigh: {
		"خطر مرتفع جداً لأمراض القلب والسكري من النوع الثاني",
		"راجع الطبيب لفحص السكر والدهون وضغط الدم",
		"ابدأ برنامجاً لإنقاص الوزن بإشراف مختص",
	},
}

// CalculateWaistToHeight classifies central obesity risk by ratio alone.
// age and gender are accepted for later refinement of the thresholds.
func CalculateWaistToHeight(waistCm, heightCm float64, age int, gender models.Gender) models.WaistResult {
	ratio := waistCm / heightCm
	var level models.RiskLevel
	switch {
	case ratio < 0.4:
		level = models.RiskLow
	case ratio < 0.5:
		level = models.RiskModerate
	case ratio < 0.6:
		level = models.RiskHigh
	default:
		level = models.RiskVeryHigh
	}

	return models.WaistResult{
		WaistToHeightRatio: round3(ratio),
		RiskLevel:          level,
		IdealRange: models.Range{
			Min: round1(heightCm * 0.35),
			Max: round1(heightCm * 0.45),
		},
		Recommendations: copyStrings(waistAdvice[level]),
	}
}
