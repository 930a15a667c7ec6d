package healthcalc

import (
	"taafi-health-tools/internal/models"
)

const (
	BMICategoryUnderweight = "نحافة"
	BMICategoryNormal      = "وزن طبيعي"
	BMICategoryOverweight  = "زيادة في الوزن"
	BMICategoryObese       = "سمنة"
)

var bmiAdvice = map[string][]string{
	BMICategoryUnderweight: {
		"زيادة السعرات الحرارية تدريجياً من مصادر صحية",
		"تناول وجبات صغيرة متكررة غنية بالبروتين",
		"ممارسة تمارين المقاومة لبناء الكتلة العضلية",
		"استشارة أخصائي تغذية لوضع خطة مناسبة",
	},
	BMICategoryNormal: {
		"حافظ على نظامك الغذائي المتوازن",
		"مارس النشاط البدني 150 دقيقة أسبوعياً",
		"اشرب كمية كافية من الماء يومياً",
		"احرص على النوم من 7 إلى 8 ساعات",
	},
	BMICategoryOverweight: {
		"قلل السكريات والدهون المشبعة",
		"زد من تناول الخضروات والألياف",
		"مارس المشي السريع 30 دقيقة يومياً",
		"راقب حجم الحصص الغذائية",
	},
	BMICategoryObese: {
		"استشر طبيباً لتقييم حالتك الصحية",
		"ابدأ ببرنامج غذائي تحت إشراف أخصائي تغذية",
		"افحص ضغط الدم والسكر والدهون بانتظام",
		"ابدأ بنشاط بدني خفيف وزده تدريجياً",
	},
}

// CalculateBMI takes weight in kg and height in cm.
func CalculateBMI(weightKg, heightCm float64) models.BMIResult {
	h := heightCm / 100
	bmi := weightKg / (h * h)

	category := BMICategory(bmi)
	return models.BMIResult{
		BMI:      round1(bmi),
		Category: category,
		IdealWeight: models.Range{
			Min: round1(18.5 * h * h),
			Max: round1(24.9 * h * h),
		},
		Recommendations: copyStrings(bmiAdvice[category]),
	}
}

// BMICategory classifies an unrounded BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMICategoryUnderweight
	case bmi < 25:
		return BMICategoryNormal
	case bmi < 30:
		return BMICategoryOverweight
	default:
		return BMICategoryObese
	}
}
