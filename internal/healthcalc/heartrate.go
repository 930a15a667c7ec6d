package healthcalc

import (
	"fmt"

	"taafi-health-tools/internal/models"
)

const defaultRestingHR = 60

var fitnessMHRScale = map[models.FitnessLevel]float64{
	models.FitnessBeginner:     0.9,
	models.FitnessIntermediate: 0.95,
	models.FitnessAdvanced:     1.0,
	models.FitnessAthlete:      1.05,
}

var fitnessAdvice = map[models.FitnessLevel][]string{
	models.FitnessBeginner: {
		"ابدأ بالتمرين في منطقة حرق الدهون 20-30 دقيقة",
		"زد مدة التمرين تدريجياً كل أسبوع",
	},
	models.FitnessIntermediate: {
		"امزج بين تمارين حرق الدهون وتمارين القلب خلال الأسبوع",
		"خصص يوماً واحداً على الأقل للراحة",
	},
	models.FitnessAdvanced: {
		"أضف تمارين متقطعة عالية الشدة مرتين أسبوعياً",
		"راقب معدل النبض أثناء الراحة لاكتشاف الإجهاد",
	},
	models.FitnessAthlete: {
		"لا تتجاوز منطقة الذروة أكثر من 10% من وقت التدريب",
		"اهتم بالتعافي والنوم بين الحصص التدريبية",
	},
}

// Karvonen intensity bands as fractions of heart-rate reserve.
var (
	fatBurnBand = [2]float64{0.50, 0.70}
	cardioBand  = [2]float64{0.70, 0.85}
	peakBand    = [2]float64{0.85, 0.95}
)

// CalculateHeartRate computes training zones with the Karvonen formula.
// restingHR <= 0 means unknown and falls back to 60 bpm. A resting rate at
// or above the adjusted maximum leaves no reserve and is rejected.
func CalculateHeartRate(age int, fitness models.FitnessLevel, restingHR int, medication models.HeartMedication) (models.HeartRateResult, error) {
	if restingHR <= 0 {
		restingHR = defaultRestingHR
	}

	mhr := float64(220 - age)
	if scale, ok := fitnessMHRScale[fitness]; ok {
		mhr *= scale
	}
	switch medication {
	case models.MedicationBetaBlockers:
		mhr *= 0.8
	case models.MedicationStimulants:
		mhr *= 1.1
	}

	resting := float64(restingHR)
	if resting >= mhr {
		return models.HeartRateResult{}, invalidf("resting heart rate %d is not below the maximum of %d", restingHR, roundInt(mhr))
	}
	zone := func(band [2]float64) models.IntRange {
		return models.IntRange{
			Min: roundInt(resting + band[0]*(mhr-resting)),
			Max: roundInt(resting + band[1]*(mhr-resting)),
		}
	}

	recommendations := []string{
		"قم بالإحماء 5-10 دقائق قبل الدخول في منطقة التمرين",
		"توقف فوراً عند الشعور بألم في الصدر أو دوخة",
	}
	recommendations = append(recommendations, fitnessAdvice[fitness]...)
	if medication == models.MedicationBetaBlockers {
		recommendations = append(recommendations, "حاصرات بيتا تخفض النبض، اعتمد على مقياس الجهد المحسوس واستشر طبيبك")
	}

	return models.HeartRateResult{
		MaxHR:     roundInt(mhr),
		RestingHR: fmt.Sprintf("%d نبضة/دقيقة", restingHR),
		TargetZones: models.HeartRateZones{
			FatBurn: zone(fatBurnBand),
			Cardio:  zone(cardioBand),
			Peak:    zone(peakBand),
		},
		Recommendations: recommendations,
	}, nil
}
