package healthcalc

import (
	"math"

	"taafi-health-tools/internal/models"
)

type drugRule struct {
	mgPerKg        float64
	maxSingleMg    float64
	dosesPerDay    int
	maxDailyMg     float64
	syrupMgPer5ML  float64
	minAgeMonths   int
	ageRestriction string
}

var drugRules = map[models.Drug]drugRule{
	models.DrugParacetamol: {
		mgPerKg:       15,
		maxSingleMg:   1000,
		dosesPerDay:   4,
		maxDailyMg:    4000,
		syrupMgPer5ML: 120,
	},
	models.DrugIbuprofen: {
		mgPerKg:        10,
		maxSingleMg:    400,
		dosesPerDay:    3,
		maxDailyMg:     1200,
		syrupMgPer5ML:  100,
		minAgeMonths:   6,
		ageRestriction: "لا يُعطى الإيبوبروفين للرضع أقل من 6 أشهر",
	},
}

func (r drugRule) dose(weightKg float64) (single, daily int, syrupML float64) {
	s := math.Min(weightKg*r.mgPerKg, r.maxSingleMg)
	d := math.Min(s*float64(r.dosesPerDay), r.maxDailyMg)
	single = roundInt(s)
	daily = roundInt(d)
	syrupML = round1(s / r.syrupMgPer5ML * 5)
	return single, daily, syrupML
}

// CalculateDosage computes paracetamol and ibuprofen doses for a child.
// medication selects which drug the caller is asking about; both are always
// computed. Ibuprofen doses are withheld below six months of age.
func CalculateDosage(weightKg float64, ageMonths int, medication models.Drug) (models.MedicationDosageResult, error) {
	if _, ok := drugRules[medication]; !ok {
		return models.MedicationDosageResult{}, invalidf("unknown medication %q", medication)
	}

	para := drugRules[models.DrugParacetamol]
	single, daily, syrup := para.dose(weightKg)
	result := models.MedicationDosageResult{
		Medication: medication,
		Paracetamol: models.DrugDose{
			SingleDose:   single,
			MaxDailyDose: daily,
			SyrupML:      syrup,
			DosesPerDay:  para.dosesPerDay,
		},
		Warnings:        copyStrings(dosageWarnings),
		Recommendations: copyStrings(dosageAdvice),
		EmergencyInfo:   copyStrings(dosageEmergencyInfo),
	}

	ibu := drugRules[models.DrugIbuprofen]
	if ageMonths < ibu.minAgeMonths {
		result.Ibuprofen.AgeRestriction = true
		result.Warnings = append(result.Warnings, ibu.ageRestriction)
	} else {
		single, daily, syrup := ibu.dose(weightKg)
		perDay := ibu.dosesPerDay
		result.Ibuprofen = models.IbuprofenDose{
			SingleDose:   &single,
			MaxDailyDose: &daily,
			SyrupML:      &syrup,
			DosesPerDay:  &perDay,
		}
		result.Warnings = append(result.Warnings, "يؤخذ الإيبوبروفين بعد الأكل ويُتجنب عند الجفاف أو أمراض الكلى")
	}

	if ageMonths < 3 {
		result.Warnings = append(result.Warnings, "الرضع أقل من 3 أشهر يحتاجون تقييم الطبيب قبل إعطاء أي خافض حرارة")
	}
	return result, nil
}
