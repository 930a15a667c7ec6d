package healthcalc

import (
	"fmt"
	"strings"
	"time"

	"taafi-health-tools/internal/models"
)

// DueSoonWindowDays is how far ahead a vaccine counts as due.
const DueSoonWindowDays = 30

type vaccineDef struct {
	ID          string
	Name        string
	ArabicName  string
	Description string
	AgeDisplay  string
	AgeMonths   int
	Category    models.VaccineCategory
}

var vaccineSchedule = []vaccineDef{
	{"bcg", "BCG", "الدرن (BCG)", "الوقاية من السل", "عند الولادة", 0, models.VaccineMandatory},
	{"hepb-1", "Hepatitis B 1", "التهاب الكبد الوبائي ب - الجرعة الأولى", "الوقاية من التهاب الكبد ب", "عند الولادة", 0, models.VaccineMandatory},
	{"hexa-1", "Hexavalent 1", "السداسي - الجرعة الأولى", "الدفتيريا والتيتانوس والسعال الديكي وشلل الأطفال والمستدمية النزلية والتهاب الكبد ب", "شهرين", 2, models.VaccineMandatory},
	{"pcv-1", "Pneumococcal 1", "المكورات الرئوية - الجرعة الأولى", "الوقاية من الالتهاب الرئوي والسحايا", "شهرين", 2, models.VaccineMandatory},
	{"rota-1", "Rotavirus 1", "فيروس الروتا - الجرعة الأولى", "الوقاية من النزلات المعوية الشديدة", "شهرين", 2, models.VaccineOptional},
	{"hexa-2", "Hexavalent 2", "السداسي - الجرعة الثانية", "استكمال المناعة الأساسية", "4 أشهر", 4, models.VaccineMandatory},
	{"pcv-2", "Pneumococcal 2", "المكورات الرئوية - الجرعة الثانية", "الوقاية من الالتهاب الرئوي والسحايا", "4 أشهر", 4, models.VaccineMandatory},
	{"rota-2", "Rotavirus 2", "فيروس الروتا - الجرعة الثانية", "الوقاية من النزلات المعوية الشديدة", "4 أشهر", 4, models.VaccineOptional},
	{"hexa-3", "Hexavalent 3", "السداسي - الجرعة الثالثة", "استكمال المناعة الأساسية", "6 أشهر", 6, models.VaccineMandatory},
	{"opv", "OPV", "شلل الأطفال الفموي", "جرعة داعمة ضد شلل الأطفال", "6 أشهر", 6, models.VaccineMandatory},
	{"flu", "Influenza", "الإنفلونزا الموسمية", "تُعطى سنوياً خلال موسم الإنفلونزا", "6 أشهر", 6, models.VaccineOptional},
	{"measles", "Measles", "الحصبة", "الوقاية من الحصبة", "9 أشهر", 9, models.VaccineMandatory},
	{"mmr-1", "MMR 1", "الثلاثي الفيروسي - الجرعة الأولى", "الحصبة والنكاف والحصبة الألمانية", "12 شهراً", 12, models.VaccineMandatory},
	{"pcv-booster", "Pneumococcal booster", "المكورات الرئوية - الجرعة المنشطة", "جرعة منشطة", "12 شهراً", 12, models.VaccineMandatory},
	{"menacwy", "Meningococcal ACWY", "الحمى الشوكية الرباعي", "الوقاية من التهاب السحايا", "12 شهراً", 12, models.VaccineOptional},
	{"dtap-booster", "DTaP booster", "الثلاثي البكتيري - جرعة منشطة", "الدفتيريا والتيتانوس والسعال الديكي", "18 شهراً", 18, models.VaccineMandatory},
	{"mmr-2", "MMR 2", "الثلاثي الفيروسي - الجرعة الثانية", "الحصبة والنكاف والحصبة الألمانية", "18 شهراً", 18, models.VaccineMandatory},
	{"varicella-1", "Varicella 1", "الجديري المائي - الجرعة الأولى", "الوقاية من الجديري المائي", "18 شهراً", 18, models.VaccineOptional},
	{"hepa-1", "Hepatitis A 1", "التهاب الكبد الوبائي أ - الجرعة الأولى", "الوقاية من التهاب الكبد أ", "18 شهراً", 18, models.VaccineOptional},
	{"hepa-2", "Hepatitis A 2", "التهاب الكبد الوبائي أ - الجرعة الثانية", "استكمال الوقاية من التهاب الكبد أ", "24 شهراً", 24, models.VaccineOptional},
	{"dtap-ipv", "DTaP-IPV", "الرباعي - جرعة ما قبل المدرسة", "جرعة منشطة قبل دخول المدرسة", "4 سنوات", 48, models.VaccineMandatory},
	{"varicella-2", "Varicella 2", "الجديري المائي - الجرعة الثانية", "استكمال الوقاية من الجديري المائي", "4 سنوات", 48, models.VaccineOptional},
}

// VaccineIDs lists the ids accepted in the completed set.
func VaccineIDs() []string {
	ids := make([]string, 0, len(vaccineSchedule))
	for _, v := range vaccineSchedule {
		ids = append(ids, v.ID)
	}
	return ids
}

// GenerateVaccinationSchedule lays the schedule over a birth date. completed
// holds ids the caller has marked as given; it only affects overdue status.
func GenerateVaccinationSchedule(birthDate, today time.Time, completed []string) (models.VaccinationResult, error) {
	birth, now := day(birthDate), day(today)
	if birth.After(now) {
		return models.VaccinationResult{}, invalidf("birth date %s is in the future", birth.Format("2006-01-02"))
	}

	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	result := models.VaccinationResult{
		Schedule:        make([]models.VaccineEntry, 0, len(vaccineSchedule)),
		TotalCount:      len(vaccineSchedule),
		Recommendations: copyStrings(vaccinationAdvice),
	}
	dueSoonLimit := now.AddDate(0, 0, DueSoonWindowDays)

	var overdueMandatory, overdueOptional []string
	nextIdx := -1
	for _, v := range vaccineSchedule {
		due := birth.AddDate(0, v.AgeMonths, 0)
		entry := models.VaccineEntry{
			ID:          v.ID,
			Name:        v.Name,
			ArabicName:  v.ArabicName,
			Description: v.Description,
			AgeDisplay:  v.AgeDisplay,
			DueDate:     due,
			Category:    v.Category,
			IsCompleted: done[v.ID],
		}
		entry.IsOverdue = due.Before(now) && !entry.IsCompleted
		entry.IsDue = !entry.IsCompleted && !due.Before(now) && !due.After(dueSoonLimit)

		if !due.After(now) {
			result.CompletedCount++
		}
		if entry.IsOverdue {
			if v.Category == models.VaccineMandatory {
				overdueMandatory = append(overdueMandatory, v.ArabicName)
			} else {
				overdueOptional = append(overdueOptional, v.ArabicName)
			}
		}

		result.Schedule = append(result.Schedule, entry)
		if due.After(now) && (nextIdx < 0 || due.Before(result.Schedule[nextIdx].DueDate)) {
			nextIdx = len(result.Schedule) - 1
		}
	}

	if nextIdx >= 0 {
		next := result.Schedule[nextIdx]
		result.NextDue = &next
	}

	if len(overdueMandatory) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("تطعيمات إجبارية متأخرة يجب استكمالها فوراً: %s", strings.Join(overdueMandatory, "، ")))
	}
	if len(overdueOptional) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("تطعيمات اختيارية فات موعدها، ناقشها مع طبيب الأطفال: %s", strings.Join(overdueOptional, "، ")))
	}
	return result, nil
}
