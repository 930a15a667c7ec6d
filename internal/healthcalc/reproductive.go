package healthcalc

import (
	"time"

	"taafi-health-tools/internal/models"
)

const (
	gestationDays     = 280
	lutealPhaseDays   = 14
	minRegularCycle   = 21
	maxRegularCycle   = 35
	fertileDaysBefore = 5
	fertileDaysAfter  = 1
)

var trimesterMilestones = map[int][]string{
	1: {
		"تكوّن القلب والجهاز العصبي للجنين",
		"أول زيارة متابعة وتحاليل الحمل الأساسية",
		"سونار الأسبوع 12 لفحص الشفافية القفوية",
	},
	2: {
		"الشعور بحركة الجنين بين الأسبوع 18 و 22",
		"السونار التفصيلي في الأسبوع 20",
		"تحليل سكر الحمل بين الأسبوع 24 و 28",
	},
	3: {
		"زيادة نمو الجنين واكتمال الرئتين",
		"متابعة أسبوعية بعد الأسبوع 36",
		"تجهيز حقيبة الولادة",
	},
}

func trimester(weeks int) int {
	switch {
	case weeks <= 13:
		return 1
	case weeks <= 27:
		return 2
	default:
		return 3
	}
}

// CalculatePregnancy projects the due date from the first day of the last
// period.
func CalculatePregnancy(lastPeriod, today time.Time, cycleLength int) (models.PregnancyResult, error) {
	if day(lastPeriod).After(day(today)) {
		return models.PregnancyResult{}, invalidf("last period %s is in the future", day(lastPeriod).Format("2006-01-02"))
	}

	elapsed := daysBetween(lastPeriod, today)
	weeks := elapsed / 7
	due := addDays(lastPeriod, gestationDays)
	tri := trimester(weeks)

	tips := copyStrings(pregnancyTips)
	if cycleLength < minRegularCycle || cycleLength > maxRegularCycle {
		tips = append(tips, "دورتك غير منتظمة، قد يحدد السونار المبكر موعد الولادة بدقة أكبر")
	}

	return models.PregnancyResult{
		DueDate:       due,
		WeeksPregnant: weeks,
		ExtraDays:     elapsed % 7,
		Trimester:     tri,
		DaysRemaining: daysBetween(today, due),
		OvulationDate: addDays(lastPeriod, cycleLength-lutealPhaseDays),
		Milestones:    copyStrings(trimesterMilestones[tri]),
		Tips:          tips,
	}, nil
}

// CalculateOvulation projects the current cycle's ovulation day and fertile
// window.
func CalculateOvulation(lastPeriod time.Time, cycleLength, periodLength int) models.OvulationResult {
	ovulation := addDays(lastPeriod, cycleLength-lutealPhaseDays)
	irregular := cycleLength < minRegularCycle || cycleLength > maxRegularCycle

	tips := copyStrings(ovulationTips)
	if irregular {
		tips = append(tips, irregularCycleTip)
	}

	return models.OvulationResult{
		OvulationDate: ovulation,
		FertilityWindow: models.DateRange{
			Start: ovulation.AddDate(0, 0, -fertileDaysBefore),
			End:   ovulation.AddDate(0, 0, fertileDaysAfter),
		},
		NextPeriod:     addDays(lastPeriod, cycleLength),
		PeriodEnd:      addDays(lastPeriod, periodLength-1),
		IrregularCycle: irregular,
		Tips:           tips,
	}
}
