package healthcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taafi-health-tools/internal/models"
)

func TestCalculatePregnancy(t *testing.T) {
	r, err := CalculatePregnancy(date(2024, 1, 1), date(2024, 3, 1), 28)
	require.NoError(t, err)

	assert.Equal(t, date(2024, 10, 7), r.DueDate)
	assert.Equal(t, date(2024, 1, 15), r.OvulationDate)
	assert.Equal(t, 8, r.WeeksPregnant)
	assert.Equal(t, 4, r.ExtraDays)
	assert.Equal(t, 1, r.Trimester)
	assert.Equal(t, 220, r.DaysRemaining)
	assert.NotEmpty(t, r.Milestones)
}

func TestCalculatePregnancy_FuturePeriod(t *testing.T) {
	_, err := CalculatePregnancy(date(2024, 3, 2), date(2024, 3, 1), 28)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTrimester(t *testing.T) {
	assert.Equal(t, 1, trimester(0))
	assert.Equal(t, 1, trimester(13))
	assert.Equal(t, 2, trimester(14))
	assert.Equal(t, 2, trimester(27))
	assert.Equal(t, 3, trimester(28))
	assert.Equal(t, 3, trimester(41))
}

func TestCalculateOvulation(t *testing.T) {
	r := CalculateOvulation(date(2024, 1, 1), 28, 5)

	assert.Equal(t, date(2024, 1, 15), r.OvulationDate)
	assert.Equal(t, date(2024, 1, 10), r.FertilityWindow.Start)
	assert.Equal(t, date(2024, 1, 16), r.FertilityWindow.End)
	assert.Equal(t, date(2024, 1, 29), r.NextPeriod)
	assert.Equal(t, date(2024, 1, 5), r.PeriodEnd)
	assert.False(t, r.IrregularCycle)

	assert.True(t, CalculateOvulation(date(2024, 1, 1), 40, 5).IrregularCycle)
	assert.True(t, CalculateOvulation(date(2024, 1, 1), 20, 5).IrregularCycle)
	assert.False(t, CalculateOvulation(date(2024, 1, 1), 35, 5).IrregularCycle)
}

func TestRecommendSpecialty_Emergencies(t *testing.T) {
	tests := []struct {
		name string
		in   models.TriageInput
	}{
		{"unbearable", models.TriageInput{PrimarySymptom: "headache", Severity: models.SeverityUnbearable, BodyPart: "head"}},
		{"severe breathing", models.TriageInput{PrimarySymptom: "breathing", Severity: models.SeveritySevere, BodyPart: "chest"}},
		{"severe chest pain", models.TriageInput{PrimarySymptom: "pain", Severity: models.SeveritySevere, BodyPart: "chest"}},
		{"fainting", models.TriageInput{PrimarySymptom: "dizziness", Severity: models.SeverityMild, AdditionalSymptoms: "حدث لي إغماء صباح اليوم"}},
		{"english keyword", models.TriageInput{PrimarySymptom: "fever", Severity: models.SeverityMild, AdditionalSymptoms: "He Passed Out twice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RecommendSpecialty(tt.in)
			assert.Equal(t, models.UrgencyEmergency, r.Urgency)
			assert.Equal(t, SpecialtyEmergency, r.RecommendedSpecialty)
			assert.NotEmpty(t, r.FirstAid)
			assert.Empty(t, r.QuestionsForDoctor)
		})
	}
}

func TestRecommendSpecialty_Routing(t *testing.T) {
	tests := []struct {
		name      string
		in        models.TriageInput
		specialty string
		urgency   models.Urgency
	}{
		{"abdominal pain", models.TriageInput{PrimarySymptom: "pain", BodyPart: "abdomen", Severity: models.SeverityMild, Duration: models.DurationHours}, "الجهاز الهضمي", models.UrgencyLow},
		{"moderate chest pain", models.TriageInput{PrimarySymptom: "pain", BodyPart: "chest", Severity: models.SeverityModerate, Duration: models.DurationDays}, "أمراض القلب", models.UrgencyModerate},
		{"mild but weeks", models.TriageInput{PrimarySymptom: "rash", BodyPart: "skin", Severity: models.SeverityMild, Duration: models.DurationWeeks}, "الجلدية", models.UrgencyModerate},
		{"severe back pain", models.TriageInput{PrimarySymptom: "pain", BodyPart: "back", Severity: models.SeveritySevere, Duration: models.DurationDays}, "العظام", models.UrgencyHigh},
		{"body part only", models.TriageInput{PrimarySymptom: "other", BodyPart: "eyes", Severity: models.SeverityMild, Duration: models.DurationDays}, "طب العيون", models.UrgencyLow},
		{"symptom only", models.TriageInput{PrimarySymptom: "anxiety", BodyPart: "general", Severity: models.SeverityMild, Duration: models.DurationDays}, "الطب النفسي", models.UrgencyLow},
		{"fallback", models.TriageInput{PrimarySymptom: "fatigue", BodyPart: "general", Severity: models.SeverityMild, Duration: models.DurationDays}, SpecialtyFamily, models.UrgencyLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RecommendSpecialty(tt.in)
			assert.Equal(t, tt.specialty, r.RecommendedSpecialty)
			assert.Equal(t, tt.urgency, r.Urgency)
			assert.Len(t, r.QuestionsForDoctor, 5)
			assert.Empty(t, r.FirstAid)
			assert.NotEmpty(t, r.Reasoning)
		})
	}
}
