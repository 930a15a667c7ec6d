package healthcalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taafi-health-tools/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateVaccinationSchedule_FourMonthOld(t *testing.T) {
	r, err := GenerateVaccinationSchedule(date(2024, 1, 15), date(2024, 6, 1), nil)
	require.NoError(t, err)

	assert.Equal(t, 22, r.TotalCount)
	assert.Len(t, r.Schedule, 22)
	assert.Equal(t, 8, r.CompletedCount)

	require.NotNil(t, r.NextDue)
	assert.Equal(t, "hexa-3", r.NextDue.ID)
	assert.Equal(t, date(2024, 7, 15), r.NextDue.DueDate)

	assert.Equal(t, date(2024, 1, 15), r.Schedule[0].DueDate)
	assert.True(t, r.Schedule[0].IsOverdue)
	require.Len(t, r.Warnings, 2)
	assert.Contains(t, r.Warnings[0], "إجبارية")
	assert.Contains(t, r.Warnings[1], "اختيارية")
}

func TestGenerateVaccinationSchedule_CompletedClearsOverdue(t *testing.T) {
	given := []string{"bcg", "hepb-1", "hexa-1", "pcv-1", "hexa-2", "pcv-2"}
	r, err := GenerateVaccinationSchedule(date(2024, 1, 15), date(2024, 6, 1), given)
	require.NoError(t, err)

	var overdue []string
	for _, e := range r.Schedule {
		if e.IsOverdue {
			overdue = append(overdue, e.ID)
		}
	}
	assert.Equal(t, []string{"rota-1", "rota-2"}, overdue)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "اختيارية")
}

func TestGenerateVaccinationSchedule_DueSoonWindow(t *testing.T) {
	r, err := GenerateVaccinationSchedule(date(2024, 1, 15), date(2024, 7, 1), nil)
	require.NoError(t, err)

	due := map[string]bool{}
	for _, e := range r.Schedule {
		if e.IsDue {
			due[e.ID] = true
			assert.False(t, e.IsOverdue)
		}
	}
	assert.Equal(t, map[string]bool{"hexa-3": true, "opv": true, "flu": true}, due)
}

func TestGenerateVaccinationSchedule_DueTodayIsNotOverdue(t *testing.T) {
	r, err := GenerateVaccinationSchedule(date(2024, 3, 10), date(2024, 3, 10), nil)
	require.NoError(t, err)

	assert.False(t, r.Schedule[0].IsOverdue)
	assert.True(t, r.Schedule[0].IsDue)
	assert.Equal(t, 2, r.CompletedCount)
	assert.Empty(t, r.Warnings)
}

func TestGenerateVaccinationSchedule_Invariants(t *testing.T) {
	birth := date(2022, 5, 20)
	for today := birth; today.Before(date(2027, 1, 1)); today = today.AddDate(0, 0, 17) {
		r, err := GenerateVaccinationSchedule(birth, today, nil)
		require.NoError(t, err)

		require.LessOrEqual(t, r.CompletedCount, r.TotalCount)
		if r.NextDue == nil {
			for _, e := range r.Schedule {
				require.False(t, e.DueDate.After(today))
			}
			continue
		}
		require.True(t, r.NextDue.DueDate.After(today))
		for _, e := range r.Schedule {
			if e.DueDate.After(today) {
				require.False(t, e.DueDate.Before(r.NextDue.DueDate), "today=%s", today.Format("2006-01-02"))
			}
		}
	}
}

func TestGenerateVaccinationSchedule_Categories(t *testing.T) {
	r, err := GenerateVaccinationSchedule(date(2024, 1, 15), date(2024, 1, 15), nil)
	require.NoError(t, err)

	assert.Len(t, r.ByCategory(models.VaccineMandatory), 14)
	assert.Len(t, r.ByCategory(models.VaccineOptional), 8)
	assert.Len(t, VaccineIDs(), r.TotalCount)
}

func TestGenerateVaccinationSchedule_FutureBirthDate(t *testing.T) {
	_, err := GenerateVaccinationSchedule(date(2025, 1, 2), date(2025, 1, 1), nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}
