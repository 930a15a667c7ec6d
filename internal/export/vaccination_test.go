package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"taafi-health-tools/internal/models"
)

func sampleResult() models.VaccinationResult {
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return models.VaccinationResult{
		Schedule: []models.VaccineEntry{
			{ID: "bcg", ArabicName: "الدرن", AgeDisplay: "عند الولادة", DueDate: due, Category: models.VaccineMandatory, IsCompleted: true},
			{ID: "hexa-1", ArabicName: "السداسي - الجرعة الأولى", AgeDisplay: "شهران", DueDate: due, Category: models.VaccineMandatory, IsOverdue: true},
			{ID: "rota-1", ArabicName: "الروتا", AgeDisplay: "شهران", DueDate: due, Category: models.VaccineOptional, IsDue: true},
			{ID: "mmr-1", ArabicName: "الحصبة", AgeDisplay: "سنة", DueDate: due.AddDate(1, 0, 0), Category: models.VaccineMandatory},
		},
		TotalCount: 4,
	}
}

func TestVaccinationWorkbook(t *testing.T) {
	data, err := VaccinationWorkbook(sampleResult())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{VaccinationSheet}, f.GetSheetList())

	rows, err := f.GetRows(VaccinationSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, vaccinationHeader, rows[0])

	assert.Equal(t, "الدرن", rows[1][0])
	assert.Equal(t, "2024-03-15", rows[1][3])
	assert.Equal(t, "إجباري", rows[1][4])
	assert.Equal(t, StatusCompleted, rows[1][5])
	assert.Equal(t, StatusOverdue, rows[2][5])

	// mandatory rows come before the optional group
	assert.Equal(t, "الحصبة", rows[3][0])
	assert.Equal(t, "إجباري", rows[3][4])
	assert.Equal(t, StatusUpcoming, rows[3][5])
	assert.Equal(t, "الروتا", rows[4][0])
	assert.Equal(t, "اختياري", rows[4][4])
	assert.Equal(t, StatusDue, rows[4][5])

	view, err := f.GetSheetView(VaccinationSheet, 0)
	require.NoError(t, err)
	require.NotNil(t, view.RightToLeft)
	assert.True(t, *view.RightToLeft)
}

func TestVaccinationWorkbook_EmptySchedule(t *testing.T) {
	data, err := VaccinationWorkbook(models.VaccinationResult{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(VaccinationSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestVaccineStatus_CompletedWins(t *testing.T) {
	v := models.VaccineEntry{IsCompleted: true, IsOverdue: true, IsDue: true}
	assert.Equal(t, StatusCompleted, VaccineStatus(v))
}
