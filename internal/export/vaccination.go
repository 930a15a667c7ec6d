// Package export renders calculator results as downloadable files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"taafi-health-tools/internal/models"
)

const VaccinationSheet = "جدول التطعيمات"

var vaccinationHeader = []string{
	"التطعيم",
	"الوصف",
	"العمر",
	"تاريخ الاستحقاق",
	"النوع",
	"الحالة",
}

var vaccinationColumnWidths = []float64{28, 40, 14, 16, 12, 16}

const (
	StatusCompleted = "تم أخذه"
	StatusOverdue   = "متأخر"
	StatusDue       = "مستحق قريباً"
	StatusUpcoming  = "قادم"
)

// VaccineStatus is the single status label shown for a schedule row.
func VaccineStatus(v models.VaccineEntry) string {
	switch {
	case v.IsCompleted:
		return StatusCompleted
	case v.IsOverdue:
		return StatusOverdue
	case v.IsDue:
		return StatusDue
	default:
		return StatusUpcoming
	}
}

func categoryLabel(c models.VaccineCategory) string {
	if c == models.VaccineMandatory {
		return "إجباري"
	}
	return "اختياري"
}

// VaccinationWorkbook writes the schedule to a right-to-left XLSX sheet, one
// row per vaccine: mandatory vaccines first, then optional ones, each group
// in schedule order.
func VaccinationWorkbook(result models.VaccinationResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(VaccinationSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	rtl := true
	if err := f.SetSheetView(VaccinationSheet, -1, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return nil, fmt.Errorf("failed to set sheet view: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range vaccinationHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(VaccinationSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(VaccinationSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, width := range vaccinationColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(VaccinationSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	var rows []models.VaccineEntry
	for _, category := range []models.VaccineCategory{models.VaccineMandatory, models.VaccineOptional} {
		rows = append(rows, result.ByCategory(category)...)
	}

	for rowIdx, v := range rows {
		row := rowIdx + 2
		values := []interface{}{
			v.ArabicName,
			v.Description,
			v.AgeDisplay,
			v.DueDate.Format("2006-01-02"),
			categoryLabel(v.Category),
			VaccineStatus(v),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(VaccinationSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
