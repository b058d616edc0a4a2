// Package export renders a generated program document to files.
package export

import (
	"fmt"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes one sheet per week: a lift header per day followed by its
// warm-up, main, supplemental, and assistance rows.
func WriteXLSX(doc *models.ExportedProgramDocument, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, week := range doc.Weeks {
		sheet := fmt.Sprintf("Week %d", week.Week)
		if week.Deload {
			sheet += " (deload)"
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
			}
		}

		row := 1
		for _, day := range week.Days {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s (TM %.1f %s)", day.Lift, day.TrainingMax, doc.Meta.Units))
			f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), header)
			row++

			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Block")
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Percent")
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Reps")
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), "Weight")
			f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), header)
			row++

			for _, set := range day.Warmups {
				row = writeSetRow(f, sheet, row, "warm-up", set)
			}
			for _, set := range day.Main {
				row = writeSetRow(f, sheet, row, "main", set)
			}

			if sup := day.Supplemental; sup != nil {
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sup.Type)
				f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sup.PercentOfTM)
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%dx%d", sup.Sets, sup.Reps))
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sup.Weight)
				row++
			}

			for _, item := range day.Assistance {
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%dx%s", item.Sets, item.Reps))
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.LoadHint)
				row++
			}

			if cond := day.Conditioning; cond.TemplateID != "" {
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("conditioning: %s", cond.TemplateID))
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%d min", cond.Minutes))
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), cond.Note)
				row++
			}

			row++ // blank separator between days
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSetRow(f *excelize.File, sheet string, row int, block string, set models.SetPrescription) int {
	reps := fmt.Sprintf("%d", set.Reps)
	if set.AMRAP {
		reps += "+"
	}
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), block)
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), set.Percent)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), reps)
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), set.Weight)
	return row + 1
}
