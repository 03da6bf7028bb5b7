package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/GridCut/internal/model"
)

// ExportExcel writes the layout result to an .xlsx workbook: one row per
// placement followed by an unplaced-parts section and summary statistics.
func ExportExcel(path string, result model.LayoutResult) error {
	if len(result.Placements) == 0 && len(result.UnplacedParts) == 0 {
		return fmt.Errorf("no parts to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Sheet1"

	setRow := func(row int, values ...interface{}) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	row := 1
	if err := setRow(row, "#", "Part", "Width (mm)", "Height (mm)", "X (mm)", "Y (mm)", "Rotated"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	row++

	for i, p := range result.Placements {
		rotated := "no"
		if p.Rotated {
			rotated = "yes"
		}
		err := setRow(row, i+1, p.Part.Label, p.Part.Width, p.Part.Height, p.X, p.Y, rotated)
		if err != nil {
			return fmt.Errorf("failed to write placement row: %w", err)
		}
		row++
	}

	if len(result.UnplacedParts) > 0 {
		row++
		if err := setRow(row, "Unplaced", "Part", "Width (mm)", "Height (mm)", "Quantity"); err != nil {
			return err
		}
		row++
		for _, p := range result.UnplacedParts {
			if err := setRow(row, "", p.Label, p.Width, p.Height, p.Quantity); err != nil {
				return err
			}
			row++
		}
	}

	row++
	summary := []struct {
		label string
		value interface{}
	}{
		{"Sheet", fmt.Sprintf("%s (%.0f x %.0f mm)", result.Sheet.Label, result.Sheet.Width, result.Sheet.Height)},
		{"Parts placed", len(result.Placements)},
		{"Efficiency (%)", result.Efficiency()},
		{"Largest free (mm)", fmt.Sprintf("%.0f x %.0f", result.LargestFree.Width, result.LargestFree.Height)},
	}
	for _, s := range summary {
		if err := setRow(row, s.label, s.value); err != nil {
			return err
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}
