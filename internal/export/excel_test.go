package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/GridCut/internal/model"
)

func TestExportExcel_CreatesReadableWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.xlsx")

	result := buildTestResult()
	result.UnplacedParts = []model.Part{
		{ID: "u1", Label: "Leftover", Width: 900, Height: 900, Quantity: 1},
	}

	if err := ExportExcel(path, result); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("cannot read rows: %v", err)
	}

	if len(rows) < 4 {
		t.Fatalf("expected at least 4 rows, got %d", len(rows))
	}
	if rows[0][1] != "Part" {
		t.Errorf("expected 'Part' header, got '%s'", rows[0][1])
	}
	if rows[1][1] != "Side Panel" {
		t.Errorf("expected first placement 'Side Panel', got '%s'", rows[1][1])
	}

	foundUnplaced := false
	for _, row := range rows {
		if len(row) > 1 && row[1] == "Leftover" {
			foundUnplaced = true
		}
	}
	if !foundUnplaced {
		t.Error("expected unplaced part 'Leftover' in the workbook")
	}
}

func TestExportExcel_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.xlsx")

	result := model.LayoutResult{Sheet: model.NewSheet("Board", 1000, 500)}
	if err := ExportExcel(path, result); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}
