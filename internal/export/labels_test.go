package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GridCut/internal/model"
)

func buildLabelsTestResult() model.LayoutResult {
	return model.LayoutResult{
		Sheet: model.NewSheet("Plywood 2440x1220", 2440, 1220),
		Placements: []model.Placement{
			{
				Part: model.Part{ID: "p1", Label: "Side Panel", Width: 600, Height: 400, Quantity: 1},
				X:    10, Y: 10, Rotated: false,
			},
			{
				Part: model.Part{ID: "p2", Label: "Top", Width: 500, Height: 300, Quantity: 1},
				X:    620, Y: 10, Rotated: true,
			},
		},
		Fitted: true,
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, buildLabelsTestResult())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_NoPlacements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_placements.pdf")

	result := model.LayoutResult{Sheet: model.NewSheet("Board", 1000, 500)}
	err := ExportLabels(path, result)
	if err == nil {
		t.Fatal("expected error for result with no placements, got nil")
	}
}

func TestExportLabels_ManyLabelsSpanPages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many.pdf")

	result := model.LayoutResult{Sheet: model.NewSheet("Board", 2440, 1220)}
	for i := 0; i < 35; i++ {
		result.Placements = append(result.Placements, model.Placement{
			Part: model.Part{ID: "p", Label: "Part", Width: 100, Height: 100, Quantity: 1},
			X:    float64(i), Y: float64(i),
		})
	}

	err := ExportLabels(path, result)
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestCollectLabelInfos(t *testing.T) {
	result := buildLabelsTestResult()
	labels := CollectLabelInfos(result)

	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}

	if labels[0].PartLabel != "Side Panel" {
		t.Errorf("expected 'Side Panel', got '%s'", labels[0].PartLabel)
	}
	if labels[0].SheetLabel != "Plywood 2440x1220" {
		t.Errorf("unexpected sheet label '%s'", labels[0].SheetLabel)
	}
	if !labels[1].Rotated {
		t.Error("expected second label to be marked rotated")
	}

	// The QR payload must round-trip through JSON
	data, err := json.Marshal(labels[0])
	if err != nil {
		t.Fatalf("label info should marshal: %v", err)
	}
	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("label info should unmarshal: %v", err)
	}
	if decoded != labels[0] {
		t.Errorf("round-trip mismatch: %+v != %+v", decoded, labels[0])
	}
}
