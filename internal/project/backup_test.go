package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GridCut/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultResolution = 5.0

	proj := model.NewProject()
	proj.Name = "Bookshelf"
	proj.Parts = []model.Part{model.NewPart("Shelf", 800, 250, 4)}

	if err := ExportAllData(path, cfg, []model.Project{proj}); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected a creation timestamp")
	}
	if backup.Config.DefaultResolution != 5.0 {
		t.Errorf("expected resolution 5.0, got %f", backup.Config.DefaultResolution)
	}
	if len(backup.Projects) != 1 || backup.Projects[0].Name != "Bookshelf" {
		t.Errorf("expected project 'Bookshelf' to round-trip, got %+v", backup.Projects)
	}
}

func TestImportAllData_MissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"config": {}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for backup without a version field")
	}
}

func TestImportAllData_MissingFile(t *testing.T) {
	if _, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing backup file")
	}
}
