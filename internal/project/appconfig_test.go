package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/GridCut/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultKerfWidth = 4.0
	cfg.DefaultHoleMetric = model.MetricWidth
	cfg.RecentProjects = []string{"/tmp/proj1.json", "/tmp/proj2.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultKerfWidth != 4.0 {
		t.Errorf("expected DefaultKerfWidth=4.0, got %f", loaded.DefaultKerfWidth)
	}
	if loaded.DefaultHoleMetric != model.MetricWidth {
		t.Errorf("expected width metric, got %s", loaded.DefaultHoleMetric)
	}
	if len(loaded.RecentProjects) != 2 {
		t.Errorf("expected 2 recent projects, got %d", len(loaded.RecentProjects))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultKerfWidth != defaults.DefaultKerfWidth {
		t.Errorf("expected default kerf width %f, got %f", defaults.DefaultKerfWidth, cfg.DefaultKerfWidth)
	}
	if cfg.DefaultHoleMetric != model.MetricArea {
		t.Errorf("expected area metric, got %s", cfg.DefaultHoleMetric)
	}
}

func TestLoadAppConfigCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for corrupt config")
	}
}

func TestLoadAppConfigNilRecentProjects(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"default_resolution": 10}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentProjects == nil {
		t.Error("expected RecentProjects to be an empty slice, not nil")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if !strings.HasSuffix(path, filepath.Join(".gridcut", "config.json")) {
		t.Errorf("unexpected config path: %s", path)
	}
}
