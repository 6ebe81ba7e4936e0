package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
[layout]
base_dir = "features"
out_dir = "out"
feature_file = "picked.txt"

[normalize]
lowercase = true

[[groups]]
folder = "cohort-a"
label = "Cohort A"

[[groups]]
folder = "cohort-b"

[[scenarios]]
folder = "baseline"

[[models]]
folder = "rf"
label = "Random Forest"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "featureset.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Layout.BaseDir != "features" {
		t.Errorf("expected base_dir features, got %s", cfg.Layout.BaseDir)
	}
	if cfg.Layout.FeatureFile != "picked.txt" {
		t.Errorf("expected feature_file picked.txt, got %s", cfg.Layout.FeatureFile)
	}
	if !cfg.Normalize.Lowercase {
		t.Error("expected normalize.lowercase true")
	}
	if len(cfg.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(cfg.Groups))
	}
	if cfg.Groups[0].Label != "Cohort A" {
		t.Errorf("expected explicit label kept, got %s", cfg.Groups[0].Label)
	}
	if cfg.Groups[1].Label != "cohort-b" {
		t.Errorf("expected label defaulted to folder, got %s", cfg.Groups[1].Label)
	}
	if cfg.Models[0].Label != "Random Forest" {
		t.Errorf("expected model label Random Forest, got %s", cfg.Models[0].Label)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "featureset.toml"))
	if err != nil {
		t.Fatalf("missing config must fall back to defaults, got: %v", err)
	}

	if cfg.Layout.BaseDir != "Selected features" {
		t.Errorf("expected default base_dir, got %s", cfg.Layout.BaseDir)
	}
	if cfg.Layout.OutDir != "common_features" {
		t.Errorf("expected default out_dir, got %s", cfg.Layout.OutDir)
	}
	if !cfg.Layout.Grouped {
		t.Error("expected grouped layout by default")
	}
	if len(cfg.Groups) != 2 || len(cfg.Scenarios) != 3 || len(cfg.Models) != 5 {
		t.Errorf("expected 2/3/5 vocabulary, got %d/%d/%d",
			len(cfg.Groups), len(cfg.Scenarios), len(cfg.Models))
	}
	if cfg.Models[4].Folder != "XGBoost" {
		t.Errorf("expected XGBoost last, got %s", cfg.Models[4].Folder)
	}
}

func TestLoad_PartialConfigFillsDefaults(t *testing.T) {
	content := `
[[scenarios]]
folder = "only-one"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "featureset.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Scenarios) != 1 {
		t.Errorf("expected 1 scenario, got %d", len(cfg.Scenarios))
	}
	if len(cfg.Groups) != 2 || len(cfg.Models) != 5 {
		t.Errorf("expected default groups/models, got %d/%d", len(cfg.Groups), len(cfg.Models))
	}
	if !cfg.Layout.Grouped {
		t.Error("omitted grouped must default to true")
	}
}

func TestLoad_DuplicateFolderError(t *testing.T) {
	content := `
[[models]]
folder = "rf"

[[models]]
folder = "rf"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "featureset.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for duplicate model folder")
	}
}

func TestLoad_EmptyFolderError(t *testing.T) {
	content := `
[[groups]]
label = "No folder set"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "featureset.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for empty folder name")
	}
}

func TestLoad_PathTraversalRejected(t *testing.T) {
	if _, err := Load("../../etc/featureset.toml"); err == nil {
		t.Error("expected error for path traversal")
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "featureset.toml")

	cfg := Default()
	cfg.Layout.BaseDir = "elsewhere"
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Layout.BaseDir != "elsewhere" {
		t.Errorf("expected base_dir elsewhere, got %s", loaded.Layout.BaseDir)
	}
	if len(loaded.Models) != 5 {
		t.Errorf("expected 5 models after round trip, got %d", len(loaded.Models))
	}
}

func TestLabels(t *testing.T) {
	names := []Name{{Folder: "a", Label: "A"}, {Folder: "b", Label: "B"}}
	got := Labels(names)
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("unexpected labels: %v", got)
	}
}
