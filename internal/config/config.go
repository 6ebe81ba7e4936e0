// Package config provides configuration loading and validation for the
// feature-selection toolset: the fixed group/scenario/model vocabularies,
// directory layout, and normalization switches.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration structure.
type Config struct {
	Layout    LayoutConfig    `toml:"layout"`
	Normalize NormalizeConfig `toml:"normalize"`
	Groups    []Name          `toml:"groups"`
	Scenarios []Name          `toml:"scenarios"`
	Models    []Name          `toml:"models"`
}

// LayoutConfig describes the directory convention shared by both tools.
type LayoutConfig struct {
	BaseDir     string `toml:"base_dir"`
	OutDir      string `toml:"out_dir"`
	FeatureFile string `toml:"feature_file"`
	// Grouped selects the two-level layout (group/scenario/model). When
	// false the scenario directories sit directly under base_dir.
	Grouped bool `toml:"grouped"`
}

// NormalizeConfig holds the default normalization switches. CLI flags can
// only turn these on, never off.
type NormalizeConfig struct {
	Lowercase        bool `toml:"lowercase"`
	StripPunctuation bool `toml:"strip_punctuation"`
}

// Name is a vocabulary entry: the on-disk folder name and the display
// label used in console output and the dashboard. The label defaults to
// the folder name.
type Name struct {
	Folder string `toml:"folder"`
	Label  string `toml:"label,omitempty"`
}

// Default returns the built-in configuration matching the original
// experiment vocabulary.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			BaseDir:     "Selected features",
			OutDir:      "common_features",
			FeatureFile: "selected_features.txt",
			Grouped:     true,
		},
		Groups: []Name{
			{Folder: "All Groups", Label: "All Groups"},
			{Folder: "Pathologic And Control", Label: "Pathologic And Control"},
		},
		Scenarios: []Name{
			{Folder: "Normal only", Label: "Normal only"},
			{Folder: "Normal New only", Label: "Normal New only"},
			{Folder: "Merged Normal", Label: "Merged Normal"},
		},
		Models: []Name{
			{Folder: "Logistic Regression", Label: "Logistic Regression"},
			{Folder: "MLP", Label: "MLP"},
			{Folder: "Support Vector Machine", Label: "Support Vector Machine"},
			{Folder: "Random Forest", Label: "Random Forest"},
			{Folder: "XGBoost", Label: "XGBoost"},
		},
	}
}

// validatePath checks for path traversal attempts
func validatePath(path string) error {
	cleanPath := filepath.Clean(path)
	if strings.HasPrefix(cleanPath, "..") || strings.Contains(cleanPath, "../") {
		return fmt.Errorf("path contains invalid traversal sequence: %s", path)
	}
	return nil
}

// Load reads and parses the TOML configuration file. A missing file is not
// an error: the built-in defaults are returned so both tools work without
// any configuration on disk.
func Load(path string) (*Config, error) {
	if err := validatePath(path); err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	// #nosec G304 - Path validated above, this is intentional file inclusion
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{Layout: LayoutConfig{Grouped: true}}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Layout.BaseDir == "" {
		cfg.Layout.BaseDir = def.Layout.BaseDir
	}
	if cfg.Layout.OutDir == "" {
		cfg.Layout.OutDir = def.Layout.OutDir
	}
	if cfg.Layout.FeatureFile == "" {
		cfg.Layout.FeatureFile = def.Layout.FeatureFile
	}
	if len(cfg.Groups) == 0 {
		cfg.Groups = def.Groups
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = def.Scenarios
	}
	if len(cfg.Models) == 0 {
		cfg.Models = def.Models
	}
	fillLabels(cfg.Groups)
	fillLabels(cfg.Scenarios)
	fillLabels(cfg.Models)
}

func fillLabels(names []Name) {
	for i := range names {
		if names[i].Label == "" {
			names[i].Label = names[i].Folder
		}
	}
}

func validate(cfg *Config) error {
	for _, v := range []struct {
		kind  string
		names []Name
	}{
		{"groups", cfg.Groups},
		{"scenarios", cfg.Scenarios},
		{"models", cfg.Models},
	} {
		seen := make(map[string]bool, len(v.names))
		for i, n := range v.names {
			if strings.TrimSpace(n.Folder) == "" {
				return fmt.Errorf("%s entry at index %d has an empty folder name", v.kind, i)
			}
			if seen[n.Folder] {
				return fmt.Errorf("%s contains duplicate folder name: %s", v.kind, n.Folder)
			}
			seen[n.Folder] = true
		}
	}
	return nil
}

// Labels returns the display labels of the given vocabulary in order.
func Labels(names []Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.Label
	}
	return out
}

// Save writes the configuration to a TOML file
func (c *Config) Save(path string) error {
	if err := validatePath(path); err != nil {
		return fmt.Errorf("invalid config path: %w", err)
	}

	// #nosec G304 - Path validated above, this is intentional file creation
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}
