package report

import (
	"path/filepath"

	"github.com/lamim/featureset/internal/config"
	"github.com/lamim/featureset/internal/features"
)

// ModelColumn holds one model's raw feature list for one scenario panel.
// Features stay unnormalized and in file order: the dashboard shows what
// was written, not what was intersected.
type ModelColumn struct {
	Folder   string   `json:"folder"`
	Label    string   `json:"label"`
	Features []string `json:"features"`
	Missing  bool     `json:"missing,omitempty"`
}

// ScenarioPanel is one scenario tab with a column per model.
type ScenarioPanel struct {
	Folder string        `json:"folder"`
	Label  string        `json:"label"`
	Models []ModelColumn `json:"models"`
}

// GroupSection is one group tab with its nested scenario tabs.
type GroupSection struct {
	Folder    string          `json:"folder"`
	Label     string          `json:"label"`
	Scenarios []ScenarioPanel `json:"scenarios"`
}

// Data is the staging tree for rendering: ordered by the configured
// vocabularies, built once per run and discarded after rendering.
type Data struct {
	Groups  []GroupSection `json:"groups"`
	Grouped bool           `json:"grouped"`
}

// Load builds the report data tree from the directory layout. Missing
// files yield empty columns; only unexpected read errors fail the load.
func Load(cfg *config.Config, baseDir string) (*Data, error) {
	data := &Data{Grouped: cfg.Layout.Grouped}

	groups := cfg.Groups
	if !cfg.Layout.Grouped {
		// Flat layout: a single unnamed section holding the scenario tabs.
		groups = []config.Name{{Folder: "", Label: ""}}
	}

	for _, group := range groups {
		section := GroupSection{Folder: group.Folder, Label: group.Label}
		for _, scenario := range cfg.Scenarios {
			panel := ScenarioPanel{Folder: scenario.Folder, Label: scenario.Label}
			for _, model := range cfg.Models {
				path := filepath.Join(baseDir, group.Folder, scenario.Folder, model.Folder, cfg.Layout.FeatureFile)
				feats, missing, err := features.Read(path)
				if err != nil {
					return nil, err
				}
				panel.Models = append(panel.Models, ModelColumn{
					Folder:   model.Folder,
					Label:    model.Label,
					Features: feats,
					Missing:  missing,
				})
			}
			section.Scenarios = append(section.Scenarios, panel)
		}
		data.Groups = append(data.Groups, section)
	}

	return data, nil
}
