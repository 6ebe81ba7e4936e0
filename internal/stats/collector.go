// Package stats provides collection and aggregation of per-cell results
// from an aggregation run over the group/scenario/model matrix.
package stats

import (
	"sync"
	"time"
)

// CellResult represents one (group, scenario, model) load.
type CellResult struct {
	Group           string        `json:"group"`
	Scenario        string        `json:"scenario"`
	Model           string        `json:"model"`
	Missing         bool          `json:"missing,omitempty"`
	RawCount        int           `json:"raw_count"`
	NormalizedCount int           `json:"normalized_count"`
	Elapsed         time.Duration `json:"elapsed"`
	Timestamp       time.Time     `json:"timestamp"`
}

// CommonResult records one computed intersection. Scenario is empty for a
// group's cross-scenario result.
type CommonResult struct {
	Group      string `json:"group"`
	Scenario   string `json:"scenario,omitempty"`
	Count      int    `json:"count"`
	OutputPath string `json:"output_path"`
}

// GroupSummary contains aggregated statistics for one group.
type GroupSummary struct {
	Group          string         `json:"group"`
	Cells          int            `json:"cells"`
	MissingFiles   int            `json:"missing_files"`
	MissingModels  []string       `json:"missing_models,omitempty"`
	TotalFeatures  int            `json:"total_features"`
	MinSetSize     int            `json:"min_set_size"`
	MaxSetSize     int            `json:"max_set_size"`
	AvgSetSize     float64        `json:"avg_set_size"`
	ScenarioCommon map[string]int `json:"scenario_common"`
	AcrossCommon   int            `json:"across_common"`
}

// Collector handles collection and aggregation of run results.
type Collector struct {
	cells   []CellResult
	commons []CommonResult
	mu      sync.RWMutex
}

// NewCollector creates a new run statistics collector.
func NewCollector() *Collector {
	return &Collector{
		cells: make([]CellResult, 0),
	}
}

// AddCell records a single model-file load.
func (c *Collector) AddCell(r CellResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cells = append(c.cells, r)
}

// AddCommon records a computed intersection.
func (c *Collector) AddCommon(r CommonResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commons = append(c.commons, r)
}

// Cells returns all recorded cell results.
func (c *Collector) Cells() []CellResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]CellResult, len(c.cells))
	copy(out, c.cells)
	return out
}

// Commons returns all recorded intersection results.
func (c *Collector) Commons() []CommonResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]CommonResult, len(c.commons))
	copy(out, c.commons)
	return out
}

// CellsByGroup returns cell results filtered by group folder.
func (c *Collector) CellsByGroup(group string) []CellResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var filtered []CellResult
	for _, r := range c.cells {
		if r.Group == group {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// MissingModels returns the model folders whose file was absent for the
// given (group, scenario), in recorded order.
func (c *Collector) MissingModels(group, scenario string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var missing []string
	for _, r := range c.cells {
		if r.Group == group && r.Scenario == scenario && r.Missing {
			missing = append(missing, r.Model)
		}
	}
	return missing
}

// ComputeGroupSummary aggregates the recorded results for one group.
func (c *Collector) ComputeGroupSummary(group string) *GroupSummary {
	cells := c.CellsByGroup(group)

	summary := &GroupSummary{
		Group:          group,
		Cells:          len(cells),
		ScenarioCommon: make(map[string]int),
	}
	if len(cells) == 0 {
		return summary
	}

	total := 0
	for i, r := range cells {
		if r.Missing {
			summary.MissingFiles++
			summary.MissingModels = append(summary.MissingModels, r.Scenario+"/"+r.Model)
		}
		total += r.NormalizedCount
		if i == 0 {
			summary.MinSetSize = r.NormalizedCount
			summary.MaxSetSize = r.NormalizedCount
		} else {
			if r.NormalizedCount < summary.MinSetSize {
				summary.MinSetSize = r.NormalizedCount
			}
			if r.NormalizedCount > summary.MaxSetSize {
				summary.MaxSetSize = r.NormalizedCount
			}
		}
	}
	summary.TotalFeatures = total
	summary.AvgSetSize = float64(total) / float64(len(cells))

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.commons {
		if r.Group != group {
			continue
		}
		if r.Scenario == "" {
			summary.AcrossCommon = r.Count
		} else {
			summary.ScenarioCommon[r.Scenario] = r.Count
		}
	}
	return summary
}
