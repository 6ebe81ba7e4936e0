// Package aggregate walks the group/scenario/model matrix, computes the
// per-scenario and cross-scenario common feature sets, and persists them.
package aggregate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lamim/featureset/internal/config"
	"github.com/lamim/featureset/internal/debug"
	"github.com/lamim/featureset/internal/features"
	"github.com/lamim/featureset/internal/progress"
	"github.com/lamim/featureset/internal/stats"
)

// AcrossFileName is the fixed output name for a group's cross-scenario
// common set.
const AcrossFileName = "common_across_all_scenarios.txt"

// Runner drives the aggregation over the configured matrix.
type Runner struct {
	config      *config.Config
	opts        features.Options
	collector   *stats.Collector
	progress    *progress.Manager
	debugLogger *debug.Logger
}

// NewRunner creates an aggregation runner.
func NewRunner(cfg *config.Config, opts features.Options, prog *progress.Manager, debugLog *debug.Logger) *Runner {
	return &Runner{
		config:      cfg,
		opts:        opts,
		collector:   stats.NewCollector(),
		progress:    prog,
		debugLogger: debugLog,
	}
}

// GetCollector returns the run statistics collector.
func (r *Runner) GetCollector() *stats.Collector {
	return r.collector
}

// Run processes every group and scenario in the configured order. Missing
// model files contribute empty sets and are reported, never fatal; output
// files are always written, empty results included.
func (r *Runner) Run() error {
	layout := r.config.Layout

	fmt.Printf("Base dir: %s\n", absOrSelf(layout.BaseDir))
	fmt.Printf("Output dir: %s\n", absOrSelf(layout.OutDir))
	fmt.Printf("Normalization: lowercase=%v, strip_punct=%v\n\n", r.opts.Lowercase, r.opts.StripPunctuation)

	for _, group := range r.config.Groups {
		if err := r.runGroup(group); err != nil {
			return err
		}
	}

	if r.progress != nil {
		r.progress.Finish()
	}
	return nil
}

func (r *Runner) runGroup(group config.Name) error {
	fmt.Printf("=== GROUP: %s ===\n", group.Label)

	perScenario := make([]features.Set, 0, len(r.config.Scenarios))

	for _, scenario := range r.config.Scenarios {
		common, err := r.runScenario(group, scenario)
		if err != nil {
			return err
		}
		perScenario = append(perScenario, common)
	}

	across := features.Intersect(perScenario...)
	outPath := filepath.Join(r.config.Layout.OutDir, group.Folder, AcrossFileName)
	if err := writeSorted(outPath, across); err != nil {
		return err
	}
	r.debugLogger.LogWrite(outPath, across.Len())
	r.collector.AddCommon(stats.CommonResult{
		Group:      group.Folder,
		Count:      across.Len(),
		OutputPath: outPath,
	})

	fmt.Printf("→ Common across all %d scenarios in '%s': %d\n", len(r.config.Scenarios), group.Label, across.Len())
	if across.Len() > 0 {
		fmt.Printf("  Examples: %s\n", preview(across, 20))
	}
	fmt.Println()
	return nil
}

func (r *Runner) runScenario(group, scenario config.Name) (features.Set, error) {
	layout := r.config.Layout

	modelSets := make([]features.Set, 0, len(r.config.Models))
	sizes := make([]int, 0, len(r.config.Models))
	var missingModels []string

	for _, model := range r.config.Models {
		path := filepath.Join(layout.BaseDir, group.Folder, scenario.Folder, model.Folder, layout.FeatureFile)
		if !layout.Grouped {
			path = filepath.Join(layout.BaseDir, scenario.Folder, model.Folder, layout.FeatureFile)
		}

		start := time.Now()
		raw, missing, err := features.Read(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		normed := features.Normalize(raw, r.opts)
		set := features.NewSet(normed)

		modelSets = append(modelSets, set)
		sizes = append(sizes, set.Len())
		if missing {
			missingModels = append(missingModels, model.Folder)
		}

		r.collector.AddCell(stats.CellResult{
			Group:           group.Folder,
			Scenario:        scenario.Folder,
			Model:           model.Folder,
			Missing:         missing,
			RawCount:        len(raw),
			NormalizedCount: set.Len(),
			Elapsed:         time.Since(start),
			Timestamp:       time.Now(),
		})
		r.debugLogger.LogLoad(debug.LoadEvent{
			Path:            path,
			Group:           group.Folder,
			Scenario:        scenario.Folder,
			Model:           model.Folder,
			Missing:         missing,
			RawCount:        len(raw),
			NormalizedCount: set.Len(),
			Duration:        time.Since(start),
		})
		if r.progress != nil {
			r.progress.CompleteCell(missing)
		}
	}

	common := features.Intersect(modelSets...)

	outPath := filepath.Join(layout.OutDir, group.Folder, "common_"+scenario.Folder+".txt")
	if err := writeSorted(outPath, common); err != nil {
		return nil, err
	}
	r.debugLogger.LogWrite(outPath, common.Len())
	r.collector.AddCommon(stats.CommonResult{
		Group:      group.Folder,
		Scenario:   scenario.Folder,
		Count:      common.Len(),
		OutputPath: outPath,
	})

	fmt.Printf("- Scenario: %s\n", scenario.Label)
	fmt.Printf("  Models: %s\n", strings.Join(folders(r.config.Models), ", "))
	if len(missingModels) > 0 {
		fmt.Printf("  WARNING: missing files for: %s\n", strings.Join(missingModels, ", "))
	}
	fmt.Printf("  Sizes per model: %v  → Common: %d\n", sizes, common.Len())
	if common.Len() > 0 {
		fmt.Printf("  Examples: %s\n", preview(common, 10))
	}
	fmt.Println()

	return common, nil
}

// writeSorted persists a feature set, one name per line in lexicographic
// order so runs diff cleanly regardless of map iteration order.
func writeSorted(path string, set features.Set) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var sb strings.Builder
	for _, name := range set.Sorted() {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}

	// #nosec G306 - 0640 allows owner/group to read, which is appropriate for result files
	if err := os.WriteFile(path, []byte(sb.String()), 0640); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func preview(set features.Set, n int) string {
	sorted := set.Sorted()
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return strings.Join(sorted, ", ")
}

func folders(names []config.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.Folder
	}
	return out
}

func absOrSelf(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
