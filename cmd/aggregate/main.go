// Package main provides the entry point for the common-feature
// aggregation tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lamim/featureset/internal/aggregate"
	"github.com/lamim/featureset/internal/config"
	"github.com/lamim/featureset/internal/debug"
	"github.com/lamim/featureset/internal/features"
	"github.com/lamim/featureset/internal/progress"
	"github.com/lamim/featureset/internal/stats"
)

type cliFlags struct {
	configPath    *string
	baseDir       *string
	outDir        *string
	normalizeCase *bool
	stripPunct    *bool
	noProgress    *bool
	debugMode     *bool
}

func parseFlags() *cliFlags {
	return &cliFlags{
		configPath:    flag.String("config", "featureset.toml", "Path to configuration file (optional)"),
		baseDir:       flag.String("base-dir", "", "Root directory with group/scenario/model folders (overrides config)"),
		outDir:        flag.String("out-dir", "", "Output directory for result files (overrides config)"),
		normalizeCase: flag.Bool("normalize-case", false, "Lowercase feature names before intersection"),
		stripPunct:    flag.Bool("strip-punct", false, "Strip simple punctuation (.,;:!?-) from feature names before intersection"),
		noProgress:    flag.Bool("no-progress", false, "Disable progress bar (useful for CI)"),
		debugMode:     flag.Bool("debug", false, "Write a JSON run log to the output directory"),
	}
}

func main() {
	flags := parseFlags()
	flag.Parse()

	cfg, err := config.Load(*flags.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *flags.baseDir != "" {
		cfg.Layout.BaseDir = *flags.baseDir
	}
	if *flags.outDir != "" {
		cfg.Layout.OutDir = *flags.outDir
	}

	opts := features.Options{
		Lowercase:        cfg.Normalize.Lowercase || *flags.normalizeCase,
		StripPunctuation: cfg.Normalize.StripPunctuation || *flags.stripPunct,
	}

	if _, err := os.Stat(cfg.Layout.BaseDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: directory not found: %s\n", cfg.Layout.BaseDir)
		os.Exit(1)
	}

	debugLogger := debug.NewLogger(*flags.debugMode, cfg.Layout.OutDir)
	if debugLogger.IsEnabled() {
		fmt.Printf("🐛 Debug mode enabled: logging to %s/\n\n", debugLogger.GetOutputPath())
	}

	totalCells := len(cfg.Groups) * len(cfg.Scenarios) * len(cfg.Models)
	prog := progress.NewManager(totalCells, !*flags.noProgress)

	runner := aggregate.NewRunner(cfg, opts, prog, debugLogger)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running aggregation: %v\n", err)
		os.Exit(1)
	}

	if debugLogger.IsEnabled() {
		if err := debugLogger.Finalize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write debug log: %v\n", err)
		} else {
			fmt.Printf("✓ Debug log written to: %s/\n", debugLogger.GetOutputPath())
		}
	}

	printSummary(cfg, runner.GetCollector())
}

func printSummary(cfg *config.Config, collector *stats.Collector) {
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                     AGGREGATION SUMMARY")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	for _, group := range cfg.Groups {
		summary := collector.ComputeGroupSummary(group.Folder)
		fmt.Printf("\n%s:\n", group.Label)
		fmt.Printf("  Files: %d (%d missing)\n", summary.Cells, summary.MissingFiles)
		fmt.Printf("  Set sizes: min %d, max %d, avg %.1f\n", summary.MinSetSize, summary.MaxSetSize, summary.AvgSetSize)
		for _, scenario := range cfg.Scenarios {
			fmt.Printf("  Common in '%s': %d\n", scenario.Label, summary.ScenarioCommon[scenario.Folder])
		}
		fmt.Printf("  Common across all scenarios: %d\n", summary.AcrossCommon)
	}

	fmt.Println("\n✓ Done.")
}
