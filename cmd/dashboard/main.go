// Package main provides the entry point for the dashboard generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lamim/featureset/internal/config"
	"github.com/lamim/featureset/internal/report"
)

const defaultTitle = "Selected Features Dashboard"

type cliFlags struct {
	configPath *string
	baseDir    *string
	out        *string
	title      *string
	flat       *bool
	format     *string
}

func parseFlags() *cliFlags {
	return &cliFlags{
		configPath: flag.String("config", "featureset.toml", "Path to configuration file (optional)"),
		baseDir:    flag.String("base-dir", "", "Root directory with the scenario folders (overrides config)"),
		out:        flag.String("out", "index.html", "Path of the HTML output file"),
		title:      flag.String("title", defaultTitle, "Page title"),
		flat:       flag.Bool("flat", false, "Read scenarios directly under base-dir, without a group level"),
		format:     flag.String("format", "html", "Report format: all, html, md, json"),
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
	if *flags.flat {
		cfg.Layout.Grouped = false
	}

	if _, err := os.Stat(cfg.Layout.BaseDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: directory not found: %s\n", cfg.Layout.BaseDir)
		os.Exit(1)
	}

	data, err := report.Load(cfg, cfg.Layout.BaseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feature lists: %v\n", err)
		os.Exit(1)
	}

	gen := report.NewGenerator(data, *flags.title, cfg.Layout.BaseDir, *flags.out)
	generateReports(flags.format, gen, *flags.out)
}

func generateReports(formatFlag *string, gen *report.Generator, outPath string) {
	for _, f := range parseFormats(*formatFlag) {
		switch f {
		case "html":
			if err := gen.GenerateHTML(); err != nil {
				fmt.Fprintf(os.Stderr, "Error generating HTML report: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("✓ Generated HTML report: %s\n", outPath)
		case "md":
			if err := gen.GenerateMarkdown(); err != nil {
				fmt.Fprintf(os.Stderr, "Error generating Markdown report: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("✓ Generated Markdown report\n")
		case "json":
			if err := gen.GenerateJSON(); err != nil {
				fmt.Fprintf(os.Stderr, "Error generating JSON report: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("✓ Generated JSON report\n")
		case "all":
			if err := gen.GenerateAll(); err != nil {
				fmt.Fprintf(os.Stderr, "Error generating reports: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("✓ Generated all reports next to: %s\n", outPath)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown format: %s\n", f)
			os.Exit(1)
		}
	}
}

func parseFormats(s string) []string {
	if s == "all" {
		return []string{"all"}
	}
	return strings.Split(s, ",")
}
