// Package report generates the static HTML dashboard plus Markdown and
// JSON summaries from the loaded feature lists.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Generator creates report documents from a loaded data tree.
type Generator struct {
	data    *Data
	title   string
	baseDir string
	outPath string
}

// NewGenerator creates a report generator. outPath is the HTML output
// path; the other formats are written next to it with swapped extensions.
func NewGenerator(data *Data, title, baseDir, outPath string) *Generator {
	return &Generator{
		data:    data,
		title:   title,
		baseDir: baseDir,
		outPath: outPath,
	}
}

// GenerateAll generates all report formats
func (g *Generator) GenerateAll() error {
	if err := g.GenerateHTML(); err != nil {
		return fmt.Errorf("failed to generate HTML report: %w", err)
	}
	if err := g.GenerateMarkdown(); err != nil {
		return fmt.Errorf("failed to generate markdown report: %w", err)
	}
	if err := g.GenerateJSON(); err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	return nil
}

// siblingPath swaps the HTML output path's extension.
func (g *Generator) siblingPath(ext string) string {
	return strings.TrimSuffix(g.outPath, filepath.Ext(g.outPath)) + ext
}
