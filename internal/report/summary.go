package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// GenerateMarkdown creates a markdown summary next to the HTML output:
// one table per group/scenario with the raw feature count per model.
func (g *Generator) GenerateMarkdown() error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", g.title))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", timestamp))
	sb.WriteString(fmt.Sprintf("**Source:** `%s`\n\n", g.baseDir))

	for _, group := range g.data.Groups {
		if g.data.Grouped {
			sb.WriteString(fmt.Sprintf("## %s\n\n", group.Label))
		}
		for _, scenario := range group.Scenarios {
			sb.WriteString(fmt.Sprintf("### %s\n\n", scenario.Label))
			sb.WriteString("| Model | Features | Source |\n")
			sb.WriteString("|-------|----------|--------|\n")
			for _, model := range scenario.Models {
				source := "✅ found"
				if model.Missing {
					source = "❌ missing"
				}
				sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n", model.Label, len(model.Features), source))
			}
			sb.WriteString("\n")
		}
	}

	// #nosec G306 - 0640 allows owner/group to read, which is appropriate for report files
	return os.WriteFile(g.siblingPath(".md"), []byte(sb.String()), 0640)
}

// GenerateJSON writes the full data tree with counts as JSON.
func (g *Generator) GenerateJSON() error {
	payload := struct {
		Title       string    `json:"title"`
		GeneratedAt time.Time `json:"generated_at"`
		BaseDir     string    `json:"base_dir"`
		*Data
	}{
		Title:       g.title,
		GeneratedAt: time.Now(),
		BaseDir:     g.baseDir,
		Data:        g.data,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report data: %w", err)
	}

	// #nosec G306 - 0640 allows owner/group to read, which is appropriate for report files
	return os.WriteFile(g.siblingPath(".json"), data, 0640)
}
