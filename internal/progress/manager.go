// Package progress provides a terminal progress bar shown while the
// aggregation walks the group/scenario/model matrix.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Manager handles the progress display. The matrix is walked strictly
// sequentially, so the manager only tracks completed cells.
type Manager struct {
	enabled    bool
	totalCells int
	completed  int
	missing    int
	bar        *progressbar.ProgressBar
	startTime  time.Time
}

// NewManager creates a progress manager for totalCells matrix cells.
func NewManager(totalCells int, enabled bool) *Manager {
	m := &Manager{
		enabled:    enabled,
		totalCells: totalCells,
		startTime:  time.Now(),
	}

	if enabled {
		m.bar = progressbar.NewOptions(totalCells,
			progressbar.OptionSetDescription("Aggregating features"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("files"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: "░",
				BarStart:      "|",
				BarEnd:        "|",
			}),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
	}

	return m
}

// CompleteCell marks one model file as processed.
func (m *Manager) CompleteCell(missing bool) {
	m.completed++
	if missing {
		m.missing++
	}
	if m.enabled {
		_ = m.bar.Add(1)
	}
}

// Finish closes out the progress bar.
func (m *Manager) Finish() {
	if m.enabled {
		_ = m.bar.Finish()
	}
}

// IsEnabled returns whether progress display is enabled
func (m *Manager) IsEnabled() bool {
	return m.enabled
}

// Completed returns the number of processed cells and how many of them
// had a missing source file.
func (m *Manager) Completed() (done, missing int) {
	return m.completed, m.missing
}
