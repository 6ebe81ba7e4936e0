// Package debug provides an optional JSON run log for troubleshooting
// aggregation runs: which files were read, which were missing, and how
// long each step took.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Logger records run events when enabled. A disabled logger is a cheap
// no-op so call sites never need to guard.
type Logger struct {
	mu         sync.Mutex
	enabled    bool
	startTime  time.Time
	session    *Session
	outputDir  string
	outputPath string
}

// Session represents the entire run.
type Session struct {
	StartTime  time.Time              `json:"start_time"`
	EndTime    *time.Time             `json:"end_time,omitempty"`
	Loads      []LoadEvent            `json:"loads"`
	Writes     []WriteEvent           `json:"writes"`
	SystemInfo map[string]interface{} `json:"system_info"`
}

// LoadEvent captures one feature-file read.
type LoadEvent struct {
	Timestamp       time.Time     `json:"timestamp"`
	Path            string        `json:"path"`
	Group           string        `json:"group,omitempty"`
	Scenario        string        `json:"scenario"`
	Model           string        `json:"model"`
	Missing         bool          `json:"missing,omitempty"`
	RawCount        int           `json:"raw_count"`
	NormalizedCount int           `json:"normalized_count"`
	Duration        time.Duration `json:"duration"`
}

// WriteEvent captures one output-file write.
type WriteEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Count     int       `json:"count"`
}

// NewLogger creates a run logger writing under outputDir when enabled.
func NewLogger(enabled bool, outputDir string) *Logger {
	logger := &Logger{
		enabled:   enabled,
		startTime: time.Now(),
		outputDir: outputDir,
		session: &Session{
			StartTime: time.Now(),
			SystemInfo: map[string]interface{}{
				"go_version": runtime.Version(),
				"timestamp":  time.Now().Format(time.RFC3339),
			},
		},
	}

	if enabled {
		logger.outputPath = filepath.Join(outputDir, "debug")
	}

	return logger
}

// IsEnabled returns whether debug logging is enabled
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

// LogLoad records a feature-file read.
func (l *Logger) LogLoad(ev LoadEvent) {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ev.Timestamp = time.Now()
	l.session.Loads = append(l.session.Loads, ev)
}

// LogWrite records an output-file write.
func (l *Logger) LogWrite(path string, count int) {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session.Writes = append(l.session.Writes, WriteEvent{
		Timestamp: time.Now(),
		Path:      path,
		Count:     count,
	})
}

// Finalize writes the session log to <outputDir>/debug/session.json.
func (l *Logger) Finalize() error {
	if !l.enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.session.EndTime = &now

	if err := os.MkdirAll(l.outputPath, 0750); err != nil {
		return fmt.Errorf("failed to create debug output directory: %w", err)
	}

	sessionPath := filepath.Join(l.outputPath, "session.json")
	data, err := json.MarshalIndent(l.session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}
	if err := os.WriteFile(sessionPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// GetOutputPath returns the directory where debug data is written.
func (l *Logger) GetOutputPath() string {
	return l.outputPath
}
