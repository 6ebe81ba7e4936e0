// Package features provides loading, normalization, and set intersection
// of per-model selected-feature lists.
package features

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Read loads a selected-features file and returns its non-empty, trimmed
// lines in file order. A missing file is not an error: it yields an empty
// slice with missing=true so callers can report the absence without
// aborting the run. Invalid UTF-8 bytes are replaced rather than failing
// the read.
func Read(path string) (lines []string, missing bool, err error) {
	// #nosec G304 - paths are assembled from the configured vocabulary
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("failed to open feature file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		if !utf8.ValidString(s) {
			s = strings.ToValidUTF8(s, string(utf8.RuneError))
		}
		lines = append(lines, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read feature file: %w", err)
	}
	return lines, false, nil
}
