// Package report checks the exported CSV report before any query runs, so a
// missing or garbled export fails fast instead of five queries into the run.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Preflight verifies the report file the queries will read: it must exist,
// be a regular .csv file, and have a non-empty, valid UTF-8 header row.
// Content beyond the header is the report tool's business.
func Preflight(path string) error {
	if path == "" {
		return fmt.Errorf("report file name cannot be empty")
	}

	cleanPath := filepath.Clean(path)

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("report file '%s' not found, export it before running", cleanPath)
		}
		if os.IsPermission(err) {
			return fmt.Errorf("permission denied reading report file '%s'", cleanPath)
		}
		return fmt.Errorf("cannot access report file '%s': %w", cleanPath, err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", cleanPath)
	}

	if strings.ToLower(filepath.Ext(cleanPath)) != ".csv" {
		return fmt.Errorf("report file '%s' is not a CSV", cleanPath)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("report file '%s' is empty", cleanPath)
	}

	return checkHeader(cleanPath)
}

func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open report file '%s': %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("report file '%s' has no readable header row: %w", path, err)
	}

	for _, field := range header {
		if !utf8.ValidString(field) {
			return fmt.Errorf("report file '%s' is not valid UTF-8, re-export it as UTF-8 CSV", path)
		}
	}

	return nil
}
