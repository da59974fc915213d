package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrTrailingData is returned when a document is followed by more than
// whitespace.
var ErrTrailingData = errors.New("trailing data after sarif document")

// Read parses SARIF from an io.Reader. Exactly one document is accepted.
func Read(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode sarif: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	if doc.Version == "" {
		return nil, fmt.Errorf("missing sarif version")
	}

	return &doc, nil
}

// ReadBytes parses SARIF from a byte slice.
func ReadBytes(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}

// IsSARIF reports whether data looks like a SARIF document: a JSON object
// with a version and a runs array.
func IsSARIF(data []byte) bool {
	var probe struct {
		Version string            `json:"version"`
		Runs    []json.RawMessage `json:"runs"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(data), &probe); err != nil {
		return false
	}
	return probe.Version != "" && probe.Runs != nil
}

// NormalizePath strips the file:// scheme from an artifact URI.
func NormalizePath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

// Stats aggregates statistics from SARIF results.
type Stats struct {
	ByLevel map[string]int // error, warning, note, none
	ByFile  map[string]int
}

// ComputeStats calculates aggregate statistics from a SARIF document.
// Levels are lowercased; results without a level count as warnings, the
// SARIF default.
func ComputeStats(doc *Document) Stats {
	stats := Stats{
		ByLevel: make(map[string]int),
		ByFile:  make(map[string]int),
	}

	for _, run := range doc.Runs {
		for _, result := range run.Results {
			level := strings.ToLower(result.Level)
			if level == "" {
				level = "warning"
			}
			stats.ByLevel[level]++

			if file, ok := result.File(); ok {
				stats.ByFile[file]++
			}
		}
	}

	return stats
}
