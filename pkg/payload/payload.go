// Package payload reads the native lintsum JSON document: the mode a run
// was executed in, its counters and its diagnostics.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dkoosis/lintsum/pkg/diagnostic"
	"github.com/dkoosis/lintsum/pkg/execution"
	"github.com/dkoosis/lintsum/pkg/summary"
)

// ErrTrailingData is returned when a payload is followed by more than
// whitespace.
var ErrTrailingData = errors.New("trailing data after payload")

// Summary is the wire form of summary.RunSummary.
type Summary struct {
	Changed               int   `json:"changed"`
	Unchanged             int   `json:"unchanged"`
	Skipped               int   `json:"skipped"`
	Errors                int   `json:"errors"`
	Warnings              int   `json:"warnings"`
	SuggestedFixesSkipped int   `json:"suggestedFixesSkipped"`
	DiagnosticsNotPrinted int   `json:"diagnosticsNotPrinted"`
	DurationMs            int64 `json:"durationMs"`
}

// Document is a decoded payload.
type Document struct {
	Command     string                  `json:"command,omitempty"`
	Summary     *Summary                `json:"summary,omitempty"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics"`
}

// Mode returns the execution mode the payload declares, if any.
func (d *Document) Mode() (execution.Mode, bool, error) {
	if d.Command == "" {
		return "", false, nil
	}
	m, err := execution.ParseMode(d.Command)
	if err != nil {
		return "", false, err
	}
	return m, true, nil
}

// RunSummary converts the wire summary. A missing summary yields zeros.
func (d *Document) RunSummary() summary.RunSummary {
	if d.Summary == nil {
		return summary.RunSummary{}
	}
	s := d.Summary
	return summary.RunSummary{
		Changed:               s.Changed,
		Unchanged:             s.Unchanged,
		Skipped:               s.Skipped,
		Errors:                s.Errors,
		Warnings:              s.Warnings,
		SuggestedFixesSkipped: s.SuggestedFixesSkipped,
		DiagnosticsNotPrinted: s.DiagnosticsNotPrinted,
		Duration:              time.Duration(s.DurationMs) * time.Millisecond,
	}
}

// Read decodes exactly one payload from r.
func Read(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	if doc.Diagnostics == nil {
		return nil, errors.New("payload has no diagnostics array")
	}
	if _, _, err := doc.Mode(); err != nil {
		return nil, fmt.Errorf("payload command: %w", err)
	}
	return &doc, nil
}

// ReadBytes decodes a payload held in memory.
func ReadBytes(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}

// IsPayload reports whether data looks like a native payload: a JSON object
// with a diagnostics array.
func IsPayload(data []byte) bool {
	var probe struct {
		Diagnostics []json.RawMessage `json:"diagnostics"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(data), &probe); err != nil {
		return false
	}
	return probe.Diagnostics != nil
}
