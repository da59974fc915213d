package summary

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonReport struct {
	Mode    string      `json:"mode"`
	Files   []jsonFile  `json:"files"`
	Summary jsonSummary `json:"summary"`
}

type jsonFile struct {
	Path    string     `json:"path"`
	Formats int        `json:"formats"`
	Rules   []jsonRule `json:"rules"`
}

type jsonRule struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type jsonSummary struct {
	Changed               int   `json:"changed"`
	Unchanged             int   `json:"unchanged"`
	Skipped               int   `json:"skipped"`
	Errors                int   `json:"errors"`
	Warnings              int   `json:"warnings"`
	SuggestedFixesSkipped int   `json:"suggestedFixesSkipped"`
	DiagnosticsNotPrinted int   `json:"diagnosticsNotPrinted"`
	DurationMs            int64 `json:"durationMs"`
}

// WriteJSON renders the aggregate and run summary as indented JSON. Files
// are in path order and rules in table order.
func (r Reporter) WriteJSON(w io.Writer) error {
	files := r.Aggregate()
	out := jsonReport{
		Mode:  r.Mode.String(),
		Files: make([]jsonFile, 0, files.Len()),
		Summary: jsonSummary{
			Changed:               r.Summary.Changed,
			Unchanged:             r.Summary.Unchanged,
			Skipped:               r.Summary.Skipped,
			Errors:                r.Summary.Errors,
			Warnings:              r.Summary.Warnings,
			SuggestedFixesSkipped: r.Summary.SuggestedFixesSkipped,
			DiagnosticsNotPrinted: r.Summary.DiagnosticsNotPrinted,
			DurationMs:            r.Summary.Duration.Milliseconds(),
		},
	}
	for _, path := range files.Files() {
		s, _ := files.Get(path)
		f := jsonFile{Path: path, Formats: s.Formats, Rules: make([]jsonRule, 0, s.Lints.Len())}
		for _, row := range s.Lints.Descending() {
			f.Rules = append(f.Rules, jsonRule{Name: row.Rule.Name(), Count: row.Count})
		}
		out.Files = append(out.Files, f)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}
