// Package diagnostic defines the diagnostic records consumed by the summary
// reporter. Producers (linters, formatters, SARIF files) build them; the
// reporter only reads them.
package diagnostic

import "slices"

// TagVerbose marks a diagnostic that is only surfaced when verbose output is
// requested.
const TagVerbose = "verbose"

// Resource identifies what a diagnostic points at. Only File resources are
// attributable to a file; Memory and Argv cover diagnostics about inline
// sources and command-line arguments.
type Resource struct {
	File   string `json:"file,omitempty"`
	Memory bool   `json:"memory,omitempty"`
	Argv   bool   `json:"argv,omitempty"`
}

// Location pinpoints a diagnostic.
type Location struct {
	Path *Resource `json:"path,omitempty"`
}

// Diagnostic is a single reported issue.
type Diagnostic struct {
	Category    string   `json:"category,omitempty"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description,omitempty"`
	Location    Location `json:"location"`
	Tags        []string `json:"tags,omitempty"`
}

// File returns the file path the diagnostic is attributed to.
func (d Diagnostic) File() (string, bool) {
	if d.Location.Path == nil || d.Location.Path.File == "" {
		return "", false
	}
	return d.Location.Path.File, true
}

// IsVerbose reports whether the diagnostic carries the verbose tag.
func (d Diagnostic) IsVerbose() bool {
	return slices.Contains(d.Tags, TagVerbose)
}

// InFile is a convenience constructor for a file-attributed diagnostic.
func InFile(path, category string, severity Severity) Diagnostic {
	return Diagnostic{
		Category: category,
		Severity: severity,
		Location: Location{Path: &Resource{File: path}},
	}
}
