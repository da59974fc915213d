package summary

import (
	"strings"

	"github.com/dkoosis/lintsum/pkg/diagnostic"
	"github.com/dkoosis/lintsum/pkg/execution"
)

const (
	// LintPrefix marks lint rule categories.
	LintPrefix = "lint/"
	// FormatPrefix marks formatter categories.
	FormatPrefix = "format"
)

// Aggregate groups diagnostics per file and tallies lint rules and format
// issues according to mode, the severity threshold and whether verbose
// output was requested. It never fails: diagnostics that cannot be
// attributed to a file or do not match a known category are left out.
func Aggregate(mode execution.Mode, threshold diagnostic.Severity, verbose bool, diagnostics []diagnostic.Diagnostic) *FileToDiagnostics {
	files := NewFileToDiagnostics()
	for _, d := range diagnostics {
		files.observe(mode, threshold, verbose, d)
	}
	return files
}

func (f *FileToDiagnostics) observe(mode execution.Mode, threshold diagnostic.Severity, verbose bool, d diagnostic.Diagnostic) {
	path, ok := d.File()
	if !ok {
		return
	}
	f.Track(path)

	if d.Severity < threshold {
		return
	}

	isLint := strings.HasPrefix(d.Category, LintPrefix)

	// Verbose-tagged and regular diagnostics take separate lint paths, so a
	// diagnostic is lint-counted at most once.
	if d.IsVerbose() {
		if !verbose {
			return
		}
		if isLint && (mode.IsCheck() || mode.IsLint()) {
			f.InsertLint(path, NewRuleName(d.Category))
		}
	} else if isLint && (mode.IsCheck() || mode.IsLint() || mode.IsCI()) {
		f.InsertLint(path, NewRuleName(d.Category))
	}

	if strings.HasPrefix(d.Category, FormatPrefix) && (mode.IsCheck() || mode.IsFormat() || mode.IsCI()) {
		f.InsertFormat(path)
	}
}
