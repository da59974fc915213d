package summary

import (
	"fmt"

	"github.com/dkoosis/lintsum/pkg/diagnostic"
	"github.com/dkoosis/lintsum/pkg/execution"
	"github.com/dkoosis/lintsum/pkg/markup"
)

// DiagnosticsPayload carries a run's diagnostics and the display filters
// requested for them.
type DiagnosticsPayload struct {
	Diagnostics     []diagnostic.Diagnostic
	DiagnosticLevel diagnostic.Severity
	Verbose         bool
}

// Reporter is the single rendering entry point: diagnostics report first,
// run summary second.
type Reporter struct {
	Mode    execution.Mode
	Payload DiagnosticsPayload
	Summary RunSummary
	// Layout overrides the report spacing; nil means DefaultLayout. A
	// non-nil zero Layout renders with no indent and no padding.
	Layout *Layout
}

// Aggregate builds the per-file tallies for the reporter's payload.
func (r Reporter) Aggregate() *FileToDiagnostics {
	return Aggregate(r.Mode, r.Payload.DiagnosticLevel, r.Payload.Verbose, r.Payload.Diagnostics)
}

// Write renders the report to c. The only possible failure is the console
// rejecting a write; it aborts the rest of the output.
func (r Reporter) Write(c markup.Console) error {
	files := r.Aggregate()
	if err := WriteReport(c, files, r.layout()); err != nil {
		return fmt.Errorf("write diagnostics report: %w", err)
	}
	if err := WriteRunSummary(c, r.Mode, r.Summary); err != nil {
		return fmt.Errorf("write run summary: %w", err)
	}
	return nil
}

func (r Reporter) layout() Layout {
	if r.Layout == nil {
		return DefaultLayout()
	}
	return *r.Layout
}
