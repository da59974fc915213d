// Package summary groups a run's diagnostics per file and renders them as a
// column-aligned report followed by the run summary.
//
// The work happens in two synchronous passes. Aggregate consumes the whole
// diagnostic slice and builds a FileToDiagnostics; WriteReport and
// WriteRunSummary then read that aggregate and write markup to a console
// without mutating it. Reporter.Write runs both passes in order.
//
// Which diagnostics are tallied depends on the execution mode:
//
//	category   check  lint  format  ci
//	lint/...   yes    yes   no      yes (not verbose-tagged)
//	format...  yes    no    yes     yes
//
// Diagnostics without a file location are dropped. A file is listed in the
// report as soon as any of its diagnostics is seen, even if none of them
// passes the severity threshold.
package summary
