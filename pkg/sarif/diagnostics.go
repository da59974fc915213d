package sarif

import (
	"slices"
	"strings"
	"time"

	"github.com/dkoosis/lintsum/pkg/diagnostic"
	"github.com/dkoosis/lintsum/pkg/summary"
)

// MapOptions controls how SARIF rule ids become diagnostic categories.
type MapOptions struct {
	// LintPrefix is prepended to rule ids that carry no category prefix.
	LintPrefix string `koanf:"lint_prefix" yaml:"lint_prefix"`
	// FormatRules lists rule ids reported by formatters; they map to the
	// "format" category.
	FormatRules []string `koanf:"format_rules" yaml:"format_rules"`
}

// DefaultMapOptions returns the mapping used when nothing is configured.
func DefaultMapOptions() MapOptions {
	return MapOptions{
		LintPrefix:  summary.LintPrefix,
		FormatRules: []string{"gofmt", "goimports", "gofumpt"},
	}
}

// Category returns the diagnostic category for a rule id. Ids that already
// start with a known prefix pass through unchanged.
func (o MapOptions) Category(ruleID string) string {
	switch {
	case ruleID == "":
		return ""
	case strings.HasPrefix(ruleID, summary.LintPrefix), strings.HasPrefix(ruleID, summary.FormatPrefix):
		return ruleID
	case slices.Contains(o.FormatRules, ruleID):
		return summary.FormatPrefix
	default:
		return o.LintPrefix + ruleID
	}
}

// Severity maps a SARIF level to a diagnostic severity. SARIF defaults a
// missing level to warning.
func Severity(level string) diagnostic.Severity {
	switch strings.ToLower(level) {
	case "error":
		return diagnostic.SeverityError
	case "note":
		return diagnostic.SeverityInformation
	case "none":
		return diagnostic.SeverityHint
	default:
		return diagnostic.SeverityWarning
	}
}

// ToDiagnostics converts every result of every run, in document order.
func ToDiagnostics(doc *Document, opts MapOptions) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, run := range doc.Runs {
		for _, r := range run.Results {
			d := diagnostic.Diagnostic{
				Category:    opts.Category(r.RuleID),
				Severity:    Severity(r.Level),
				Description: r.Message.Text,
			}
			if file, ok := r.File(); ok {
				d.Location.Path = &diagnostic.Resource{File: file}
			}
			if r.Properties != nil {
				d.Tags = slices.Clone(r.Properties.Tags)
			}
			out = append(out, d)
		}
	}
	return out
}

// Summarize derives run counters from a document: errors and warnings by
// level, every referenced file as unchanged, and the time spent in the
// recorded invocations.
func Summarize(doc *Document) summary.RunSummary {
	stats := ComputeStats(doc)
	s := summary.RunSummary{
		Unchanged: len(stats.ByFile),
		Errors:    stats.ByLevel["error"],
		Warnings:  stats.ByLevel["warning"],
	}
	for _, run := range doc.Runs {
		for _, inv := range run.Invocations {
			start, err := time.Parse(time.RFC3339Nano, inv.StartTimeUTC)
			if err != nil {
				continue
			}
			end, err := time.Parse(time.RFC3339Nano, inv.EndTimeUTC)
			if err != nil || end.Before(start) {
				continue
			}
			s.Duration += end.Sub(start)
		}
	}
	return s
}
