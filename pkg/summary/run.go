package summary

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkoosis/lintsum/pkg/execution"
	"github.com/dkoosis/lintsum/pkg/markup"
)

// UnsafeFixCommand is the command suggested when unsafe fixes were skipped.
const UnsafeFixCommand = "lintsum check --apply-unsafe"

// RunSummary holds the counters of a whole run. The traversal layer fills
// it in; this package only renders it.
type RunSummary struct {
	Changed               int
	Unchanged             int
	Skipped               int
	Errors                int
	Warnings              int
	SuggestedFixesSkipped int
	DiagnosticsNotPrinted int
	Duration              time.Duration
}

// Add returns the field-wise sum of s and other.
func (s RunSummary) Add(other RunSummary) RunSummary {
	return RunSummary{
		Changed:               s.Changed + other.Changed,
		Unchanged:             s.Unchanged + other.Unchanged,
		Skipped:               s.Skipped + other.Skipped,
		Errors:                s.Errors + other.Errors,
		Warnings:              s.Warnings + other.Warnings,
		SuggestedFixesSkipped: s.SuggestedFixesSkipped + other.SuggestedFixesSkipped,
		DiagnosticsNotPrinted: s.DiagnosticsNotPrinted + other.DiagnosticsNotPrinted,
		Duration:              s.Duration + other.Duration,
	}
}

// WriteRunSummary writes the skipped-fixes and display-cap notices when
// they apply, then the traversal summary.
func WriteRunSummary(c markup.Console, mode execution.Mode, s RunSummary) error {
	p := message.NewPrinter(language.English)

	if mode.IsCheck() && s.SuggestedFixesSkipped > 0 {
		var b markup.Builder
		b.Styled(p.Sprintf("Skipped %d suggested fixes.", s.SuggestedFixesSkipped), markup.Warn).Newline()
		b.Styled("If you wish to apply the suggested (unsafe) fixes, use the command ", markup.Info).
			Styled(UnsafeFixCommand, markup.Info, markup.Emphasis)
		if err := c.Log(b.Markup()); err != nil {
			return err
		}
	}

	if !mode.IsCI() && s.DiagnosticsNotPrinted > 0 {
		var b markup.Builder
		b.Styled("The number of diagnostics exceeds the number allowed by lintsum.", markup.Warn).Newline()
		b.Styled("Diagnostics not shown: ", markup.Info).
			Styled(p.Sprintf("%d", s.DiagnosticsNotPrinted), markup.Emphasis).
			Styled(".", markup.Info)
		if err := c.Log(b.Markup()); err != nil {
			return err
		}
	}

	return c.Log(traversalSummary(p, mode, s))
}

func traversalSummary(p *message.Printer, mode execution.Mode, s RunSummary) markup.Markup {
	verb := "Checked"
	if mode.IsFormat() {
		verb = "Formatted"
	}
	total := s.Changed + s.Unchanged

	var b markup.Builder
	b.Text(p.Sprintf("%s %d %s in %s.", verb, total, plural(total, "file", "files"), formatDuration(s.Duration)))
	if s.Changed > 0 {
		b.Text(" ").Styled(p.Sprintf("Fixed %d %s.", s.Changed, plural(s.Changed, "file", "files")), markup.Success)
	} else {
		b.Text(" No fixes applied.")
	}
	if s.Skipped > 0 {
		b.Newline().Styled(p.Sprintf("Skipped %d %s.", s.Skipped, plural(s.Skipped, "file", "files")), markup.Warn)
	}
	if s.Errors > 0 {
		b.Newline().Styled(p.Sprintf("Found %d %s.", s.Errors, plural(s.Errors, "error", "errors")), markup.Error)
	}
	if s.Warnings > 0 {
		b.Newline().Styled(p.Sprintf("Found %d %s.", s.Warnings, plural(s.Warnings, "warning", "warnings")), markup.Warn)
	}
	return b.Markup()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}
