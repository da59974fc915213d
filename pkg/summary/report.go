package summary

import (
	"fmt"
	"strconv"

	"github.com/dkoosis/lintsum/pkg/markup"
)

const (
	reportHeading      = "Summarised report of diagnostics by file."
	fileMarker         = "▶ "
	notFormattedNotice = "The file isn't formatted."
	lintsTriggered     = "Some lint rules were triggered"
	ruleNameHeading    = "Rule Name"
	diagnosticsHeading = "Diagnostics"
)

// WriteReport writes the per-file report: a heading, then one section per
// file in path order. Each section is logged as its own unit, so a console
// failure stops the report at the failing section.
func WriteReport(c markup.Console, files *FileToDiagnostics, layout Layout) error {
	var heading markup.Builder
	heading.Styled(reportHeading, markup.Info).Newline()
	if err := c.Log(heading.Markup()); err != nil {
		return err
	}

	for _, path := range files.Files() {
		s, _ := files.Get(path)
		if err := c.Log(fileSection(path, s, layout)); err != nil {
			return fmt.Errorf("file %s: %w", path, err)
		}
	}
	return nil
}

func fileSection(path string, s SummaryDiagnostics, layout Layout) markup.Markup {
	var b markup.Builder
	b.Text(fileMarker).Styled(path, markup.Emphasis).Newline()

	if s.Formats > 0 {
		b.Text(layout.Tab()).Styled(notFormattedNotice, markup.Info).Newline().Newline()
	}
	writeRuleTable(&b, s.Lints, layout)
	return b.Markup()
}

// writeRuleTable lays out the "Rule Name" / "Diagnostics" table. Every count
// starts at the same column as the "Diagnostics" heading: indent, heading
// width, longest name and padding.
func writeRuleTable(b *markup.Builder, lints LintsByCategory, layout Layout) {
	if lints.IsEmpty() {
		return
	}
	tab := layout.Tab()
	longest := lints.LongestName()

	b.Text(tab).Styled(lintsTriggered, markup.Info).Newline().Newline()

	b.Text(tab).
		Styled(ruleNameHeading, markup.Info, markup.Underline).
		Text(Padding(longest+layout.Padding)).
		Styled(diagnosticsHeading, markup.Info, markup.Dim).
		Newline()

	for _, row := range lints.Descending() {
		extra := longest - row.Rule.Len()
		b.Text(tab).
			Styled(row.Rule.Name(), markup.Emphasis).
			Text(Padding(extra + layout.Padding + len(ruleNameHeading))).
			Text(strconv.Itoa(row.Count)).
			Newline()
	}
}
