package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/lintsum/pkg/diagnostic"
	"github.com/dkoosis/lintsum/pkg/execution"
)

func TestAggregate_SkipsDiagnosticsWithoutFile(t *testing.T) {
	diags := []diagnostic.Diagnostic{
		{Category: "lint/noVar", Severity: diagnostic.SeverityError},
		{Category: "lint/noVar", Severity: diagnostic.SeverityError, Location: diagnostic.Location{Path: &diagnostic.Resource{Memory: true}}},
		{Category: "format", Severity: diagnostic.SeverityError, Location: diagnostic.Location{Path: &diagnostic.Resource{Argv: true}}},
	}

	files := Aggregate(execution.Check, diagnostic.SeverityHint, true, diags)

	assert.Zero(t, files.Len())
}

func TestAggregate_TracksFilesBelowThreshold(t *testing.T) {
	diags := []diagnostic.Diagnostic{
		lint("quiet.js", "lint/noVar", diagnostic.SeverityInformation),
		lint("quiet.js", "format", diagnostic.SeverityHint),
	}

	files := Aggregate(execution.Check, diagnostic.SeverityWarning, false, diags)

	require.Equal(t, []string{"quiet.js"}, files.Files())
	s, _ := files.Get("quiet.js")
	assert.True(t, s.Lints.IsEmpty())
	assert.Zero(t, s.Formats)
}

func TestAggregate_NoDeduplication(t *testing.T) {
	d := lint("a.js", "lint/noVar", diagnostic.SeverityError)

	once := Aggregate(execution.Lint, diagnostic.SeverityHint, false, []diagnostic.Diagnostic{d})
	twice := Aggregate(execution.Lint, diagnostic.SeverityHint, false, []diagnostic.Diagnostic{d, d})

	s1, _ := once.Get("a.js")
	s2, _ := twice.Get("a.js")
	assert.Equal(t, 1, s1.Lints.Count("lint/noVar"))
	assert.Equal(t, 2, s2.Lints.Count("lint/noVar"))
}

func TestAggregate_ModeGating(t *testing.T) {
	diags := []diagnostic.Diagnostic{
		lint("a.js", "lint/x", diagnostic.SeverityError),
		lint("a.js", "format", diagnostic.SeverityError),
	}

	tests := []struct {
		mode        execution.Mode
		wantLints   int
		wantFormats int
	}{
		{execution.Check, 1, 1},
		{execution.Lint, 1, 0},
		{execution.Format, 0, 1},
		{execution.CI, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			files := Aggregate(tt.mode, diagnostic.SeverityHint, false, diags)
			s, ok := files.Get("a.js")
			require.True(t, ok)
			assert.Equal(t, tt.wantLints, s.Lints.Count("lint/x"))
			assert.Equal(t, tt.wantFormats, s.Formats)
		})
	}
}

func TestAggregate_VerboseDiagnostics(t *testing.T) {
	d := verboseLint("a.js", "lint/noVar", diagnostic.SeverityError)

	tests := []struct {
		name    string
		mode    execution.Mode
		verbose bool
		want    int
	}{
		{"not requested", execution.Check, false, 0},
		{"check counts once", execution.Check, true, 1},
		{"lint counts once", execution.Lint, true, 1},
		{"ci skips verbose lints", execution.CI, true, 0},
		{"format never lints", execution.Format, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := Aggregate(tt.mode, diagnostic.SeverityHint, tt.verbose, []diagnostic.Diagnostic{d})
			s, ok := files.Get("a.js")
			require.True(t, ok, "file is tracked even when the tally is skipped")
			assert.Equal(t, tt.want, s.Lints.Count("lint/noVar"))
		})
	}
}

func TestAggregate_VerboseFormatCountedOnlyWhenRequested(t *testing.T) {
	d := verboseLint("a.js", "format", diagnostic.SeverityError)

	quiet := Aggregate(execution.Format, diagnostic.SeverityHint, false, []diagnostic.Diagnostic{d})
	loud := Aggregate(execution.Format, diagnostic.SeverityHint, true, []diagnostic.Diagnostic{d})

	s, _ := quiet.Get("a.js")
	assert.Zero(t, s.Formats)
	s, _ = loud.Get("a.js")
	assert.Equal(t, 1, s.Formats)
}

func TestAggregate_IgnoresUnknownCategories(t *testing.T) {
	diags := []diagnostic.Diagnostic{
		lint("a.js", "parse", diagnostic.SeverityError),
		lint("a.js", "", diagnostic.SeverityError),
		lint("a.js", "linter/x", diagnostic.SeverityError),
	}

	files := Aggregate(execution.Check, diagnostic.SeverityHint, false, diags)

	s, ok := files.Get("a.js")
	require.True(t, ok)
	assert.True(t, s.Lints.IsEmpty())
	assert.Zero(t, s.Formats)
}

func TestAggregate_CheckScenario(t *testing.T) {
	diags := []diagnostic.Diagnostic{
		lint("a.js", "lint/noUnusedVariables", diagnostic.SeverityError),
		lint("a.js", "format", diagnostic.SeverityWarning),
	}

	files := Aggregate(execution.Check, diagnostic.SeverityWarning, false, diags)

	require.Equal(t, []string{"a.js"}, files.Files())
	s, _ := files.Get("a.js")
	assert.Equal(t, 1, s.Lints.Len())
	assert.Equal(t, 1, s.Lints.Count("lint/noUnusedVariables"))
	assert.Equal(t, 1, s.Formats)
}
