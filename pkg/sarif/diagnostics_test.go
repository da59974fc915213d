package sarif

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/lintsum/pkg/diagnostic"
)

func TestMapOptions_Category(t *testing.T) {
	opts := DefaultMapOptions()
	tests := []struct {
		rule string
		want string
	}{
		{"errcheck", "lint/errcheck"},
		{"lint/style/useConst", "lint/style/useConst"},
		{"format", "format"},
		{"formatter/whitespace", "formatter/whitespace"},
		{"gofmt", "format"},
		{"goimports", "format"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, opts.Category(tt.rule), tt.rule)
	}

	custom := MapOptions{LintPrefix: "lint/go/", FormatRules: []string{"prettier"}}
	assert.Equal(t, "lint/go/errcheck", custom.Category("errcheck"))
	assert.Equal(t, "format", custom.Category("prettier"))
	assert.Equal(t, "lint/go/gofmt", custom.Category("gofmt"))
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, diagnostic.SeverityError, Severity("error"))
	assert.Equal(t, diagnostic.SeverityWarning, Severity("warning"))
	assert.Equal(t, diagnostic.SeverityWarning, Severity(""))
	assert.Equal(t, diagnostic.SeverityInformation, Severity("note"))
	assert.Equal(t, diagnostic.SeverityHint, Severity("none"))
}

func TestToDiagnostics(t *testing.T) {
	doc, err := ReadBytes([]byte(`{"version":"2.1.0","runs":[{"tool":{"driver":{"name":"golangci-lint"}},"results":[
		{"ruleId":"errcheck","level":"error","message":{"text":"unchecked"},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"file://internal/a.go"}}}]},
		{"ruleId":"gofmt","level":"warning","message":{"text":"needs formatting"},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"b.go"}}}],"properties":{"tags":["verbose"]}},
		{"ruleId":"typecheck","level":"error","message":{"text":"no location"}}
	]}]}`))
	require.NoError(t, err)

	diags := ToDiagnostics(doc, DefaultMapOptions())

	require.Len(t, diags, 3)

	path, ok := diags[0].File()
	assert.True(t, ok)
	assert.Equal(t, "internal/a.go", path)
	assert.Equal(t, "lint/errcheck", diags[0].Category)
	assert.Equal(t, diagnostic.SeverityError, diags[0].Severity)
	assert.Equal(t, "unchecked", diags[0].Description)
	assert.False(t, diags[0].IsVerbose())

	assert.Equal(t, "format", diags[1].Category)
	assert.True(t, diags[1].IsVerbose())

	_, ok = diags[2].File()
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	doc := NewBuilder("lint", "").
		AddResult("errcheck", "error", "m", "a.go", 1, 1).
		AddResult("govet", "warning", "m", "a.go", 2, 1).
		AddResult("govet", "", "m", "b.go", 3, 1).
		Document()
	doc.Runs[0].Invocations = []Invocation{
		{StartTimeUTC: "2024-01-01T00:00:00Z", EndTimeUTC: "2024-01-01T00:00:01.5Z"},
		{StartTimeUTC: "bogus", EndTimeUTC: "2024-01-01T00:00:01Z"},
	}

	s := Summarize(doc)

	assert.Equal(t, 2, s.Unchanged)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, 2, s.Warnings)
	assert.Equal(t, 1500*time.Millisecond, s.Duration)
}

func TestSummarize_MixedCaseLevels(t *testing.T) {
	doc := NewBuilder("lint", "").
		AddResult("errcheck", "Error", "m", "a.go", 1, 1).
		AddResult("govet", "Warning", "m", "a.go", 2, 1).
		Document()

	diags := ToDiagnostics(doc, DefaultMapOptions())
	s := Summarize(doc)

	assert.Equal(t, diagnostic.SeverityError, diags[0].Severity)
	assert.Equal(t, 1, s.Errors, "summary errors agree with the mapped severity")
	assert.Equal(t, 1, s.Warnings)
}
