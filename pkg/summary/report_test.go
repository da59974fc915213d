package summary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/lintsum/pkg/diagnostic"
	"github.com/dkoosis/lintsum/pkg/execution"
	"github.com/dkoosis/lintsum/pkg/markup"
)

func renderPlain(t *testing.T, files *FileToDiagnostics) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteReport(markup.NewWriter(&buf, nil), files, DefaultLayout()))
	return buf.String()
}

func TestWriteReport_CheckScenario(t *testing.T) {
	files := Aggregate(execution.Check, diagnostic.SeverityWarning, false, []diagnostic.Diagnostic{
		lint("a.js", "lint/noUnusedVariables", diagnostic.SeverityError),
		lint("a.js", "format", diagnostic.SeverityWarning),
	})

	got := renderPlain(t, files)

	tab := Padding(IndentWidth)
	rule := "lint/noUnusedVariables"
	want := "Summarised report of diagnostics by file.\n" +
		"\n" +
		"▶ a.js\n" +
		tab + "The file isn't formatted.\n" +
		"\n" +
		tab + "Some lint rules were triggered\n" +
		"\n" +
		tab + "Rule Name" + Padding(len(rule)+ColumnPadding) + "Diagnostics\n" +
		tab + rule + Padding(ColumnPadding+len("Rule Name")) + "1\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestWriteReport_FileWithoutTallies(t *testing.T) {
	files := NewFileToDiagnostics()
	files.Track("clean.js")

	got := renderPlain(t, files)

	assert.Equal(t, "Summarised report of diagnostics by file.\n\n▶ clean.js\n\n", got)
}

func TestWriteReport_FilesInPathOrder(t *testing.T) {
	files := NewFileToDiagnostics()
	for _, p := range []string{"src/b.js", "lib/z.js", "src/a.js"} {
		files.InsertFormat(p)
	}

	got := renderPlain(t, files)

	ia := strings.Index(got, "▶ lib/z.js")
	ib := strings.Index(got, "▶ src/a.js")
	ic := strings.Index(got, "▶ src/b.js")
	require.True(t, ia >= 0 && ib >= 0 && ic >= 0, got)
	assert.Less(t, ia, ib)
	assert.Less(t, ib, ic)
}

// tableRows returns the rule rows of a single-file report, in output order.
func tableRows(t *testing.T, out string, names ...string) []string {
	t.Helper()
	var rows []string
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		for _, n := range names {
			if strings.HasPrefix(trimmed, n+" ") {
				rows = append(rows, line)
			}
		}
	}
	require.Len(t, rows, len(names), out)
	return rows
}

func TestWriteReport_RowsDescendByLength(t *testing.T) {
	files := NewFileToDiagnostics()
	files.InsertLint("a.js", NewRuleName("abc"))
	files.InsertLint("a.js", NewRuleName("abcdefg"))
	files.InsertLint("a.js", NewRuleName("abcde"))

	rows := tableRows(t, renderPlain(t, files), "abc", "abcdefg", "abcde")

	assert.Contains(t, rows[0], "abcdefg ")
	assert.Contains(t, rows[1], "abcde ")
	assert.Contains(t, rows[2], "abc ")
}

func TestWriteReport_CountsAlign(t *testing.T) {
	files := NewFileToDiagnostics()
	files.InsertLint("a.js", NewRuleName("abc"))
	files.InsertLint("a.js", NewRuleName("abcdefg"))
	files.InsertLint("a.js", NewRuleName("abcdefg"))
	files.InsertLint("a.js", NewRuleName("abcde"))

	out := renderPlain(t, files)
	rows := tableRows(t, out, "abc", "abcdefg", "abcde")

	offsets := make([]int, 0, len(rows))
	for _, row := range rows {
		offsets = append(offsets, strings.LastIndex(row, " ")+1)
	}
	assert.Equal(t, offsets[0], offsets[1])
	assert.Equal(t, offsets[1], offsets[2])

	var heading string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Rule Name") {
			heading = line
		}
	}
	assert.Equal(t, offsets[0], strings.Index(heading, "Diagnostics"), "counts start under the heading")
}

func TestWriteReport_EqualLengthRowsAreDeterministic(t *testing.T) {
	for range 5 {
		files := NewFileToDiagnostics()
		files.InsertLint("a.js", NewRuleName("lint/a"))
		files.InsertLint("a.js", NewRuleName("lint/c"))
		files.InsertLint("a.js", NewRuleName("lint/b"))

		rows := tableRows(t, renderPlain(t, files), "lint/a", "lint/b", "lint/c")

		assert.Contains(t, rows[0], "lint/c")
		assert.Contains(t, rows[1], "lint/b")
		assert.Contains(t, rows[2], "lint/a")
	}
}

func TestWriteReport_CustomLayout(t *testing.T) {
	files := NewFileToDiagnostics()
	files.InsertLint("a.js", NewRuleName("lint/x"))

	var buf bytes.Buffer
	require.NoError(t, WriteReport(markup.NewWriter(&buf, nil), files, Layout{Indent: 2, Padding: 1}))

	assert.Contains(t, buf.String(), "\n  Rule Name"+Padding(len("lint/x")+1)+"Diagnostics\n")
	assert.Contains(t, buf.String(), "\n  lint/x"+Padding(1+len("Rule Name"))+"1\n")
}

func TestWriteReport_SinkFailureAbortsRemainingSections(t *testing.T) {
	files := NewFileToDiagnostics()
	files.Track("a.js")
	files.Track("b.js")
	files.Track("c.js")

	w := &failAfter{n: 2}
	err := WriteReport(markup.NewWriter(w, nil), files, DefaultLayout())

	require.Error(t, err)
	assert.ErrorIs(t, err, errSink)
	assert.Contains(t, err.Error(), "b.js")
	assert.Equal(t, 2, w.writes, "heading and first section only")
}
