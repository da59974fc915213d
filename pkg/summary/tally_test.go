package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLintsByCategory_Order(t *testing.T) {
	var l LintsByCategory
	for _, name := range []string{"lint/ccc", "lint/a", "lint/bbbbbb", "lint/b", "lint/ccc"} {
		l.Add(NewRuleName(name))
	}

	assert.Equal(t, 4, l.Len())
	assert.Equal(t, 2, l.Count("lint/ccc"))
	assert.Zero(t, l.Count("lint/missing"))
	assert.Equal(t, len("lint/bbbbbb"), l.LongestName())

	var asc []string
	for _, row := range l.Ascending() {
		asc = append(asc, row.Rule.Name())
	}
	assert.Equal(t, []string{"lint/a", "lint/b", "lint/ccc", "lint/bbbbbb"}, asc)

	var desc []string
	for _, row := range l.Descending() {
		desc = append(desc, row.Rule.Name())
	}
	assert.Equal(t, []string{"lint/bbbbbb", "lint/ccc", "lint/b", "lint/a"}, desc)
}

func TestLintsByCategory_ZeroValue(t *testing.T) {
	var l LintsByCategory
	assert.True(t, l.IsEmpty())
	assert.Empty(t, l.Descending())
	assert.Zero(t, l.LongestName())
}

func TestFileToDiagnostics_TrackIsIdempotent(t *testing.T) {
	files := NewFileToDiagnostics()
	files.InsertFormat("b.js")
	files.Track("b.js")
	files.Track("a.js")

	assert.Equal(t, []string{"a.js", "b.js"}, files.Files())

	b, ok := files.Get("b.js")
	assert.True(t, ok)
	assert.Equal(t, 1, b.Formats, "tracking again keeps the tally")

	a, ok := files.Get("a.js")
	assert.True(t, ok)
	assert.Zero(t, a.Formats)
	assert.True(t, a.Lints.IsEmpty())

	_, ok = files.Get("c.js")
	assert.False(t, ok)
}
