package summary

import "strings"

const (
	// IndentWidth is the width of the indentation unit that starts every
	// nested report line.
	IndentWidth = 5
	// ColumnPadding separates the rule name column from the count column.
	ColumnPadding = 15
)

// Layout holds the spacing used by the report renderer.
type Layout struct {
	Indent  int
	Padding int
}

// DefaultLayout returns the standard report spacing.
func DefaultLayout() Layout {
	return Layout{Indent: IndentWidth, Padding: ColumnPadding}
}

// Tab returns one indentation unit.
func (l Layout) Tab() string {
	return Padding(l.Indent)
}

// Padding returns a run of n spaces. Non-positive n yields "".
func Padding(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
