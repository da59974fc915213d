package summary

import (
	"cmp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RuleName identifies a lint rule by its full category name, for example
// "lint/suspicious/noDebugger".
//
// Identity and display order differ: Equal compares the exact name,
// CompareByLength compares only the name length.
type RuleName struct {
	name string
}

// NewRuleName wraps a category name.
func NewRuleName(name string) RuleName {
	return RuleName{name: name}
}

// Name returns the wrapped rule name.
func (r RuleName) Name() string {
	return r.name
}

// Len returns the display width of the name in terminal cells. For the
// ASCII names rules use this is the character count.
func (r RuleName) Len() int {
	return runewidth.StringWidth(r.name)
}

// Equal reports whether both names are exactly the same string. It is the
// same relation as == on RuleName, which LintsByCategory relies on for its
// map keys.
func (r RuleName) Equal(other RuleName) bool {
	return r == other
}

func (r RuleName) String() string {
	return r.name
}

// CompareByLength orders rule names by length only. Names of equal length
// compare as 0 regardless of their content.
func CompareByLength(a, b RuleName) int {
	return cmp.Compare(a.Len(), b.Len())
}

// compareForDisplay is CompareByLength with a lexicographic tie-break so
// the table layout does not depend on map iteration order.
func compareForDisplay(a, b RuleName) int {
	if c := CompareByLength(a, b); c != 0 {
		return c
	}
	return strings.Compare(a.name, b.name)
}
