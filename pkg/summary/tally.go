package summary

import (
	"maps"
	"slices"
)

// RuleCount is one row of a rule tally.
type RuleCount struct {
	Rule  RuleName
	Count int
}

// LintsByCategory counts how many times each rule fired. Keys are RuleName
// values; map key equality on a RuleName is RuleName.Equal, so two rules
// share a row only when their names are identical. Every present key has a
// count of at least one.
type LintsByCategory struct {
	counts map[RuleName]int
}

// Add records one occurrence of rule.
func (l *LintsByCategory) Add(rule RuleName) {
	if l.counts == nil {
		l.counts = make(map[RuleName]int)
	}
	l.counts[rule]++
}

// Count returns the occurrences of the named rule, zero when absent.
func (l LintsByCategory) Count(name string) int {
	return l.counts[NewRuleName(name)]
}

// Len returns the number of distinct rules.
func (l LintsByCategory) Len() int {
	return len(l.counts)
}

// IsEmpty reports whether no rule fired.
func (l LintsByCategory) IsEmpty() bool {
	return len(l.counts) == 0
}

// Ascending returns the tally shortest name first, ties broken
// lexicographically.
func (l LintsByCategory) Ascending() []RuleCount {
	rows := make([]RuleCount, 0, len(l.counts))
	for rule, n := range l.counts {
		rows = append(rows, RuleCount{Rule: rule, Count: n})
	}
	slices.SortFunc(rows, func(a, b RuleCount) int {
		return compareForDisplay(a.Rule, b.Rule)
	})
	return rows
}

// Descending returns the tally in table order: the exact reverse of
// Ascending, so the longest name comes first.
func (l LintsByCategory) Descending() []RuleCount {
	rows := l.Ascending()
	slices.Reverse(rows)
	return rows
}

// LongestName returns the display width of the longest rule name.
func (l LintsByCategory) LongestName() int {
	longest := 0
	for rule := range l.counts {
		longest = max(longest, rule.Len())
	}
	return longest
}

// SummaryDiagnostics is the per-file tally.
type SummaryDiagnostics struct {
	Lints   LintsByCategory
	Formats int
}

// FileToDiagnostics maps file paths to their tallies. Paths are used as
// given; iteration is in lexicographic path order.
type FileToDiagnostics struct {
	files map[string]*SummaryDiagnostics
}

// NewFileToDiagnostics returns an empty mapping.
func NewFileToDiagnostics() *FileToDiagnostics {
	return &FileToDiagnostics{files: make(map[string]*SummaryDiagnostics)}
}

// Track records path as seen, creating an empty tally the first time.
func (f *FileToDiagnostics) Track(path string) *SummaryDiagnostics {
	s, ok := f.files[path]
	if !ok {
		s = &SummaryDiagnostics{}
		f.files[path] = s
	}
	return s
}

// InsertLint counts one occurrence of rule in path.
func (f *FileToDiagnostics) InsertLint(path string, rule RuleName) {
	f.Track(path).Lints.Add(rule)
}

// InsertFormat counts one format issue in path.
func (f *FileToDiagnostics) InsertFormat(path string) {
	f.Track(path).Formats++
}

// Get returns the tally for path.
func (f *FileToDiagnostics) Get(path string) (SummaryDiagnostics, bool) {
	s, ok := f.files[path]
	if !ok {
		return SummaryDiagnostics{}, false
	}
	return *s, true
}

// Len returns the number of files seen.
func (f *FileToDiagnostics) Len() int {
	return len(f.files)
}

// Files returns the tracked paths in lexicographic order.
func (f *FileToDiagnostics) Files() []string {
	return slices.Sorted(maps.Keys(f.files))
}
