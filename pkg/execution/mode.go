// Package execution describes the high-level operation a run performed.
package execution

import (
	"fmt"
	"strings"
)

// Mode is the operation the CLI run performed. It gates which diagnostic
// categories are summarized.
type Mode string

const (
	Check  Mode = "check"
	Lint   Mode = "lint"
	Format Mode = "format"
	CI     Mode = "ci"
)

// Modes lists every valid mode.
var Modes = []Mode{Check, Lint, Format, CI}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case Check, Lint, Format, CI:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (expected check, lint, format, ci)", s)
}

func (m Mode) IsCheck() bool  { return m == Check }
func (m Mode) IsLint() bool   { return m == Lint }
func (m Mode) IsFormat() bool { return m == Format }
func (m Mode) IsCI() bool     { return m == CI }

func (m Mode) String() string { return string(m) }
