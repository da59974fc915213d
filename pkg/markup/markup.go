// Package markup is the text surface the summary reporter writes to.
//
// Callers compose a Markup from literal text and text wrapped in named style
// roles, then hand the composed unit to a Console. How a role looks is up to
// the Styler behind the console: lipgloss colors on a terminal, nothing at
// all for plain output.
package markup

import "strings"

// Role names a styling intent rather than a concrete color.
type Role uint8

const (
	Emphasis Role = iota
	Info
	Warn
	Error
	Success
	Underline
	Dim
)

func (r Role) String() string {
	switch r {
	case Emphasis:
		return "emphasis"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	case Success:
		return "success"
	case Underline:
		return "underline"
	case Dim:
		return "dim"
	}
	return "unknown"
}

// Node is a run of text wrapped in zero or more roles. Roles nest in order,
// outermost first.
type Node struct {
	Text  string
	Roles []Role
}

// Markup is a composed unit of output.
type Markup []Node

// Text returns an unstyled node.
func Text(s string) Node {
	return Node{Text: s}
}

// Styled returns a node wrapped in the given roles.
func Styled(s string, roles ...Role) Node {
	return Node{Text: s, Roles: roles}
}

// String renders m without any styling.
func (m Markup) String() string {
	var sb strings.Builder
	for _, n := range m {
		sb.WriteString(n.Text)
	}
	return sb.String()
}

// Builder accumulates nodes. The zero value is ready to use.
type Builder struct {
	nodes Markup
}

// Text appends literal text.
func (b *Builder) Text(s string) *Builder {
	if s != "" {
		b.nodes = append(b.nodes, Text(s))
	}
	return b
}

// Styled appends text wrapped in roles.
func (b *Builder) Styled(s string, roles ...Role) *Builder {
	b.nodes = append(b.nodes, Styled(s, roles...))
	return b
}

// Newline appends a line break.
func (b *Builder) Newline() *Builder {
	return b.Text("\n")
}

// Markup returns the composed unit.
func (b *Builder) Markup() Markup {
	return b.nodes
}
