package markup

import (
	"fmt"
	"io"
	"strings"
)

// Console accepts composed units of markup. Log writes one unit followed by
// a line break and returns any write failure to the caller.
type Console interface {
	Log(m Markup) error
}

// Styler turns a run of text and its roles into output bytes.
type Styler interface {
	Style(text string, roles []Role) string
}

// Plain is a Styler that drops every role.
type Plain struct{}

// Style returns text unchanged.
func (Plain) Style(text string, _ []Role) string {
	return text
}

// Writer is a Console backed by an io.Writer.
type Writer struct {
	w      io.Writer
	styler Styler
}

// NewWriter creates a console writing to w. A nil styler means Plain.
func NewWriter(w io.Writer, styler Styler) *Writer {
	if styler == nil {
		styler = Plain{}
	}
	return &Writer{w: w, styler: styler}
}

// Log renders m and writes it with a trailing newline in a single write.
func (c *Writer) Log(m Markup) error {
	var sb strings.Builder
	for _, n := range m {
		if len(n.Roles) == 0 || n.Text == "" {
			sb.WriteString(n.Text)
			continue
		}
		sb.WriteString(c.styler.Style(n.Text, n.Roles))
	}
	sb.WriteString("\n")
	if _, err := io.WriteString(c.w, sb.String()); err != nil {
		return fmt.Errorf("write markup: %w", err)
	}
	return nil
}
