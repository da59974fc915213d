package summary

import (
	"errors"

	"github.com/dkoosis/lintsum/pkg/diagnostic"
	"github.com/dkoosis/lintsum/pkg/markup"
)

var errSink = errors.New("sink closed")

// failAfter accepts n writes, then fails every later one.
type failAfter struct {
	n      int
	writes int
}

func (w *failAfter) Write(p []byte) (int, error) {
	if w.writes >= w.n {
		return 0, errSink
	}
	w.writes++
	return len(p), nil
}

func lint(path, rule string, sev diagnostic.Severity) diagnostic.Diagnostic {
	return diagnostic.InFile(path, rule, sev)
}

func verboseLint(path, rule string, sev diagnostic.Severity) diagnostic.Diagnostic {
	d := diagnostic.InFile(path, rule, sev)
	d.Tags = []string{diagnostic.TagVerbose}
	return d
}

// tagStyler wraps styled text in <role> tags.
type tagStyler struct{}

func (tagStyler) Style(text string, roles []markup.Role) string {
	for i := len(roles) - 1; i >= 0; i-- {
		text = "<" + roles[i].String() + ">" + text + "</" + roles[i].String() + ">"
	}
	return text
}
