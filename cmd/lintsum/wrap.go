package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoosis/lintsum/pkg/sarif"
)

func newWrapCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	wrap := &cobra.Command{
		Use:   "wrap",
		Short: "Convert plain tool output into an input lintsum reads",
	}

	var toolName, ruleID, level, toolVersion string
	sarifCmd := &cobra.Command{
		Use:   "sarif",
		Short: "Wrap file:line:col: message lines from stdin into a SARIF document",
		Example: `  go vet ./... 2>&1 | lintsum wrap sarif --tool govet | lintsum
  gofmt -l . | lintsum wrap sarif --tool gofmt --rule gofmt | lintsum --mode format`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if toolName == "" {
				return &exitError{code: exitFailure, err: errors.New("wrap sarif: --tool is required")}
			}
			if err := wrapSARIF(stdin, stdout, toolName, toolVersion, ruleID, level); err != nil {
				return &exitError{code: exitFailure, err: err}
			}
			return nil
		},
	}
	f := sarifCmd.Flags()
	f.StringVar(&toolName, "tool", "", "tool name for SARIF driver.name (required)")
	f.StringVar(&ruleID, "rule", "finding", "rule id for every result")
	f.StringVar(&level, "level", "warning", "result level: error, warning, note")
	f.StringVar(&toolVersion, "tool-version", "", "tool version string")

	wrap.AddCommand(sarifCmd)
	return wrap
}

// wrapSARIF reads diagnostic lines from r and writes one SARIF document to
// w. Unrecognized lines are dropped.
func wrapSARIF(r io.Reader, w io.Writer, toolName, toolVersion, ruleID, level string) error {
	b := sarif.NewBuilder(toolName, toolVersion)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		file, ln, col, msg := parseDiagLine(line)
		if file == "" {
			continue
		}
		b.AddResult(ruleID, level, msg, file, ln, col)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("wrap sarif: reading stdin: %w", err)
	}

	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("wrap sarif: writing output: %w", err)
	}
	return nil
}

// parseDiagLine parses the common compiler diagnostic shapes:
//  1. file:line:col: message
//  2. file:line: message
//  3. path/to/file  (file-only, e.g., gofmt -l)
//
// Handles Windows drive-letter prefixes (e.g. C:\path\file.go:10:5: msg).
func parseDiagLine(line string) (file string, ln, col int, msg string) {
	rest := line
	var prefix string

	// Strip the drive letter so the colon split works.
	if len(rest) >= 3 && rest[1] == ':' && (rest[2] == '\\' || rest[2] == '/') {
		prefix = rest[:2]
		rest = rest[2:]
	}

	parts := strings.SplitN(rest, ":", 4)
	if len(parts) >= 4 {
		l, lerr := strconv.Atoi(strings.TrimSpace(parts[1]))
		c, cerr := strconv.Atoi(strings.TrimSpace(parts[2]))
		if lerr == nil && cerr == nil {
			return prefix + parts[0], l, c, strings.TrimSpace(parts[3])
		}
	}

	if len(parts) >= 3 {
		if l, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			return prefix + parts[0], l, 0, strings.TrimSpace(strings.Join(parts[2:], ":"))
		}
	}

	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, " ") && (strings.Contains(trimmed, "/") || strings.Contains(trimmed, ".")) {
		return trimmed, 0, 0, "needs formatting"
	}

	return "", 0, 0, ""
}
