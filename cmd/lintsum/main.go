// lintsum condenses a lint/format run into a per-file summary of which rules
// fired and how often, followed by the run's traversal summary.
//
// Usage:
//
//	golangci-lint run --output.sarif.path=stdout ./... | lintsum
//	lintsum --mode lint report.sarif other.sarif
//	gofmt -l . | lintsum wrap sarif --tool gofmt | lintsum --mode format
//
// Accepts two input formats, from stdin or files:
//   - SARIF 2.1.0 (static analysis results)
//   - the native lintsum payload ({"command", "summary", "diagnostics"})
//
// Output formats (auto-detected):
//
//	terminal  styled output (default when TTY)
//	plain     the same text without styling (default when piped)
//	json      structured JSON for automation
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitFailure  = 2
)

// exitError carries an exit code through cobra. A nil err exits silently.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "lintsum: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "lintsum: %v\n", err)
	return exitFailure
}
