// Package input reads diagnostics from stdin or files, in SARIF or the
// native payload format, and merges them into one batch.
package input

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dkoosis/lintsum/internal/detect"
	"github.com/dkoosis/lintsum/pkg/diagnostic"
	"github.com/dkoosis/lintsum/pkg/execution"
	"github.com/dkoosis/lintsum/pkg/payload"
	"github.com/dkoosis/lintsum/pkg/sarif"
	"github.com/dkoosis/lintsum/pkg/summary"
)

// Stdin is the source name that reads standard input.
const Stdin = "-"

var (
	// ErrUnknownFormat is returned for input that is neither SARIF nor a payload.
	ErrUnknownFormat = errors.New("unrecognized input format (expected SARIF or lintsum payload)")
	// ErrEmptyInput is returned when a source holds nothing but whitespace.
	ErrEmptyInput = errors.New("empty input")
)

// Options configures Load.
type Options struct {
	// SARIF controls how SARIF rule ids become categories.
	SARIF sarif.MapOptions
	// Stdin replaces os.Stdin when set.
	Stdin io.Reader
	// Jobs caps concurrent file reads; zero means GOMAXPROCS.
	Jobs int
}

// Batch is the merged content of every source.
type Batch struct {
	// Mode is the first mode declared by a payload, or "" when none did.
	Mode        execution.Mode
	Diagnostics []diagnostic.Diagnostic
	Summary     summary.RunSummary
}

// Load reads every source concurrently and merges them in argument order.
// No sources means stdin.
func Load(ctx context.Context, logger *slog.Logger, sources []string, opts Options) (*Batch, error) {
	if len(sources) == 0 {
		sources = []string{Stdin}
	}
	stdinSeen := false
	for _, src := range sources {
		if src != Stdin {
			continue
		}
		if stdinSeen {
			return nil, errors.New("stdin given more than once")
		}
		stdinSeen = true
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns its index.
	results := make([]*Batch, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(sources)))

	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := readSource(src, opts.Stdin)
			if err != nil {
				return err
			}
			b, format, err := Decode(data, opts.SARIF)
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(src), err)
			}
			logger.Debug("input decoded",
				slog.String("source", displayName(src)),
				slog.String("format", format.String()),
				slog.Int("diagnostics", len(b.Diagnostics)))
			results[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(logger, results), nil
}

// Decode sniffs data and decodes it with the matching reader.
func Decode(data []byte, opts sarif.MapOptions) (*Batch, detect.Format, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, detect.Unknown, ErrEmptyInput
	}
	format := detect.Sniff(data)
	switch format {
	case detect.SARIF:
		doc, err := sarif.ReadBytes(data)
		if err != nil {
			return nil, format, err
		}
		return &Batch{
			Diagnostics: sarif.ToDiagnostics(doc, opts),
			Summary:     sarif.Summarize(doc),
		}, format, nil
	case detect.Payload:
		doc, err := payload.ReadBytes(data)
		if err != nil {
			return nil, format, err
		}
		mode, _, err := doc.Mode()
		if err != nil {
			return nil, format, err
		}
		return &Batch{
			Mode:        mode,
			Diagnostics: doc.Diagnostics,
			Summary:     doc.RunSummary(),
		}, format, nil
	default:
		return nil, format, ErrUnknownFormat
	}
}

func merge(logger *slog.Logger, parts []*Batch) *Batch {
	out := &Batch{}
	for _, b := range parts {
		if b.Mode != "" {
			switch {
			case out.Mode == "":
				out.Mode = b.Mode
			case out.Mode != b.Mode:
				logger.Warn("inputs declare different modes; keeping the first",
					slog.String("kept", out.Mode.String()),
					slog.String("ignored", b.Mode.String()))
			}
		}
		out.Diagnostics = append(out.Diagnostics, b.Diagnostics...)
		out.Summary = out.Summary.Add(b.Summary)
	}
	return out
}

func readSource(src string, stdin io.Reader) ([]byte, error) {
	if src == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func displayName(src string) string {
	if src == Stdin {
		return "stdin"
	}
	return src
}
