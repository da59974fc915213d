package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/lintsum/internal/config"
	"github.com/dkoosis/lintsum/internal/input"
	"github.com/dkoosis/lintsum/pkg/markup"
	"github.com/dkoosis/lintsum/pkg/summary"
)

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "lintsum [flags] [files...]",
		Short: "Summarize lint and format diagnostics by file and rule",
		Long: `lintsum reads diagnostics (SARIF 2.1.0 or the lintsum payload) from stdin
or files and prints, per file, whether it needs formatting and how often each
lint rule fired, followed by a summary of the run.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return &exitError{code: exitFailure, err: err}
			}
			return summarize(cmd, cfg, args, stdin, stdout, newLogger(stderr, cfg.Debug))
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default .lintsum.yaml)")
	pf.String("mode", "", "execution mode: check, lint, format, ci (default: from input, else check)")
	pf.String("diagnostic-level", config.DefaultDiagnosticLevel, "lowest severity to summarize: hint, info, warning, error, fatal")
	pf.Bool("verbose", false, "include diagnostics tagged verbose")
	pf.String("format", config.DefaultFormat, "output format: auto, terminal, plain, json")
	pf.String("theme", config.DefaultTheme, "theme: default, orca, mono")
	pf.Bool("no-color", false, "disable styling")
	pf.Bool("debug", false, "log debug records to stderr")

	root.AddCommand(
		newVersionCmd(stdout),
		newConfigCmd(&cfgFile, stdout),
		newWrapCmd(stdin, stdout),
	)
	return root
}

func summarize(cmd *cobra.Command, cfg *config.Config, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if cfg.File != "" {
		logger.Debug("config loaded", slog.String("file", cfg.File))
	}

	batch, err := input.Load(cmd.Context(), logger, args, input.Options{
		SARIF: cfg.SARIF,
		Stdin: stdin,
	})
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}

	layout := cfg.SummaryLayout()
	r := summary.Reporter{
		Mode: cfg.ExecutionMode(batch.Mode),
		Payload: summary.DiagnosticsPayload{
			Diagnostics:     batch.Diagnostics,
			DiagnosticLevel: cfg.Threshold(),
			Verbose:         cfg.Verbose,
		},
		Summary: batch.Summary,
		Layout:  &layout,
	}
	logger.Debug("summarizing",
		slog.String("mode", r.Mode.String()),
		slog.String("level", r.Payload.DiagnosticLevel.String()),
		slog.Int("diagnostics", len(batch.Diagnostics)))

	switch resolveFormat(cfg.Format, stdout) {
	case config.FormatJSON:
		err = r.WriteJSON(stdout)
	case config.FormatTerminal:
		err = r.Write(markup.NewWriter(stdout, markup.ThemeByName(cfg.ThemeName())))
	default:
		err = r.Write(markup.NewWriter(stdout, markup.Plain{}))
	}
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}

	if batch.Summary.Errors > 0 {
		return &exitError{code: exitFindings}
	}
	return nil
}

// resolveFormat maps auto to terminal for a TTY and plain otherwise.
func resolveFormat(format string, w io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	if isTTYWriter(w) {
		return config.FormatTerminal
	}
	return config.FormatPlain
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
