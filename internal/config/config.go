package config

import (
	"fmt"
	"slices"

	"github.com/dkoosis/lintsum/pkg/diagnostic"
	"github.com/dkoosis/lintsum/pkg/execution"
	"github.com/dkoosis/lintsum/pkg/markup"
	"github.com/dkoosis/lintsum/pkg/sarif"
	"github.com/dkoosis/lintsum/pkg/summary"
)

// Output formats.
const (
	FormatAuto     = "auto"
	FormatTerminal = "terminal"
	FormatPlain    = "plain"
	FormatJSON     = "json"
)

// Formats lists every valid output format.
var Formats = []string{FormatAuto, FormatTerminal, FormatPlain, FormatJSON}

// Constants for default values.
const (
	DefaultDiagnosticLevel = "information"
	DefaultFormat          = FormatAuto
	DefaultTheme           = "default"
)

// LayoutConfig mirrors summary.Layout for configuration files.
type LayoutConfig struct {
	Indent  int `koanf:"indent" yaml:"indent"`
	Padding int `koanf:"padding" yaml:"padding"`
}

// Config is the resolved lintsum configuration.
type Config struct {
	Mode            string           `koanf:"mode" yaml:"mode"`
	DiagnosticLevel string           `koanf:"diagnostic_level" yaml:"diagnostic_level"`
	Verbose         bool             `koanf:"verbose" yaml:"verbose"`
	Format          string           `koanf:"format" yaml:"format"`
	Theme           string           `koanf:"theme" yaml:"theme"`
	NoColor         bool             `koanf:"no_color" yaml:"no_color"`
	Debug           bool             `koanf:"debug" yaml:"debug"`
	Layout          LayoutConfig     `koanf:"layout" yaml:"layout"`
	SARIF           sarif.MapOptions `koanf:"sarif" yaml:"sarif"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-" yaml:"-"`
}

func defaults() map[string]any {
	sarifDefaults := sarif.DefaultMapOptions()
	return map[string]any{
		"mode":               "",
		"diagnostic_level":   DefaultDiagnosticLevel,
		"verbose":            false,
		"format":             DefaultFormat,
		"theme":              DefaultTheme,
		"no_color":           false,
		"debug":              false,
		"layout.indent":      summary.IndentWidth,
		"layout.padding":     summary.ColumnPadding,
		"sarif.lint_prefix":  sarifDefaults.LintPrefix,
		"sarif.format_rules": sarifDefaults.FormatRules,
	}
}

// Validate checks that every enumerated value is known.
func (c *Config) Validate() error {
	if c.Mode != "" {
		if _, err := execution.ParseMode(c.Mode); err != nil {
			return err
		}
	}
	if _, err := diagnostic.ParseSeverity(c.DiagnosticLevel); err != nil {
		return fmt.Errorf("diagnostic_level: %w", err)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown format %q (expected one of %v)", c.Format, Formats)
	}
	if !slices.Contains(markup.ThemeNames, c.Theme) {
		return fmt.Errorf("unknown theme %q (expected one of %v)", c.Theme, markup.ThemeNames)
	}
	if c.Layout.Indent < 0 || c.Layout.Padding < 0 {
		return fmt.Errorf("layout values must not be negative (indent %d, padding %d)", c.Layout.Indent, c.Layout.Padding)
	}
	return nil
}

// ExecutionMode resolves the mode to summarize with. An explicitly
// configured mode wins over the declared one; check is the fallback.
func (c *Config) ExecutionMode(declared execution.Mode) execution.Mode {
	if c.Mode != "" {
		if m, err := execution.ParseMode(c.Mode); err == nil {
			return m
		}
	}
	if declared != "" {
		return declared
	}
	return execution.Check
}

// Threshold returns the parsed diagnostic level, falling back to the default
// when the value is invalid.
func (c *Config) Threshold() diagnostic.Severity {
	s, err := diagnostic.ParseSeverity(c.DiagnosticLevel)
	if err != nil {
		return diagnostic.SeverityInformation
	}
	return s
}

// SummaryLayout returns the configured report spacing.
func (c *Config) SummaryLayout() summary.Layout {
	return summary.Layout{Indent: c.Layout.Indent, Padding: c.Layout.Padding}
}

// ThemeName returns the theme to render with; no_color forces mono.
func (c *Config) ThemeName() string {
	if c.NoColor {
		return "mono"
	}
	return c.Theme
}
