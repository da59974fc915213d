// Package config handles configuration loading and merging for lintsum.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags that were explicitly set (--mode, --diagnostic-level, --theme, etc.)
//  2. Environment variables with the LINTSUM_ prefix (LINTSUM_MODE, LINTSUM_LAYOUT_INDENT)
//  3. YAML config file (--config, or .lintsum.yaml / .lintsum.yml in the working directory)
//  4. Hardcoded defaults
//
// NO_COLOR, when set to any non-empty value, forces no_color on regardless of source.
//
// # Key Configuration Options
//
//   - mode: check, lint, format or ci. Empty defers to the input's declared mode.
//   - diagnostic_level: lowest severity summarized (hint, information, warning, error, fatal)
//   - verbose: include diagnostics tagged verbose in lint and check runs
//   - format: auto, terminal, plain or json
//   - theme: default, orca or mono
//   - layout.indent, layout.padding: report spacing
//   - sarif.lint_prefix, sarif.format_rules: how SARIF rule ids become categories
package config
