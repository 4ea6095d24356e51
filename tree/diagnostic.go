package tree

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Diagnostic represents an issue found while parsing or linting a document.
type Diagnostic struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Code     string   `json:"code" yaml:"code"` // e.g., "unknown-field", "duplicate-xref"
	Message  string   `json:"message" yaml:"message"`
	Document string   `json:"document,omitempty" yaml:"document,omitempty"` // source name, if known
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`         // 1-based line number, 0 if not applicable
	Token    string   `json:"token,omitempty" yaml:"token,omitempty"`       // offending token text
}

func (d Diagnostic) String() string {
	loc := d.Document
	if d.Line > 0 {
		if loc != "" {
			loc = fmt.Sprintf("%s:%d", loc, d.Line)
		} else {
			loc = fmt.Sprintf("line %d", d.Line)
		}
	}
	if loc == "" {
		return fmt.Sprintf("%s [%s] %s", d.Severity, d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s [%s] %s", loc, d.Severity, d.Code, d.Message)
}

// DiagnosticConfig controls strictness and diagnostic filtering.
type DiagnosticConfig struct {
	// Level sets the base strictness level.
	// Diagnostics with severity > Level are suppressed.
	Level StrictnessLevel

	// FailAt sets the severity threshold for failure.
	// If any diagnostic has severity <= FailAt, the lint command fails.
	FailAt Severity

	// Overrides change severity for specific diagnostic codes.
	Overrides map[string]Severity

	// Ignore lists diagnostic codes to suppress entirely.
	// Supports glob patterns (e.g., "unknown-field-*").
	Ignore []string
}

// DefaultConfig returns the default diagnostic configuration (Normal strictness).
func DefaultConfig() DiagnosticConfig {
	return DiagnosticConfig{
		Level:  StrictnessNormal,
		FailAt: SeveritySevere,
	}
}

// StrictConfig returns a configuration that reports every diagnostic.
func StrictConfig() DiagnosticConfig {
	return DiagnosticConfig{
		Level:  StrictnessStrict,
		FailAt: SeverityMinor,
	}
}

// PermissiveConfig returns a configuration for exports from genealogy
// programs that routinely carry vendor extensions and sloppy headers.
func PermissiveConfig() DiagnosticConfig {
	return DiagnosticConfig{
		Level:  StrictnessPermissive,
		FailAt: SeverityFatal,
		Ignore: []string{
			"unsupported-record",
			"format-warning",
		},
	}
}

// ConfigForStrictness returns the preset configuration for a strictness level.
func ConfigForStrictness(level StrictnessLevel) DiagnosticConfig {
	switch {
	case level <= StrictnessStrict:
		return StrictConfig()
	case level >= StrictnessSilent:
		return DiagnosticConfig{Level: StrictnessSilent, FailAt: SeverityFatal}
	case level >= StrictnessPermissive:
		return PermissiveConfig()
	default:
		cfg := DefaultConfig()
		cfg.Level = level
		return cfg
	}
}

// Severity returns the effective severity of code after overrides.
func (c DiagnosticConfig) Severity(code string, sev Severity) Severity {
	if override, ok := c.Overrides[code]; ok {
		return override
	}
	return sev
}

// ShouldReport returns true if a diagnostic with the given code and severity
// should be reported under this configuration.
//
// The Level controls reporting threshold:
//   - Level 0 (Strict): Report all diagnostics
//   - Level 3 (Normal): Report Minor and above (0-3)
//   - Level 5 (Permissive): Report Warning and above (0-5)
//   - Level 6 (Silent): Report nothing
func (c DiagnosticConfig) ShouldReport(code string, sev Severity) bool {
	if c.IsIgnored(code) {
		return false
	}

	sev = c.Severity(code, sev)

	if c.Level >= StrictnessSilent {
		return false
	}
	if c.Level == StrictnessStrict {
		return true
	}
	return int(sev) <= int(c.Level)
}

// IsIgnored reports whether code matches one of the Ignore patterns.
func (c DiagnosticConfig) IsIgnored(code string) bool {
	for _, pattern := range c.Ignore {
		if MatchGlob(pattern, code) {
			return true
		}
	}
	return false
}

// ShouldFail returns true if a diagnostic with the given severity should
// cause a lint run to fail.
func (c DiagnosticConfig) ShouldFail(sev Severity) bool {
	return sev <= c.FailAt
}

// MatchGlob matches a diagnostic code against a glob pattern.
// A malformed pattern matches nothing.
func MatchGlob(pattern, code string) bool {
	ok, err := doublestar.Match(pattern, code)
	return err == nil && ok
}
