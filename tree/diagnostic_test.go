package tree

import (
	"errors"
	"testing"
)

func TestDiagnosticConfigShouldReport(t *testing.T) {
	tests := []struct {
		name   string
		config DiagnosticConfig
		code   string
		sev    Severity
		want   bool
	}{
		// Strict mode reports everything
		{"strict/fatal", StrictConfig(), "test", SeverityFatal, true},
		{"strict/info", StrictConfig(), "test", SeverityInfo, true},

		// Normal mode (level 3): report sev 0-3
		{"normal/fatal", DefaultConfig(), "test", SeverityFatal, true},
		{"normal/minor", DefaultConfig(), "test", SeverityMinor, true},
		{"normal/warning", DefaultConfig(), "test", SeverityWarning, false},

		// Permissive mode (level 5): report sev 0-5
		{"permissive/warning", PermissiveConfig(), "test", SeverityWarning, true},
		{"permissive/info", PermissiveConfig(), "test", SeverityInfo, false},
		{"permissive/ignored", PermissiveConfig(), "unsupported-record", SeverityWarning, false},

		// Silent mode suppresses everything
		{"silent/fatal", DiagnosticConfig{Level: StrictnessSilent}, "test", SeverityFatal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.ShouldReport(tt.code, tt.sev)
			if got != tt.want {
				t.Errorf("ShouldReport(%q, %v) = %v, want %v", tt.code, tt.sev, got, tt.want)
			}
		})
	}
}

func TestDiagnosticConfigIgnoreGlob(t *testing.T) {
	cfg := DiagnosticConfig{
		Level:  StrictnessStrict,
		Ignore: []string{"missing-trailer", "unknown-field-*"},
	}

	if cfg.ShouldReport("missing-trailer", SeverityMinor) {
		t.Error("ignored code should not be reported")
	}
	if cfg.ShouldReport("unknown-field-lenient", SeverityWarning) {
		t.Error("glob-matched code should not be reported")
	}
	if !cfg.ShouldReport("unknown-field", SeverityFatal) {
		t.Error("non-matching code should be reported")
	}
}

func TestDiagnosticConfigOverrides(t *testing.T) {
	cfg := DiagnosticConfig{
		Level: StrictnessNormal,
		Overrides: map[string]Severity{
			"format-warning": SeverityError,
		},
	}

	if cfg.ShouldReport("unsupported-record", SeverityWarning) {
		t.Error("warning severity should not be reported at normal level")
	}
	if !cfg.ShouldReport("format-warning", SeverityWarning) {
		t.Error("overridden code should be reported (upgraded to Error)")
	}
	if got := cfg.Severity("format-warning", SeverityWarning); got != SeverityError {
		t.Errorf("Severity() = %v, want error", got)
	}
}

func TestDiagnosticConfigShouldFail(t *testing.T) {
	tests := []struct {
		name   string
		config DiagnosticConfig
		sev    Severity
		want   bool
	}{
		{"default/severe", DefaultConfig(), SeveritySevere, true},
		{"default/error", DefaultConfig(), SeverityError, false},
		{"strict/minor", StrictConfig(), SeverityMinor, true},
		{"strict/warning", StrictConfig(), SeverityWarning, false},
		{"permissive/fatal", PermissiveConfig(), SeverityFatal, true},
		{"permissive/severe", PermissiveConfig(), SeveritySevere, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.ShouldFail(tt.sev)
			if got != tt.want {
				t.Errorf("ShouldFail(%v) = %v, want %v", tt.sev, got, tt.want)
			}
		})
	}
}

func TestConfigForStrictness(t *testing.T) {
	tests := []struct {
		level StrictnessLevel
		want  StrictnessLevel
	}{
		{StrictnessStrict, StrictnessStrict},
		{StrictnessNormal, StrictnessNormal},
		{4, 4},
		{StrictnessPermissive, StrictnessPermissive},
		{StrictnessSilent, StrictnessSilent},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := ConfigForStrictness(tt.level).Level; got != tt.want {
				t.Errorf("ConfigForStrictness(%v).Level = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			"full",
			Diagnostic{Severity: SeverityWarning, Code: "unsupported-record", Message: "skipped OBJE record", Document: "family.ged", Line: 12},
			"family.ged:12: warning [unsupported-record] skipped OBJE record",
		},
		{
			"line only",
			Diagnostic{Severity: SeverityMinor, Code: "missing-trailer", Message: "no TRLR", Line: 3},
			"line 3: minor [missing-trailer] no TRLR",
		},
		{
			"no location",
			Diagnostic{Severity: SeverityError, Code: "dangling-xref", Message: "x"},
			"error [dangling-xref] x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diag.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := NewParseError(ErrUnknownField, "unknown-field", 2, "UNKNOWNTAG", "UNKNOWNTAG is not a field of INDI")

	if !errors.Is(err, ErrUnknownField) {
		t.Error("ParseError should unwrap to its kind")
	}
	if errors.Is(err, ErrMalformedValue) {
		t.Error("ParseError should not match other kinds")
	}
	if err.Severity != SeverityFatal {
		t.Errorf("Severity = %v, want fatal", err.Severity)
	}
	want := "line 2: unknown field: UNKNOWNTAG is not a field of INDI"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err.Document = "a.ged"
	if got := err.Error(); got != "a.ged:2: unknown field: UNKNOWNTAG is not a field of INDI" {
		t.Errorf("Error() with document = %q", got)
	}
}
