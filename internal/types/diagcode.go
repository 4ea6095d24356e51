package types

// Diagnostic codes emitted by the lexer, parser, document and lint phases.
// Centralizing these prevents silent breakage from typos in string literals.

// Parser diagnostic codes. The first four are faults; the rest are
// reported and parsing continues.
const (
	DiagUnexpectedToken     = "unexpected-token"
	DiagUnknownField        = "unknown-field"
	DiagMalformedValue      = "malformed-value"
	DiagMissingLevel        = "missing-level"
	DiagUnsupportedRecord   = "unsupported-record"
	DiagFormatWarning       = "format-warning"
	DiagMissingTrailer      = "missing-trailer"
	DiagInvalidUID          = "invalid-uid"
	DiagUnknownFieldLenient = "unknown-field-lenient"
	DiagMalformedLenient    = "malformed-value-lenient"
)

// Document diagnostic codes.
const (
	DiagDuplicateXref = "duplicate-xref"
)

// Lint diagnostic codes.
const (
	DiagDanglingXref  = "dangling-xref"
	DiagAncestryCycle = "ancestry-cycle"
	DiagMissingHeader = "missing-header"
	DiagEmptyFamily   = "empty-family"
)

// AllDiagnosticCodes returns all known diagnostic codes grouped by phase.
func AllDiagnosticCodes() []DiagCodeInfo {
	return []DiagCodeInfo{
		// Parser
		{Code: DiagUnexpectedToken, Phase: "parser"},
		{Code: DiagUnknownField, Phase: "parser"},
		{Code: DiagMalformedValue, Phase: "parser"},
		{Code: DiagMissingLevel, Phase: "parser"},
		{Code: DiagUnsupportedRecord, Phase: "parser"},
		{Code: DiagFormatWarning, Phase: "parser"},
		{Code: DiagMissingTrailer, Phase: "parser"},
		{Code: DiagInvalidUID, Phase: "parser"},
		{Code: DiagUnknownFieldLenient, Phase: "parser"},
		{Code: DiagMalformedLenient, Phase: "parser"},
		// Document
		{Code: DiagDuplicateXref, Phase: "document"},
		// Lint
		{Code: DiagDanglingXref, Phase: "lint"},
		{Code: DiagAncestryCycle, Phase: "lint"},
		{Code: DiagMissingHeader, Phase: "lint"},
		{Code: DiagEmptyFamily, Phase: "lint"},
	}
}

// DiagCodeInfo describes a diagnostic code and the phase that emits it.
type DiagCodeInfo struct {
	Code  string
	Phase string
}
