// Package gedcom parses GEDCOM genealogy files into typed records.
package gedcom

import (
	"github.com/gogedcom/gedcom/reporter"
	"github.com/gogedcom/gedcom/tree"
)

// Type aliases for public API - record types come from the tree subpackage.

// Document is a parsed GEDCOM file.
type Document = tree.Document

// Header is the HEAD record.
type Header = tree.Header

// Individual is an INDI record.
type Individual = tree.Individual

// Family is a FAM record.
type Family = tree.Family

// SourceRecord is a SOUR record (Source names the input interface).
type SourceRecord = tree.Source

// Repository is a REPO record.
type Repository = tree.Repository

// Submitter is a SUBM record.
type Submitter = tree.Submitter

// Event is an individual or family event.
type Event = tree.Event

// Name is a personal name structure.
type Name = tree.Name

// CustomData is a captured extension or lenient unknown tag.
type CustomData = tree.CustomData

// EventType identifies an event tag.
type EventType = tree.EventType

// Sex is the SEX of an individual.
type Sex = tree.Sex

// Severity for diagnostics.
type Severity = tree.Severity

// Diagnostic represents a parse or lint issue.
type Diagnostic = tree.Diagnostic

// ParseError is a fault raised while parsing.
type ParseError = tree.ParseError

// ErrorReporter decides whether a fault aborts parsing.
type ErrorReporter = reporter.ErrorReporter

// WarningReporter receives non-fatal diagnostics.
type WarningReporter = reporter.WarningReporter

// Fault kinds, for use with errors.Is.
var (
	ErrUnexpectedToken = tree.ErrUnexpectedToken
	ErrUnknownField    = tree.ErrUnknownField
	ErrMalformedValue  = tree.ErrMalformedValue
	ErrMissingLevel    = tree.ErrMissingLevel
	ErrInvalidDocument = tree.ErrInvalidDocument
)

// Sex constants.
const (
	SexUnset     = tree.SexUnset
	SexMale      = tree.SexMale
	SexFemale    = tree.SexFemale
	SexNonbinary = tree.SexNonbinary
	SexUnknown   = tree.SexUnknown
)

// Common event types. The full set is in the tree package.
const (
	EventOther    = tree.EventOther
	EventBirth    = tree.EventBirth
	EventBaptism  = tree.EventBaptism
	EventDeath    = tree.EventDeath
	EventBurial   = tree.EventBurial
	EventCensus   = tree.EventCensus
	EventMarriage = tree.EventMarriage
	EventDivorce  = tree.EventDivorce
)

// Severity constants (lower = more severe).
const (
	SeverityFatal   = tree.SeverityFatal   // 0: Fault, record discarded
	SeveritySevere  = tree.SeveritySevere  // 1: Data contradicts itself
	SeverityError   = tree.SeverityError   // 2: Should correct
	SeverityMinor   = tree.SeverityMinor   // 3: Minor issue
	SeverityStyle   = tree.SeverityStyle   // 4: Style recommendation
	SeverityWarning = tree.SeverityWarning // 5: Might be correct
	SeverityInfo    = tree.SeverityInfo    // 6: Informational
)

// StrictnessLevel defines preset strictness configurations.
type StrictnessLevel = tree.StrictnessLevel

// StrictnessLevel constants.
const (
	StrictnessStrict     = tree.StrictnessStrict
	StrictnessNormal     = tree.StrictnessNormal
	StrictnessPermissive = tree.StrictnessPermissive
	StrictnessSilent     = tree.StrictnessSilent
)

// DiagnosticConfig controls strictness and diagnostic filtering.
type DiagnosticConfig = tree.DiagnosticConfig

// Config constructors.
var (
	DefaultConfig    = tree.DefaultConfig
	StrictConfig     = tree.StrictConfig
	PermissiveConfig = tree.PermissiveConfig
)
