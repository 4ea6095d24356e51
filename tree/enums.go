// Package tree provides the record types produced by the GEDCOM parser and
// the Document container that indexes them.
package tree

import (
	"fmt"
	"strings"
)

// Severity levels for diagnostics.
// Lower values are more severe.
type Severity int

const (
	SeverityFatal   Severity = 0 // Record discarded, parse may stop
	SeveritySevere  Severity = 1 // Semantics changed to continue, must correct
	SeverityError   Severity = 2 // Able to continue, should correct
	SeverityMinor   Severity = 3 // Minor issue, should correct
	SeverityStyle   Severity = 4 // Style recommendation
	SeverityWarning Severity = 5 // Might be correct under some circumstances
	SeverityInfo    Severity = 6 // Informational notice
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeveritySevere:
		return "severe"
	case SeverityError:
		return "error"
	case SeverityMinor:
		return "minor"
	case SeverityStyle:
		return "style"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// AtLeast reports whether s is as severe as other or more.
func (s Severity) AtLeast(other Severity) bool {
	return s <= other
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", text)
	}
	*s = sev
	return nil
}

// ParseSeverity converts a severity name ("fatal" ... "info") to a Severity.
func ParseSeverity(name string) (Severity, bool) {
	for s := SeverityFatal; s <= SeverityInfo; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, true
		}
	}
	return 0, false
}

// StrictnessLevel defines preset strictness configurations.
type StrictnessLevel int

const (
	StrictnessStrict     StrictnessLevel = 0 // Report everything
	StrictnessNormal     StrictnessLevel = 3 // Default, warn on issues
	StrictnessPermissive StrictnessLevel = 5 // Accept most real-world exports
	StrictnessSilent     StrictnessLevel = 6 // Accept everything, minimal output
)

func (l StrictnessLevel) String() string {
	switch l {
	case StrictnessStrict:
		return "strict"
	case StrictnessNormal:
		return "normal"
	case StrictnessPermissive:
		return "permissive"
	case StrictnessSilent:
		return "silent"
	default:
		return fmt.Sprintf("StrictnessLevel(%d)", l)
	}
}

// ParseStrictness converts a strictness name to a StrictnessLevel.
func ParseStrictness(name string) (StrictnessLevel, bool) {
	switch strings.ToLower(name) {
	case "strict":
		return StrictnessStrict, true
	case "normal", "":
		return StrictnessNormal, true
	case "permissive":
		return StrictnessPermissive, true
	case "silent":
		return StrictnessSilent, true
	default:
		return 0, false
	}
}

// Sex is the closed vocabulary of the SEX field.
type Sex int

const (
	SexUnset Sex = iota
	SexMale
	SexFemale
	SexNonbinary
	SexUnknown
)

func (s Sex) String() string {
	switch s {
	case SexUnset:
		return ""
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	case SexNonbinary:
		return "nonbinary"
	case SexUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Sex(%d)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Sex) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSex maps a SEX code letter to a Sex. X is the GEDCOM 7
// "does not fit the typical definition" code.
func ParseSex(code string) (Sex, bool) {
	switch code {
	case "M":
		return SexMale, true
	case "F":
		return SexFemale, true
	case "N", "X":
		return SexNonbinary, true
	case "U":
		return SexUnknown, true
	default:
		return SexUnset, false
	}
}

// LinkKind says which side of a family an individual is linked from.
type LinkKind int

const (
	LinkChild  LinkKind = iota // FAMC
	LinkSpouse                 // FAMS
)

func (k LinkKind) String() string {
	switch k {
	case LinkChild:
		return "child"
	case LinkSpouse:
		return "spouse"
	default:
		return fmt.Sprintf("LinkKind(%d)", k)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k LinkKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Pedigree is the closed vocabulary of the PEDI field.
type Pedigree int

const (
	PedigreeUnset Pedigree = iota
	PedigreeAdopted
	PedigreeBirth
	PedigreeFoster
	PedigreeSealing
	PedigreeOther
)

func (p Pedigree) String() string {
	switch p {
	case PedigreeUnset:
		return ""
	case PedigreeAdopted:
		return "adopted"
	case PedigreeBirth:
		return "birth"
	case PedigreeFoster:
		return "foster"
	case PedigreeSealing:
		return "sealing"
	case PedigreeOther:
		return "other"
	default:
		return fmt.Sprintf("Pedigree(%d)", p)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Pedigree) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePedigree maps a PEDI value to a Pedigree, ignoring case.
func ParsePedigree(value string) (Pedigree, bool) {
	for p := PedigreeAdopted; p <= PedigreeOther; p++ {
		if strings.EqualFold(p.String(), value) {
			return p, true
		}
	}
	return PedigreeUnset, false
}

// EventType identifies the kind of an individual or family event.
type EventType int

const (
	EventOther EventType = iota // EVEN
	EventAdoption
	EventBirth
	EventBaptism
	EventBarMitzvah
	EventBasMitzvah
	EventBlessing
	EventBurial
	EventCensus
	EventChristening
	EventAdultChristening
	EventConfirmation
	EventCremation
	EventDeath
	EventEmigration
	EventFirstCommunion
	EventGraduation
	EventImmigration
	EventNaturalization
	EventOrdination
	EventRetirement
	EventResidence
	EventProbate
	EventWill
	EventAnnulment
	EventDivorce
	EventDivorceFiled
	EventEngagement
	EventMarriageBann
	EventMarriageContract
	EventMarriage
	EventMarriageLicense
	EventMarriageSettlement
)

var eventTypeNames = [...]string{
	EventOther:              "other",
	EventAdoption:           "adoption",
	EventBirth:              "birth",
	EventBaptism:            "baptism",
	EventBarMitzvah:         "bar-mitzvah",
	EventBasMitzvah:         "bas-mitzvah",
	EventBlessing:           "blessing",
	EventBurial:             "burial",
	EventCensus:             "census",
	EventChristening:        "christening",
	EventAdultChristening:   "adult-christening",
	EventConfirmation:       "confirmation",
	EventCremation:          "cremation",
	EventDeath:              "death",
	EventEmigration:         "emigration",
	EventFirstCommunion:     "first-communion",
	EventGraduation:         "graduation",
	EventImmigration:        "immigration",
	EventNaturalization:     "naturalization",
	EventOrdination:         "ordination",
	EventRetirement:         "retirement",
	EventResidence:          "residence",
	EventProbate:            "probate",
	EventWill:               "will",
	EventAnnulment:          "annulment",
	EventDivorce:            "divorce",
	EventDivorceFiled:       "divorce-filed",
	EventEngagement:         "engagement",
	EventMarriageBann:       "marriage-bann",
	EventMarriageContract:   "marriage-contract",
	EventMarriage:           "marriage",
	EventMarriageLicense:    "marriage-license",
	EventMarriageSettlement: "marriage-settlement",
}

func (e EventType) String() string {
	if e >= 0 && int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return fmt.Sprintf("EventType(%d)", e)
}

// MarshalText implements encoding.TextMarshaler.
func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
