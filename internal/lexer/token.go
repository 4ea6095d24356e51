// Package lexer provides line-oriented tokenization for GEDCOM source text.
package lexer

import "fmt"

// TokenKind identifies a token type.
type TokenKind int

const (
	// TokError is a lexical error. Text holds the message.
	TokError TokenKind = iota
	// TokEOF is end of input. Once emitted it is returned forever.
	TokEOF
	// TokLevel is the leading level number of a line.
	TokLevel
	// TokPointer is an @XREF@ cross-reference with the delimiters stripped.
	TokPointer
	// TokTag is a standard keyword. Tag is TagUnknown when the keyword is
	// well-formed but not in the keyword table.
	TokTag
	// TokCustomTag is a user-defined keyword starting with '_'.
	TokCustomTag
	// TokLineValue is the rest of the line after the tag.
	TokLineValue
)

var tokenKindNames = [...]string{
	TokError:     "Error",
	TokEOF:       "EOF",
	TokLevel:     "Level",
	TokPointer:   "Pointer",
	TokTag:       "Tag",
	TokCustomTag: "CustomTag",
	TokLineValue: "LineValue",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// Token is a single syntactic unit of a GEDCOM line.
type Token struct {
	Kind TokenKind
	// Level is the level number of the line the token sits on. For
	// TokLevel it is the token's own value.
	Level int
	// Tag is set for TokTag.
	Tag Tag
	// Text is the raw keyword for tags, the identifier for pointers, the
	// value for line values and the message for errors.
	Text string
	// Line is the 1-based physical line number.
	Line int
}

// IsLevelAtMost reports whether the token is a Level token with a value
// no greater than floor.
func (t Token) IsLevelAtMost(floor int) bool {
	return t.Kind == TokLevel && t.Level <= floor
}

func (t Token) String() string {
	switch t.Kind {
	case TokLevel:
		return fmt.Sprintf("Level(%d)", t.Level)
	case TokEOF:
		return "EOF"
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
}
