package lexer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogedcom/gedcom/internal/types"
)

// MaxLineLength bounds a single physical line. GEDCOM 5.5.1 caps lines at
// 255 characters; real exports exceed that, so the limit is generous.
const MaxLineLength = 1 << 20

const bom = "\uFEFF"

// Lexer tokenizes GEDCOM text one physical line at a time and keeps one
// token of lookahead.
type Lexer struct {
	scanner *bufio.Scanner
	line    int
	pending []Token
	current Token
	done    bool
	err     error
	types.Logger
}

// New returns a Lexer reading from r with the first token already primed.
func New(r io.Reader, logger *slog.Logger) *Lexer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineLength)
	sc.Split(scanLines)
	l := &Lexer{
		scanner: sc,
		Logger:  types.Logger{L: logger},
	}
	l.Log(slog.LevelDebug, "lexer initialized")
	l.Next()
	return l
}

// Current returns the lookahead token without consuming it.
func (l *Lexer) Current() Token {
	return l.current
}

// Next advances to the next token and returns it.
func (l *Lexer) Next() Token {
	l.current = l.nextToken()
	l.traceToken(l.current)
	return l.current
}

// Line returns the number of physical lines read so far.
func (l *Lexer) Line() int {
	return l.line
}

// Err returns the error that stopped reading, if any. A read error ends
// the token stream with TokEOF.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) traceToken(tok Token) {
	if l.TraceEnabled() {
		l.Trace("token",
			slog.String("kind", tok.Kind.String()),
			slog.Int("level", tok.Level),
			slog.String("text", tok.Text),
			slog.Int("line", tok.Line))
	}
}

func (l *Lexer) nextToken() Token {
	for len(l.pending) == 0 {
		if l.done {
			return Token{Kind: TokEOF, Line: l.line}
		}
		l.readLine()
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok
}

// readLine fills pending with the tokens of the next non-blank line, or
// marks the lexer done at end of input.
func (l *Lexer) readLine() {
	if !l.scanner.Scan() {
		l.done = true
		if err := l.scanner.Err(); err != nil {
			l.err = fmt.Errorf("line %d: %w", l.line+1, err)
			l.Log(slog.LevelDebug, "read failed", slog.Any("error", err))
		}
		l.Log(slog.LevelDebug, "tokenization complete", slog.Int("lines", l.line))
		return
	}
	l.line++
	text := l.scanner.Text()
	if l.line == 1 {
		text = strings.TrimPrefix(text, bom)
	}
	l.pending = l.tokenizeLine(text, l.pending[:0])
}

// tokenizeLine splits one line into Level, optional Pointer, Tag or
// CustomTag and optional LineValue. Blank lines produce no tokens.
func (l *Lexer) tokenizeLine(text string, out []Token) []Token {
	s := strings.TrimLeft(text, " \t")
	if s == "" {
		return out
	}

	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return append(out, l.errorf(-1, "missing level number in %q", text))
	}
	level, err := strconv.Atoi(s[:n])
	if err != nil {
		return append(out, l.errorf(-1, "invalid level %q", s[:n]))
	}
	out = append(out, Token{Kind: TokLevel, Level: level, Line: l.line})

	rest := s[n:]
	if rest != "" && !isDelim(rest[0]) {
		return append(out, l.errorf(level, "no delimiter after level %d", level))
	}

	word, rest := nextWord(rest)
	if len(word) > 2 && word[0] == '@' && word[len(word)-1] == '@' {
		out = append(out, Token{Kind: TokPointer, Level: level, Text: word[1 : len(word)-1], Line: l.line})
		word, rest = nextWord(rest)
	}
	if word == "" {
		return append(out, l.errorf(level, "line has no tag"))
	}

	if word[0] == '_' {
		out = append(out, Token{Kind: TokCustomTag, Level: level, Text: word, Line: l.line})
	} else {
		tag, _ := LookupTag(word)
		out = append(out, Token{Kind: TokTag, Level: level, Tag: tag, Text: word, Line: l.line})
	}

	// Only the single delimiter after the tag is dropped; the rest of the
	// line, including further whitespace and '@', is the value.
	if rest != "" {
		rest = rest[1:]
	}
	if rest != "" {
		out = append(out, Token{Kind: TokLineValue, Level: level, Text: rest, Line: l.line})
	}
	return out
}

func (l *Lexer) errorf(level int, format string, args ...any) Token {
	msg := fmt.Sprintf(format, args...)
	l.Log(slog.LevelDebug, "lexical error", slog.Int("line", l.line), slog.String("error", msg))
	return Token{Kind: TokError, Level: level, Text: msg, Line: l.line}
}

// nextWord skips leading delimiters and returns the next word together
// with the remainder, which starts at the delimiter following the word.
func nextWord(s string) (word, rest string) {
	s = strings.TrimLeft(s, " \t")
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

func isDelim(b byte) bool {
	return b == ' ' || b == '\t'
}

// scanLines is a bufio.SplitFunc that accepts \n, \r\n and a lone \r as
// line terminators.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			// Need one more byte to tell \r from \r\n.
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
