// Package parser builds GEDCOM records from the token stream.
//
// Structure is recovered from level numbers alone. Every routine runs the
// same level-floor loop (see block): it consumes lines deeper than the
// level of the line that introduced it and returns, without consuming,
// the first Level token at or above that depth.
//
// Faults discard the top-level record being built. The reporter decides
// whether parsing stops or resumes at the next level 0 line. Unsupported
// top-level records are always skipped with a diagnostic.
package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gogedcom/gedcom/internal/lexer"
	"github.com/gogedcom/gedcom/internal/types"
	"github.com/gogedcom/gedcom/reporter"
	"github.com/gogedcom/gedcom/tree"
)

// Config controls diagnostics and leniency for one parse.
type Config struct {
	// Name labels the document and its diagnostics, usually the file path.
	Name string

	// Diagnostics filters non-fatal diagnostics. Faults are always recorded.
	Diagnostics tree.DiagnosticConfig

	// LenientEnums keeps out-of-vocabulary SEX and PEDI values with a
	// warning instead of faulting.
	LenientEnums bool

	// LenientFields turns recognized-but-misplaced and unknown tags inside
	// records into custom data with a warning instead of faulting.
	LenientFields bool
}

// errUnhandled is returned by field functions for tags they do not accept.
var errUnhandled = errors.New("unhandled field")

// errTrailer stops the top-level loop at TRLR.
var errTrailer = errors.New("trailer")

// Parser converts a GEDCOM token stream into a tree.Document.
type Parser struct {
	lex        *lexer.Lexer
	cfg        Config
	doc        *tree.Document
	handler    *reporter.Handler
	seenHeader bool
	faults     int
	types.Logger
}

// New returns a Parser reading from r. Pass nil for logger to disable
// logging.
func New(r io.Reader, logger *slog.Logger, cfg Config) *Parser {
	p := &Parser{
		lex:    lexer.New(r, types.ComponentLogger(logger, "lexer")),
		cfg:    cfg,
		Logger: types.Logger{L: types.ComponentLogger(logger, "parser")},
	}
	p.Log(slog.LevelDebug, "parser initialized", slog.String("document", cfg.Name))
	return p
}

// Parse parses the whole document. A nil rep aborts on the first fault.
//
// On abort Parse returns nil and the reporter's error. If faults were
// reported but swallowed, it returns the partial document together with
// tree.ErrInvalidDocument.
func (p *Parser) Parse(rep reporter.Reporter) (*tree.Document, error) {
	return p.ParseWith(reporter.NewHandler(rep))
}

// ParseWith is Parse with a caller-supplied handler, so several parsers
// can share one reporter.
func (p *Parser) ParseWith(h *reporter.Handler) (*tree.Document, error) {
	p.handler = h
	p.doc = tree.NewDocument(p.cfg.Name)

	if err := p.parseDocument(); err != nil {
		p.Log(slog.LevelDebug, "parse aborted", slog.Any("error", err))
		return nil, err
	}
	if err := p.lex.Err(); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	p.Log(slog.LevelDebug, "parse complete",
		slog.Int("lines", p.lex.Line()),
		slog.Int("records", p.doc.RecordCount()),
		slog.Int("faults", p.faults),
		slog.Int("diagnostics", len(p.doc.Diagnostics())))

	if p.faults > 0 {
		return p.doc, tree.ErrInvalidDocument
	}
	return p.doc, nil
}

func (p *Parser) parseDocument() error {
	for {
		if tok := p.lex.Current(); tok.Kind == lexer.TokEOF {
			p.warn(types.DiagMissingTrailer, tree.SeverityMinor, tok, "document ends without TRLR")
			return nil
		}

		err := p.parseTopLevel()
		if err == nil {
			continue
		}
		if errors.Is(err, errTrailer) {
			return nil
		}
		var pe *tree.ParseError
		if !errors.As(err, &pe) {
			return err
		}
		if abort := p.fault(pe); abort != nil {
			return abort
		}
		p.resync()
	}
}

// parseTopLevel reads "0 [@XREF@] TAG" and dispatches on the tag.
func (p *Parser) parseTopLevel() error {
	tok := p.lex.Current()
	if tok.Kind != lexer.TokLevel {
		return p.faultf(tree.ErrMissingLevel, types.DiagMissingLevel, tok,
			"expected level 0, found %s", tok)
	}
	if tok.Level != 0 {
		return p.faultf(tree.ErrUnexpectedToken, types.DiagUnexpectedToken, tok,
			"expected level 0, found level %d", tok.Level)
	}

	tok = p.lex.Next()
	var xref string
	if tok.Kind == lexer.TokPointer {
		xref = tok.Text
		tok = p.lex.Next()
	}

	switch tok.Kind {
	case lexer.TokTag:
		return p.parseRecord(tok, xref)
	case lexer.TokCustomTag:
		return p.skipRecord(tok, "custom record")
	default:
		return p.unexpected(tok, "record")
	}
}

func (p *Parser) parseRecord(tok lexer.Token, xref string) error {
	if p.TraceEnabled() {
		p.Trace("record", slog.String("tag", tok.Text), slog.String("xref", xref), slog.Int("line", tok.Line))
	}

	switch tok.Tag {
	case lexer.TagHead:
		if p.seenHeader {
			return p.skipRecord(tok, "duplicate header")
		}
		h, err := p.parseHeader(tok)
		if err != nil {
			return err
		}
		p.seenHeader = true
		p.doc.SetHeader(h)

	case lexer.TagIndi:
		r, err := p.parseIndividual(tok, xref)
		if err != nil {
			return err
		}
		p.indexed(tok, xref, p.doc.AddIndividual(r))

	case lexer.TagFam:
		r, err := p.parseFamily(tok, xref)
		if err != nil {
			return err
		}
		p.indexed(tok, xref, p.doc.AddFamily(r))

	case lexer.TagSour:
		r, err := p.parseSource(tok, xref)
		if err != nil {
			return err
		}
		p.indexed(tok, xref, p.doc.AddSource(r))

	case lexer.TagRepo:
		r, err := p.parseRepository(tok, xref)
		if err != nil {
			return err
		}
		p.indexed(tok, xref, p.doc.AddRepository(r))

	case lexer.TagSubm:
		r, err := p.parseSubmitter(tok, xref)
		if err != nil {
			return err
		}
		p.indexed(tok, xref, p.doc.AddSubmitter(r))

	case lexer.TagTrlr:
		p.lex.Next()
		return errTrailer

	default:
		return p.skipRecord(tok, "unsupported record")
	}
	return nil
}

func (p *Parser) indexed(tok lexer.Token, xref string, ok bool) {
	if !ok {
		p.warn(types.DiagDuplicateXref, tree.SeverityError, tok,
			fmt.Sprintf("%s @%s@ redefines an earlier record; lookups keep the first", tok.Text, xref))
	}
}

// skipRecord drops a top-level line and all of its descendants. A
// malformed line with a level faults here; one without a level is left
// for the top-level loop.
func (p *Parser) skipRecord(tok lexer.Token, what string) error {
	p.warn(types.DiagUnsupportedRecord, tree.SeverityMinor, tok,
		fmt.Sprintf("skipped %s %s", what, tok.Text))
	p.skipBelow(0)
	if cur := p.lex.Current(); cur.Kind == lexer.TokError && cur.Level >= 0 {
		return p.unexpected(cur, what+" "+tok.Text)
	}
	return nil
}

// skipBelow advances past the current token and everything deeper than
// floor. It stops early at a lexical error so the caller reports it.
func (p *Parser) skipBelow(floor int) {
	for {
		tok := p.lex.Next()
		if tok.Kind == lexer.TokEOF || tok.Kind == lexer.TokError || tok.IsLevelAtMost(floor) {
			return
		}
	}
}

// resync moves to the next level 0 line after a swallowed fault.
func (p *Parser) resync() {
	tok := p.lex.Current()
	for tok.Kind != lexer.TokEOF && !tok.IsLevelAtMost(0) {
		tok = p.lex.Next()
	}
	p.Log(slog.LevelDebug, "resynchronized", slog.Int("line", tok.Line))
}

// fieldFunc handles one tag inside a block. The current token is the tag;
// the function must consume it and everything it owns. Returning
// errUnhandled rejects the tag.
type fieldFunc func(tok lexer.Token) error

// block runs the level-floor loop for a structure whose introducing line
// sits at level floor. It returns nil at EOF or at a Level token no deeper
// than floor, leaving that token current. Custom tags are captured into
// custom, which must not be nil.
func (p *Parser) block(floor int, context string, custom *[]*tree.CustomData, field fieldFunc) error {
	for {
		tok := p.lex.Current()
		switch tok.Kind {
		case lexer.TokEOF:
			return nil
		case lexer.TokLevel:
			if tok.Level <= floor {
				return nil
			}
			p.lex.Next()
		case lexer.TokTag:
			err := field(tok)
			if errors.Is(err, errUnhandled) {
				err = p.unknownField(tok, context, custom)
			}
			if err != nil {
				return err
			}
		case lexer.TokCustomTag:
			if err := p.attach(custom, tok); err != nil {
				return err
			}
		default:
			return p.unexpected(tok, context)
		}
	}
}

func (p *Parser) unknownField(tok lexer.Token, context string, custom *[]*tree.CustomData) error {
	if !p.cfg.LenientFields {
		return p.faultf(tree.ErrUnknownField, types.DiagUnknownField, tok,
			"%s is not a field of %s", tok.Text, context)
	}
	p.warn(types.DiagUnknownFieldLenient, tree.SeverityWarning, tok,
		fmt.Sprintf("%s is not a field of %s; kept as custom data", tok.Text, context))
	return p.attach(custom, tok)
}

// attach parses the subtree at tok and appends it to custom.
func (p *Parser) attach(custom *[]*tree.CustomData, tok lexer.Token) error {
	cd, err := p.parseCustom(tok)
	if err != nil {
		return err
	}
	*custom = append(*custom, cd)
	return nil
}

// parseCustom captures a tag, its optional value and its whole subtree.
// Cross-reference ids on nested lines are skipped; lexical errors fault.
func (p *Parser) parseCustom(tok lexer.Token) (*tree.CustomData, error) {
	cd := &tree.CustomData{Tag: tok.Text, Value: p.optionalValue()}
	for {
		cur := p.lex.Current()
		switch cur.Kind {
		case lexer.TokEOF:
			return cd, nil
		case lexer.TokLevel:
			if cur.Level <= tok.Level {
				return cd, nil
			}
			p.lex.Next()
		case lexer.TokTag, lexer.TokCustomTag:
			child, err := p.parseCustom(cur)
			if err != nil {
				return nil, err
			}
			cd.Children = append(cd.Children, child)
		case lexer.TokPointer:
			p.lex.Next()
		default:
			return nil, p.unexpected(cur, tok.Text)
		}
	}
}

// optionalValue consumes the current tag and returns its line value, or
// "" if the line has none.
func (p *Parser) optionalValue() string {
	tok := p.lex.Next()
	if tok.Kind != lexer.TokLineValue {
		return ""
	}
	p.lex.Next()
	return tok.Text
}

// lineValue consumes the current tag and requires a line value after it.
func (p *Parser) lineValue(tag lexer.Token) (string, error) {
	tok := p.lex.Next()
	if tok.Kind != lexer.TokLineValue {
		return "", p.faultf(tree.ErrUnexpectedToken, types.DiagUnexpectedToken, tag,
			"%s requires a value, found %s", tag.Text, tok)
	}
	p.lex.Next()
	return tok.Text, nil
}

// take stores the required line value of the current tag in dst.
func (p *Parser) take(tag lexer.Token, dst *string) error {
	v, err := p.lineValue(tag)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// takeAll appends the required line value of the current tag to dst.
func (p *Parser) takeAll(tag lexer.Token, dst *[]string) error {
	v, err := p.lineValue(tag)
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

// takeXref stores a reference value with its @ delimiters stripped.
func (p *Parser) takeXref(tag lexer.Token, dst *string) error {
	v, err := p.lineValue(tag)
	if err != nil {
		return err
	}
	*dst = stripXref(v)
	return nil
}

// continuation extends text with a CONT (newline) or CONC (space) line.
// It reports false, consuming nothing, for any other tag.
func (p *Parser) continuation(tok lexer.Token, text *string) bool {
	switch tok.Tag {
	case lexer.TagCont:
		*text += "\n" + p.optionalValue()
	case lexer.TagConc:
		*text += " " + p.optionalValue()
	default:
		return false
	}
	return true
}

// continuedText reads a value followed by any number of CONT/CONC lines.
// Custom tags below the value go to custom.
func (p *Parser) continuedText(tok lexer.Token, custom *[]*tree.CustomData) (string, error) {
	text := p.optionalValue()
	err := p.block(tok.Level, tok.Text, custom, func(t lexer.Token) error {
		if p.continuation(t, &text) {
			return nil
		}
		return errUnhandled
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// stripXref removes the @ delimiters from a pointer value. Values that are
// not wrapped in @ are returned unchanged.
func stripXref(v string) string {
	if len(v) > 2 && v[0] == '@' && v[len(v)-1] == '@' {
		return v[1 : len(v)-1]
	}
	return v
}

func (p *Parser) faultf(kind error, code string, tok lexer.Token, format string, args ...any) *tree.ParseError {
	text := tok.Text
	if text == "" {
		text = tok.String()
	}
	pe := tree.NewParseError(kind, code, tok.Line, text, fmt.Sprintf(format, args...))
	pe.Document = p.cfg.Name
	return pe
}

func (p *Parser) unexpected(tok lexer.Token, context string) *tree.ParseError {
	return p.faultf(tree.ErrUnexpectedToken, types.DiagUnexpectedToken, tok,
		"unexpected %s in %s", tok, context)
}

// fault records a fault and hands it to the reporter. A non-nil result
// aborts the parse.
func (p *Parser) fault(pe *tree.ParseError) error {
	p.faults++
	p.doc.AddDiagnostic(pe.Diagnostic)
	p.Log(slog.LevelDebug, "fault",
		slog.String("code", pe.Code),
		slog.Int("line", pe.Line),
		slog.String("message", pe.Message))
	return p.handler.HandleError(pe)
}

// warn records a non-fatal diagnostic if the configuration reports it.
func (p *Parser) warn(code string, sev tree.Severity, tok lexer.Token, msg string) {
	sev = p.cfg.Diagnostics.Severity(code, sev)
	if !p.cfg.Diagnostics.ShouldReport(code, sev) {
		return
	}
	d := tree.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Document: p.cfg.Name,
		Line:     tok.Line,
		Token:    tok.Text,
	}
	p.doc.AddDiagnostic(d)
	p.handler.HandleWarning(d)
}
