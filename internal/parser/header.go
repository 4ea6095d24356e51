package parser

import (
	"fmt"
	"strings"

	"github.com/gogedcom/gedcom/internal/lexer"
	"github.com/gogedcom/gedcom/internal/types"
	"github.com/gogedcom/gedcom/tree"
)

// lineageLinked is the only GEDC.FORM this parser's record model describes.
const lineageLinked = "LINEAGE-LINKED"

func (p *Parser) parseHeader(tok lexer.Token) (*tree.Header, error) {
	h := &tree.Header{}
	p.optionalValue()
	err := p.block(tok.Level, "HEAD", &h.Custom, func(t lexer.Token) error {
		var err error
		switch t.Tag {
		case lexer.TagGedc:
			h.Gedcom, err = p.parseGedcomInfo(t)
		case lexer.TagSour:
			h.Source, err = p.parseHeadSource(t)
		case lexer.TagDest:
			err = p.take(t, &h.Destination)
		case lexer.TagDate:
			h.Date, err = p.parseDate(t)
		case lexer.TagSubm:
			err = p.takeXref(t, &h.Submitter)
		case lexer.TagSubn:
			err = p.takeXref(t, &h.Submission)
		case lexer.TagFile:
			err = p.take(t, &h.Filename)
		case lexer.TagCopr:
			h.Copyright, err = p.parseCopyright(t)
		case lexer.TagChar:
			h.Encoding, err = p.parseEncoding(t)
		case lexer.TagLang:
			err = p.take(t, &h.Language)
		case lexer.TagNote:
			h.Note, err = p.parseNote(t)
		case lexer.TagPlac:
			h.Place, err = p.parseHeadPlace(t)
		default:
			return errUnhandled
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (p *Parser) parseGedcomInfo(tok lexer.Token) (*tree.GedcomInfo, error) {
	g := &tree.GedcomInfo{}
	p.optionalValue()
	err := p.block(tok.Level, "GEDC", &g.Custom, func(t lexer.Token) error {
		switch t.Tag {
		case lexer.TagVers:
			return p.take(t, &g.Version)
		case lexer.TagForm:
			return p.parseForm(t, g)
		default:
			return errUnhandled
		}
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (p *Parser) parseForm(tok lexer.Token, g *tree.GedcomInfo) error {
	if err := p.take(tok, &g.Form); err != nil {
		return err
	}
	if !strings.EqualFold(g.Form, lineageLinked) {
		p.warn(types.DiagFormatWarning, tree.SeverityMinor, tok,
			fmt.Sprintf("GEDCOM form %q is not %s; records may not be understood", g.Form, lineageLinked))
	}
	return p.block(tok.Level, "FORM", &g.Custom, func(t lexer.Token) error {
		if t.Tag == lexer.TagVers {
			return p.take(t, &g.FormVersion)
		}
		return errUnhandled
	})
}

func (p *Parser) parseHeadSource(tok lexer.Token) (*tree.HeadSource, error) {
	s := &tree.HeadSource{Value: p.optionalValue()}
	err := p.block(tok.Level, "HEAD.SOUR", &s.Custom, func(t lexer.Token) error {
		var err error
		switch t.Tag {
		case lexer.TagVers:
			err = p.take(t, &s.Version)
		case lexer.TagName:
			err = p.take(t, &s.Name)
		case lexer.TagCorp:
			s.Corporation, err = p.parseCorporation(t)
		case lexer.TagData:
			s.Data, err = p.parseHeadSourceData(t)
		default:
			return errUnhandled
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseCorporation(tok lexer.Token) (*tree.Corporation, error) {
	c := &tree.Corporation{Value: p.optionalValue()}
	err := p.block(tok.Level, "CORP", &c.Custom, func(t lexer.Token) error {
		if t.Tag == lexer.TagAddr {
			var err error
			c.Address, err = p.parseAddress(t)
			return err
		}
		return p.contactField(t, &c.Contact)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseHeadSourceData(tok lexer.Token) (*tree.HeadSourceData, error) {
	d := &tree.HeadSourceData{Value: p.optionalValue()}
	err := p.block(tok.Level, "HEAD.SOUR.DATA", &d.Custom, func(t lexer.Token) error {
		var err error
		switch t.Tag {
		case lexer.TagDate:
			d.Date, err = p.parseDate(t)
		case lexer.TagCopr:
			d.Copyright, err = p.parseCopyright(t)
		default:
			return errUnhandled
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Parser) parseEncoding(tok lexer.Token) (*tree.Encoding, error) {
	e := &tree.Encoding{}
	if err := p.take(tok, &e.Value); err != nil {
		return nil, err
	}
	err := p.block(tok.Level, "CHAR", &e.Custom, func(t lexer.Token) error {
		if t.Tag == lexer.TagVers {
			return p.take(t, &e.Version)
		}
		return errUnhandled
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) parseCopyright(tok lexer.Token) (*tree.Copyright, error) {
	c := &tree.Copyright{}
	var err error
	if c.Value, err = p.continuedText(tok, &c.Custom); err != nil {
		return nil, err
	}
	return c, nil
}

// parseHeadPlace reads HEAD.PLAC.FORM, a comma-separated jurisdiction list.
func (p *Parser) parseHeadPlace(tok lexer.Token) (*tree.HeadPlace, error) {
	hp := &tree.HeadPlace{}
	p.optionalValue()
	err := p.block(tok.Level, "HEAD.PLAC", &hp.Custom, func(t lexer.Token) error {
		if t.Tag != lexer.TagForm {
			return errUnhandled
		}
		v, err := p.lineValue(t)
		if err != nil {
			return err
		}
		hp.Form = splitList(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hp, nil
}

// splitList splits a comma-separated list and trims each element.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
