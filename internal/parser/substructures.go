package parser

import (
	"fmt"

	"github.com/gogedcom/gedcom/internal/lexer"
	"github.com/gogedcom/gedcom/internal/types"
	"github.com/gogedcom/gedcom/tree"
)

func (p *Parser) parseName(tok lexer.Token) (*tree.Name, error) {
	n := &tree.Name{Value: p.optionalValue()}
	err := p.block(tok.Level, "NAME", &n.Custom, func(t lexer.Token) error {
		switch t.Tag {
		case lexer.TagGivn:
			return p.take(t, &n.Given)
		case lexer.TagNpfx:
			return p.take(t, &n.Prefix)
		case lexer.TagNsfx:
			return p.take(t, &n.Suffix)
		case lexer.TagSpfx:
			return p.take(t, &n.SurnamePrefix)
		case lexer.TagSurn:
			return p.take(t, &n.Surname)
		case lexer.TagNick:
			return p.take(t, &n.Nickname)
		case lexer.TagType:
			return p.take(t, &n.Type)
		case lexer.TagNote:
			return p.addNote(t, &n.Notes)
		case lexer.TagSour:
			return p.addCitation(t, &n.Citations)
		default:
			return errUnhandled
		}
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// addFamilyLink reads FAMC or FAMS with its optional PEDI and NOTE.
func (p *Parser) addFamilyLink(tok lexer.Token, kind tree.LinkKind, dst *[]*tree.FamilyLink) error {
	link := &tree.FamilyLink{Kind: kind}
	if err := p.takeXref(tok, &link.Xref); err != nil {
		return err
	}
	err := p.block(tok.Level, tok.Text, &link.Custom, func(t lexer.Token) error {
		switch t.Tag {
		case lexer.TagPedi:
			return p.parsePedigree(t, link)
		case lexer.TagNote:
			return p.addNote(t, &link.Notes)
		default:
			return errUnhandled
		}
	})
	if err != nil {
		return err
	}
	*dst = append(*dst, link)
	return nil
}

func (p *Parser) parsePedigree(tok lexer.Token, link *tree.FamilyLink) error {
	v, err := p.lineValue(tok)
	if err != nil {
		return err
	}
	if ped, ok := tree.ParsePedigree(v); ok {
		link.Pedigree = ped
		return nil
	}
	if !p.cfg.LenientEnums {
		return p.faultf(tree.ErrMalformedValue, types.DiagMalformedValue, tok,
			"invalid PEDI value %q (want adopted, birth, foster, sealing or other)", v)
	}
	link.Pedigree = tree.PedigreeOther
	link.PedigreeRaw = v
	p.warn(types.DiagMalformedLenient, tree.SeverityWarning, tok,
		fmt.Sprintf("invalid PEDI value %q; recorded as other", v))
	return nil
}

func (p *Parser) parseChangeDate(tok lexer.Token) (*tree.ChangeDate, error) {
	c := &tree.ChangeDate{}
	p.optionalValue()
	err := p.block(tok.Level, "CHAN", &c.Custom, func(t lexer.Token) error {
		switch t.Tag {
		case lexer.TagDate:
			var err error
			c.Date, err = p.parseDate(t)
			return err
		case lexer.TagNote:
			return p.addNote(t, &c.Notes)
		default:
			return errUnhandled
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseDate(tok lexer.Token) (*tree.Date, error) {
	d := &tree.Date{}
	if err := p.take(tok, &d.Value); err != nil {
		return nil, err
	}
	err := p.block(tok.Level, "DATE", &d.Custom, func(t lexer.Token) error {
		if t.Tag == lexer.TagTime {
			return p.take(t, &d.Time)
		}
		return errUnhandled
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Parser) addNote(tok lexer.Token, dst *[]*tree.Note) error {
	n, err := p.parseNote(tok)
	if err != nil {
		return err
	}
	*dst = append(*dst, n)
	return nil
}

// parseNote reads a note. The value is optional: a NOTE line may be empty
// with all text on CONT lines.
func (p *Parser) parseNote(tok lexer.Token) (*tree.Note, error) {
	n := &tree.Note{Value: p.optionalValue()}
	err := p.block(tok.Level, "NOTE", &n.Custom, func(t lexer.Token) error {
		if p.continuation(t, &n.Value) {
			return nil
		}
		switch t.Tag {
		case lexer.TagMime:
			return p.take(t, &n.Mime)
		case lexer.TagLang:
			return p.take(t, &n.Language)
		case lexer.TagTran:
			tr, err := p.parseTranslation(t)
			if err != nil {
				return err
			}
			n.Translations = append(n.Translations, tr)
			return nil
		default:
			return errUnhandled
		}
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) parseTranslation(tok lexer.Token) (*tree.Translation, error) {
	tr := &tree.Translation{Value: p.optionalValue()}
	err := p.block(tok.Level, "TRAN", &tr.Custom, func(t lexer.Token) error {
		if p.continuation(t, &tr.Value) {
			return nil
		}
		switch t.Tag {
		case lexer.TagMime:
			return p.take(t, &tr.Mime)
		case lexer.TagLang:
			return p.take(t, &tr.Language)
		default:
			return errUnhandled
		}
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}

func (p *Parser) addCitation(tok lexer.Token, dst *[]*tree.SourceCitation) error {
	c, err := p.parseCitation(tok)
	if err != nil {
		return err
	}
	*dst = append(*dst, c)
	return nil
}

// parseCitation reads a SOUR citation. A pointer value references a SOUR
// record; plain text describes the source inline and may continue.
// CONT/CONC under a pointer is an unknown field.
func (p *Parser) parseCitation(tok lexer.Token) (*tree.SourceCitation, error) {
	v, err := p.lineValue(tok)
	if err != nil {
		return nil, err
	}
	c := &tree.SourceCitation{Xref: stripXref(v)}
	inline := c.Xref == v
	err = p.block(tok.Level, "SOUR", &c.Custom, func(t lexer.Token) error {
		if inline && p.continuation(t, &c.Xref) {
			return nil
		}
		switch t.Tag {
		case lexer.TagPage:
			return p.take(t, &c.Page)
		case lexer.TagQuay:
			return p.take(t, &c.Quality)
		case lexer.TagNote:
			return p.addNote(t, &c.Notes)
		case lexer.TagData:
			return p.parseCitationData(t, c)
		default:
			return errUnhandled
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseCitationData(tok lexer.Token, c *tree.SourceCitation) error {
	p.optionalValue()
	return p.block(tok.Level, "SOUR.DATA", &c.Custom, func(t lexer.Token) error {
		var err error
		switch t.Tag {
		case lexer.TagDate:
			c.Date, err = p.parseDate(t)
		case lexer.TagText:
			c.Text, err = p.continuedText(t, &c.Custom)
		default:
			return errUnhandled
		}
		return err
	})
}

func (p *Parser) parseRepoCitation(tok lexer.Token) (*tree.RepoCitation, error) {
	rc := &tree.RepoCitation{}
	if err := p.takeXref(tok, &rc.Xref); err != nil {
		return nil, err
	}
	err := p.block(tok.Level, "REPO", &rc.Custom, func(t lexer.Token) error {
		switch t.Tag {
		case lexer.TagCaln:
			return p.takeAll(t, &rc.CallNumbers)
		case lexer.TagNote:
			return p.addNote(t, &rc.Notes)
		default:
			return errUnhandled
		}
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func (p *Parser) parseSourceData(tok lexer.Token) (*tree.SourceData, error) {
	d := &tree.SourceData{}
	p.optionalValue()
	err := p.block(tok.Level, "SOUR.DATA", &d.Custom, func(t lexer.Token) error {
		var err error
		switch t.Tag {
		case lexer.TagEven:
			var ev *tree.RecordedEvent
			if ev, err = p.parseRecordedEvent(t); err == nil {
				d.Events = append(d.Events, ev)
			}
		case lexer.TagAgnc:
			err = p.take(t, &d.Agency)
		case lexer.TagDate:
			d.Date, err = p.parseDate(t)
		case lexer.TagNote:
			err = p.addNote(t, &d.Notes)
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

func (p *Parser) parseRecordedEvent(tok lexer.Token) (*tree.RecordedEvent, error) {
	ev := &tree.RecordedEvent{Types: p.optionalValue()}
	err := p.block(tok.Level, "SOUR.DATA.EVEN", &ev.Custom, func(t lexer.Token) error {
		var err error
		switch t.Tag {
		case lexer.TagDate:
			ev.Date, err = p.parseDate(t)
		case lexer.TagPlac:
			err = p.take(t, &ev.Place)
		default:
			return errUnhandled
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func (p *Parser) addEvent(tok lexer.Token, typ tree.EventType, dst *[]*tree.Event) error {
	ev, err := p.parseEvent(tok, typ)
	if err != nil {
		return err
	}
	*dst = append(*dst, ev)
	return nil
}

func (p *Parser) parseEvent(tok lexer.Token, typ tree.EventType) (*tree.Event, error) {
	ev := &tree.Event{Type: typ, Value: p.optionalValue()}
	err := p.block(tok.Level, tok.Text, &ev.Custom, func(t lexer.Token) error {
		var err error
		switch t.Tag {
		case lexer.TagType:
			err = p.take(t, &ev.Descriptor)
		case lexer.TagDate:
			ev.Date, err = p.parseDate(t)
		case lexer.TagPlac:
			ev.Place, err = p.parsePlace(t)
		case lexer.TagAge:
			err = p.take(t, &ev.Age)
		case lexer.TagHusb:
			err = p.parseSpouseAge(t, &ev.HusbandAge, &ev.Custom)
		case lexer.TagWife:
			err = p.parseSpouseAge(t, &ev.WifeAge, &ev.Custom)
		case lexer.TagCaus:
			err = p.take(t, &ev.Cause)
		case lexer.TagAgnc:
			err = p.take(t, &ev.Agency)
		case lexer.TagAddr:
			ev.Address, err = p.parseAddress(t)
		case lexer.TagNote:
			err = p.addNote(t, &ev.Notes)
		case lexer.TagSour:
			err = p.addCitation(t, &ev.Citations)
		default:
			return errUnhandled
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// parseSpouseAge reads the HUSB/WIFE block of a family event, which only
// carries an AGE. Custom tags go to the event.
func (p *Parser) parseSpouseAge(tok lexer.Token, dst *string, custom *[]*tree.CustomData) error {
	p.optionalValue()
	return p.block(tok.Level, tok.Text, custom, func(t lexer.Token) error {
		if t.Tag == lexer.TagAge {
			return p.take(t, dst)
		}
		return errUnhandled
	})
}

func (p *Parser) parsePlace(tok lexer.Token) (*tree.Place, error) {
	pl := &tree.Place{Value: p.optionalValue()}
	err := p.block(tok.Level, "PLAC", &pl.Custom, func(t lexer.Token) error {
		switch t.Tag {
		case lexer.TagForm:
			v, err := p.lineValue(t)
			if err != nil {
				return err
			}
			pl.Form = splitList(v)
			return nil
		case lexer.TagMap:
			return p.parseMap(t, pl)
		case lexer.TagNote:
			return p.addNote(t, &pl.Notes)
		default:
			return errUnhandled
		}
	})
	if err != nil {
		return nil, err
	}
	return pl, nil
}

func (p *Parser) parseMap(tok lexer.Token, pl *tree.Place) error {
	p.optionalValue()
	return p.block(tok.Level, "MAP", &pl.Custom, func(t lexer.Token) error {
		switch t.Tag {
		case lexer.TagLati:
			return p.take(t, &pl.Latitude)
		case lexer.TagLong:
			return p.take(t, &pl.Longitude)
		default:
			return errUnhandled
		}
	})
}

// parseAddress reads an address. The free-form value is optional and may
// continue over CONT/CONC lines.
func (p *Parser) parseAddress(tok lexer.Token) (*tree.Address, error) {
	a := &tree.Address{Value: p.optionalValue()}
	err := p.block(tok.Level, "ADDR", &a.Custom, func(t lexer.Token) error {
		if p.continuation(t, &a.Value) {
			return nil
		}
		switch t.Tag {
		case lexer.TagAdr1:
			return p.take(t, &a.Line1)
		case lexer.TagAdr2:
			return p.take(t, &a.Line2)
		case lexer.TagAdr3:
			return p.take(t, &a.Line3)
		case lexer.TagCity:
			return p.take(t, &a.City)
		case lexer.TagStae:
			return p.take(t, &a.State)
		case lexer.TagPost:
			return p.take(t, &a.PostalCode)
		case lexer.TagCtry:
			return p.take(t, &a.Country)
		default:
			return errUnhandled
		}
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}
