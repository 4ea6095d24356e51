package parser

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gogedcom/gedcom/internal/lexer"
	"github.com/gogedcom/gedcom/internal/types"
	"github.com/gogedcom/gedcom/tree"
)

var individualEvents = map[lexer.Tag]tree.EventType{
	lexer.TagAdop: tree.EventAdoption,
	lexer.TagBirt: tree.EventBirth,
	lexer.TagBapm: tree.EventBaptism,
	lexer.TagBarm: tree.EventBarMitzvah,
	lexer.TagBasm: tree.EventBasMitzvah,
	lexer.TagBles: tree.EventBlessing,
	lexer.TagBuri: tree.EventBurial,
	lexer.TagCens: tree.EventCensus,
	lexer.TagChr:  tree.EventChristening,
	lexer.TagChra: tree.EventAdultChristening,
	lexer.TagConf: tree.EventConfirmation,
	lexer.TagCrem: tree.EventCremation,
	lexer.TagDeat: tree.EventDeath,
	lexer.TagEmig: tree.EventEmigration,
	lexer.TagFcom: tree.EventFirstCommunion,
	lexer.TagGrad: tree.EventGraduation,
	lexer.TagImmi: tree.EventImmigration,
	lexer.TagNatu: tree.EventNaturalization,
	lexer.TagOrdn: tree.EventOrdination,
	lexer.TagReti: tree.EventRetirement,
	lexer.TagResi: tree.EventResidence,
	lexer.TagProb: tree.EventProbate,
	lexer.TagWill: tree.EventWill,
	lexer.TagEven: tree.EventOther,
}

var familyEvents = map[lexer.Tag]tree.EventType{
	lexer.TagAnul: tree.EventAnnulment,
	lexer.TagCens: tree.EventCensus,
	lexer.TagDiv:  tree.EventDivorce,
	lexer.TagDivf: tree.EventDivorceFiled,
	lexer.TagEnga: tree.EventEngagement,
	lexer.TagMarb: tree.EventMarriageBann,
	lexer.TagMarc: tree.EventMarriageContract,
	lexer.TagMarr: tree.EventMarriage,
	lexer.TagMarl: tree.EventMarriageLicense,
	lexer.TagMars: tree.EventMarriageSettlement,
	lexer.TagResi: tree.EventResidence,
	lexer.TagEven: tree.EventOther,
}

func (p *Parser) parseIndividual(tok lexer.Token, xref string) (*tree.Individual, error) {
	ind := &tree.Individual{Xref: xref}
	p.optionalValue()
	err := p.block(tok.Level, "INDI", &ind.Custom, func(t lexer.Token) error {
		switch t.Tag {
		case lexer.TagName:
			n, err := p.parseName(t)
			if err != nil {
				return err
			}
			ind.Names = append(ind.Names, n)
			return nil
		case lexer.TagSex:
			return p.parseSex(t, ind)
		case lexer.TagFamc:
			return p.addFamilyLink(t, tree.LinkChild, &ind.Families)
		case lexer.TagFams:
			return p.addFamilyLink(t, tree.LinkSpouse, &ind.Families)
		case lexer.TagChan:
			var err error
			ind.Change, err = p.parseChangeDate(t)
			return err
		case lexer.TagNote:
			return p.addNote(t, &ind.Notes)
		case lexer.TagSour:
			return p.addCitation(t, &ind.Citations)
		case lexer.TagUID:
			return p.addUID(t, &ind.UIDs)
		}
		if typ, ok := individualEvents[t.Tag]; ok {
			return p.addEvent(t, typ, &ind.Events)
		}
		return errUnhandled
	})
	if err != nil {
		return nil, err
	}
	return ind, nil
}

// parseSex maps the SEX code onto the closed vocabulary.
func (p *Parser) parseSex(tok lexer.Token, ind *tree.Individual) error {
	v, err := p.lineValue(tok)
	if err != nil {
		return err
	}
	if sex, ok := tree.ParseSex(v); ok {
		ind.Sex = sex
		return nil
	}
	if !p.cfg.LenientEnums {
		return p.faultf(tree.ErrMalformedValue, types.DiagMalformedValue, tok,
			"invalid SEX value %q (want M, F, N, U or X)", v)
	}
	ind.Sex = tree.SexUnknown
	ind.SexRaw = v
	p.warn(types.DiagMalformedLenient, tree.SeverityWarning, tok,
		fmt.Sprintf("invalid SEX value %q; recorded as unknown", v))
	return nil
}

func (p *Parser) parseFamily(tok lexer.Token, xref string) (*tree.Family, error) {
	fam := &tree.Family{Xref: xref}
	p.optionalValue()
	err := p.block(tok.Level, "FAM", &fam.Custom, func(t lexer.Token) error {
		switch t.Tag {
		case lexer.TagHusb:
			return p.takeXref(t, &fam.Husband)
		case lexer.TagWife:
			return p.takeXref(t, &fam.Wife)
		case lexer.TagChil:
			var child string
			if err := p.takeXref(t, &child); err != nil {
				return err
			}
			fam.Children = append(fam.Children, child)
			return nil
		case lexer.TagNchi:
			return p.take(t, &fam.ChildCount)
		case lexer.TagChan:
			var err error
			fam.Change, err = p.parseChangeDate(t)
			return err
		case lexer.TagNote:
			return p.addNote(t, &fam.Notes)
		case lexer.TagSour:
			return p.addCitation(t, &fam.Citations)
		case lexer.TagUID:
			return p.addUID(t, &fam.UIDs)
		}
		if typ, ok := familyEvents[t.Tag]; ok {
			return p.addEvent(t, typ, &fam.Events)
		}
		return errUnhandled
	})
	if err != nil {
		return nil, err
	}
	return fam, nil
}

func (p *Parser) parseSource(tok lexer.Token, xref string) (*tree.Source, error) {
	src := &tree.Source{Xref: xref}
	p.optionalValue()
	err := p.block(tok.Level, "SOUR", &src.Custom, func(t lexer.Token) error {
		var err error
		switch t.Tag {
		case lexer.TagData:
			src.Data, err = p.parseSourceData(t)
		case lexer.TagAbbr:
			err = p.take(t, &src.Abbreviation)
		case lexer.TagTitl:
			src.Title, err = p.continuedText(t, &src.Custom)
		case lexer.TagAuth:
			src.Author, err = p.continuedText(t, &src.Custom)
		case lexer.TagPubl:
			src.Publication, err = p.continuedText(t, &src.Custom)
		case lexer.TagText:
			src.Text, err = p.continuedText(t, &src.Custom)
		case lexer.TagRepo:
			var rc *tree.RepoCitation
			if rc, err = p.parseRepoCitation(t); err == nil {
				src.Repositories = append(src.Repositories, rc)
			}
		case lexer.TagNote:
			err = p.addNote(t, &src.Notes)
		case lexer.TagChan:
			src.Change, err = p.parseChangeDate(t)
		case lexer.TagUID:
			err = p.addUID(t, &src.UIDs)
		default:
			return errUnhandled
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return src, nil
}

func (p *Parser) parseRepository(tok lexer.Token, xref string) (*tree.Repository, error) {
	repo := &tree.Repository{Xref: xref}
	p.optionalValue()
	err := p.block(tok.Level, "REPO", &repo.Custom, func(t lexer.Token) error {
		var err error
		switch t.Tag {
		case lexer.TagName:
			err = p.take(t, &repo.Name)
		case lexer.TagAddr:
			repo.Address, err = p.parseAddress(t)
		case lexer.TagNote:
			err = p.addNote(t, &repo.Notes)
		case lexer.TagChan:
			repo.Change, err = p.parseChangeDate(t)
		case lexer.TagUID:
			err = p.addUID(t, &repo.UIDs)
		default:
			return p.contactField(t, &repo.Contact)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (p *Parser) parseSubmitter(tok lexer.Token, xref string) (*tree.Submitter, error) {
	subm := &tree.Submitter{Xref: xref}
	p.optionalValue()
	err := p.block(tok.Level, "SUBM", &subm.Custom, func(t lexer.Token) error {
		var err error
		switch t.Tag {
		case lexer.TagName:
			err = p.take(t, &subm.Name)
		case lexer.TagAddr:
			subm.Address, err = p.parseAddress(t)
		case lexer.TagLang:
			err = p.takeAll(t, &subm.Languages)
		case lexer.TagNote:
			err = p.addNote(t, &subm.Notes)
		case lexer.TagChan:
			subm.Change, err = p.parseChangeDate(t)
		case lexer.TagUID:
			err = p.addUID(t, &subm.UIDs)
		default:
			return p.contactField(t, &subm.Contact)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return subm, nil
}

// contactField handles PHON, EMAIL, FAX and WWW.
func (p *Parser) contactField(tok lexer.Token, c *tree.Contact) error {
	switch tok.Tag {
	case lexer.TagPhon:
		return p.takeAll(tok, &c.Phone)
	case lexer.TagEmail:
		return p.takeAll(tok, &c.Email)
	case lexer.TagFax:
		return p.takeAll(tok, &c.Fax)
	case lexer.TagWWW:
		return p.takeAll(tok, &c.Website)
	default:
		return errUnhandled
	}
}

// addUID records a UID value. Malformed UUIDs are kept with a warning.
func (p *Parser) addUID(tok lexer.Token, dst *[]string) error {
	v, err := p.lineValue(tok)
	if err != nil {
		return err
	}
	if _, perr := uuid.Parse(v); perr != nil {
		p.warn(types.DiagInvalidUID, tree.SeverityMinor, tok,
			fmt.Sprintf("UID %q is not a valid UUID", v))
	}
	*dst = append(*dst, v)
	return nil
}
