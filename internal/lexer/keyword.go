package lexer

import "sort"

// Tag is a standard GEDCOM keyword.
type Tag int

// Keywords recognized by the tokenizer. Anything else without a leading
// underscore lexes as TagUnknown.
const (
	TagUnknown Tag = iota
	TagAbbr
	TagAddr
	TagAdop
	TagAdr1
	TagAdr2
	TagAdr3
	TagAge
	TagAgnc
	TagAnul
	TagAuth
	TagBapm
	TagBarm
	TagBasm
	TagBirt
	TagBles
	TagBuri
	TagCaln
	TagCaus
	TagCens
	TagChan
	TagChar
	TagChil
	TagChr
	TagChra
	TagCity
	TagConc
	TagConf
	TagCont
	TagCopr
	TagCorp
	TagCrem
	TagCtry
	TagData
	TagDate
	TagDeat
	TagDest
	TagDiv
	TagDivf
	TagEmail
	TagEmig
	TagEnga
	TagEven
	TagFam
	TagFamc
	TagFams
	TagFax
	TagFcom
	TagFile
	TagForm
	TagGedc
	TagGivn
	TagGrad
	TagHead
	TagHusb
	TagImmi
	TagIndi
	TagLang
	TagLati
	TagLong
	TagMap
	TagMarb
	TagMarc
	TagMarl
	TagMarr
	TagMars
	TagMime
	TagName
	TagNatu
	TagNchi
	TagNick
	TagNote
	TagNpfx
	TagNsfx
	TagObje
	TagOrdn
	TagPage
	TagPedi
	TagPhon
	TagPlac
	TagPost
	TagProb
	TagPubl
	TagQuay
	TagRefn
	TagRepo
	TagResi
	TagReti
	TagRIN
	TagSex
	TagSnote
	TagSour
	TagSpfx
	TagStae
	TagSubm
	TagSubn
	TagSurn
	TagText
	TagTime
	TagTitl
	TagTran
	TagTrlr
	TagType
	TagUID
	TagVers
	TagWife
	TagWill
	TagWWW
)

// keywords is the sorted keyword table for binary search.
// IMPORTANT: This slice MUST remain sorted by text (ASCII byte order,
// digits before letters).
var keywords = []struct {
	text string
	tag  Tag
}{
	{"ABBR", TagAbbr},
	{"ADDR", TagAddr},
	{"ADOP", TagAdop},
	{"ADR1", TagAdr1},
	{"ADR2", TagAdr2},
	{"ADR3", TagAdr3},
	{"AGE", TagAge},
	{"AGNC", TagAgnc},
	{"ANUL", TagAnul},
	{"AUTH", TagAuth},
	{"BAPM", TagBapm},
	{"BARM", TagBarm},
	{"BASM", TagBasm},
	{"BIRT", TagBirt},
	{"BLES", TagBles},
	{"BURI", TagBuri},
	{"CALN", TagCaln},
	{"CAUS", TagCaus},
	{"CENS", TagCens},
	{"CHAN", TagChan},
	{"CHAR", TagChar},
	{"CHIL", TagChil},
	{"CHR", TagChr},
	{"CHRA", TagChra},
	{"CITY", TagCity},
	{"CONC", TagConc},
	{"CONF", TagConf},
	{"CONT", TagCont},
	{"COPR", TagCopr},
	{"CORP", TagCorp},
	{"CREM", TagCrem},
	{"CTRY", TagCtry},
	{"DATA", TagData},
	{"DATE", TagDate},
	{"DEAT", TagDeat},
	{"DEST", TagDest},
	{"DIV", TagDiv},
	{"DIVF", TagDivf},
	{"EMAIL", TagEmail},
	{"EMIG", TagEmig},
	{"ENGA", TagEnga},
	{"EVEN", TagEven},
	{"FAM", TagFam},
	{"FAMC", TagFamc},
	{"FAMS", TagFams},
	{"FAX", TagFax},
	{"FCOM", TagFcom},
	{"FILE", TagFile},
	{"FORM", TagForm},
	{"GEDC", TagGedc},
	{"GIVN", TagGivn},
	{"GRAD", TagGrad},
	{"HEAD", TagHead},
	{"HUSB", TagHusb},
	{"IMMI", TagImmi},
	{"INDI", TagIndi},
	{"LANG", TagLang},
	{"LATI", TagLati},
	{"LONG", TagLong},
	{"MAP", TagMap},
	{"MARB", TagMarb},
	{"MARC", TagMarc},
	{"MARL", TagMarl},
	{"MARR", TagMarr},
	{"MARS", TagMars},
	{"MIME", TagMime},
	{"NAME", TagName},
	{"NATU", TagNatu},
	{"NCHI", TagNchi},
	{"NICK", TagNick},
	{"NOTE", TagNote},
	{"NPFX", TagNpfx},
	{"NSFX", TagNsfx},
	{"OBJE", TagObje},
	{"ORDN", TagOrdn},
	{"PAGE", TagPage},
	{"PEDI", TagPedi},
	{"PHON", TagPhon},
	{"PLAC", TagPlac},
	{"POST", TagPost},
	{"PROB", TagProb},
	{"PUBL", TagPubl},
	{"QUAY", TagQuay},
	{"REFN", TagRefn},
	{"REPO", TagRepo},
	{"RESI", TagResi},
	{"RETI", TagReti},
	{"RIN", TagRIN},
	{"SEX", TagSex},
	{"SNOTE", TagSnote},
	{"SOUR", TagSour},
	{"SPFX", TagSpfx},
	{"STAE", TagStae},
	{"SUBM", TagSubm},
	{"SUBN", TagSubn},
	{"SURN", TagSurn},
	{"TEXT", TagText},
	{"TIME", TagTime},
	{"TITL", TagTitl},
	{"TRAN", TagTran},
	{"TRLR", TagTrlr},
	{"TYPE", TagType},
	{"UID", TagUID},
	{"VERS", TagVers},
	{"WIFE", TagWife},
	{"WILL", TagWill},
	{"WWW", TagWWW},
}

// tagText maps a Tag back to its keyword.
var tagText = func() []string {
	names := make([]string, len(keywords)+1)
	names[TagUnknown] = "UNKNOWN"
	for _, kw := range keywords {
		names[kw.tag] = kw.text
	}
	return names
}()

func (t Tag) String() string {
	if t >= 0 && int(t) < len(tagText) {
		return tagText[t]
	}
	return "UNKNOWN"
}

// LookupTag returns the Tag for a keyword, or (TagUnknown, false) if not found.
// Keywords are case-sensitive.
func LookupTag(text string) (Tag, bool) {
	idx := sort.Search(len(keywords), func(i int) bool {
		return keywords[i].text >= text
	})
	if idx < len(keywords) && keywords[idx].text == text {
		return keywords[idx].tag, true
	}
	return TagUnknown, false
}
