package tree

// Header is the HEAD record describing the document as a whole.
type Header struct {
	Gedcom      *GedcomInfo   `json:"gedcom,omitempty" yaml:"gedcom,omitempty"`
	Encoding    *Encoding     `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Source      *HeadSource   `json:"source,omitempty" yaml:"source,omitempty"`
	Destination string        `json:"destination,omitempty" yaml:"destination,omitempty"`
	Date        *Date         `json:"date,omitempty" yaml:"date,omitempty"`
	Submitter   string        `json:"submitter,omitempty" yaml:"submitter,omitempty"`
	Submission  string        `json:"submission,omitempty" yaml:"submission,omitempty"`
	Filename    string        `json:"filename,omitempty" yaml:"filename,omitempty"`
	Copyright   *Copyright    `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Language    string        `json:"language,omitempty" yaml:"language,omitempty"`
	Note        *Note         `json:"note,omitempty" yaml:"note,omitempty"`
	Place       *HeadPlace    `json:"place,omitempty" yaml:"place,omitempty"`
	Custom      []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// GedcomInfo is the HEAD.GEDC block.
type GedcomInfo struct {
	Version     string        `json:"version,omitempty" yaml:"version,omitempty"`
	Form        string        `json:"form,omitempty" yaml:"form,omitempty"`
	FormVersion string        `json:"form_version,omitempty" yaml:"form_version,omitempty"`
	Custom      []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Encoding is the HEAD.CHAR block. The value is informational only.
type Encoding struct {
	Value   string        `json:"value,omitempty" yaml:"value,omitempty"`
	Version string        `json:"version,omitempty" yaml:"version,omitempty"`
	Custom  []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// HeadSource identifies the program that produced the document.
type HeadSource struct {
	Value       string          `json:"value,omitempty" yaml:"value,omitempty"`
	Version     string          `json:"version,omitempty" yaml:"version,omitempty"`
	Name        string          `json:"name,omitempty" yaml:"name,omitempty"`
	Corporation *Corporation    `json:"corporation,omitempty" yaml:"corporation,omitempty"`
	Data        *HeadSourceData `json:"data,omitempty" yaml:"data,omitempty"`
	Custom      []*CustomData   `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Corporation is the business behind a HeadSource.
type Corporation struct {
	Value   string        `json:"value,omitempty" yaml:"value,omitempty"`
	Address *Address      `json:"address,omitempty" yaml:"address,omitempty"`
	Custom  []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`

	Contact `yaml:",inline"`
}

// Contact holds the repeatable contact fields shared by corporations,
// repositories and submitters.
type Contact struct {
	Phone   []string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email   []string `json:"email,omitempty" yaml:"email,omitempty"`
	Fax     []string `json:"fax,omitempty" yaml:"fax,omitempty"`
	Website []string `json:"website,omitempty" yaml:"website,omitempty"`
}

// HeadSourceData is the electronic data source a document was taken from.
type HeadSourceData struct {
	Value     string        `json:"value,omitempty" yaml:"value,omitempty"`
	Date      *Date         `json:"date,omitempty" yaml:"date,omitempty"`
	Copyright *Copyright    `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Custom    []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// HeadPlace is the default place hierarchy (HEAD.PLAC.FORM).
type HeadPlace struct {
	Form   []string      `json:"form,omitempty" yaml:"form,omitempty"`
	Custom []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Copyright is a copyright statement, possibly spanning CONT/CONC lines.
type Copyright struct {
	Value  string        `json:"value,omitempty" yaml:"value,omitempty"`
	Custom []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Date is a free-form date phrase with an optional time.
type Date struct {
	Value  string        `json:"value,omitempty" yaml:"value,omitempty"`
	Time   string        `json:"time,omitempty" yaml:"time,omitempty"`
	Custom []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// ChangeDate is the CHAN block recording when a record last changed.
type ChangeDate struct {
	Date   *Date         `json:"date,omitempty" yaml:"date,omitempty"`
	Notes  []*Note       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Custom []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Note is a NOTE structure. Value may hold a pointer to a NOTE record
// instead of text.
type Note struct {
	Value        string         `json:"value,omitempty" yaml:"value,omitempty"`
	Mime         string         `json:"mime,omitempty" yaml:"mime,omitempty"`
	Language     string         `json:"language,omitempty" yaml:"language,omitempty"`
	Translations []*Translation `json:"translations,omitempty" yaml:"translations,omitempty"`
	Custom       []*CustomData  `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Translation is a TRAN block under a note.
type Translation struct {
	Value    string        `json:"value,omitempty" yaml:"value,omitempty"`
	Mime     string        `json:"mime,omitempty" yaml:"mime,omitempty"`
	Language string        `json:"language,omitempty" yaml:"language,omitempty"`
	Custom   []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Address is a postal address. Value holds the free-form lines.
type Address struct {
	Value      string        `json:"value,omitempty" yaml:"value,omitempty"`
	Line1      string        `json:"line1,omitempty" yaml:"line1,omitempty"`
	Line2      string        `json:"line2,omitempty" yaml:"line2,omitempty"`
	Line3      string        `json:"line3,omitempty" yaml:"line3,omitempty"`
	City       string        `json:"city,omitempty" yaml:"city,omitempty"`
	State      string        `json:"state,omitempty" yaml:"state,omitempty"`
	PostalCode string        `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Country    string        `json:"country,omitempty" yaml:"country,omitempty"`
	Custom     []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Place is a PLAC structure: a comma-separated jurisdiction list with an
// optional hierarchy override and coordinates.
type Place struct {
	Value     string        `json:"value,omitempty" yaml:"value,omitempty"`
	Form      []string      `json:"form,omitempty" yaml:"form,omitempty"`
	Latitude  string        `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude string        `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Notes     []*Note       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Custom    []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Event is an individual or family event such as a birth or marriage.
type Event struct {
	Type       EventType         `json:"type" yaml:"type"`
	Value      string            `json:"value,omitempty" yaml:"value,omitempty"`
	Descriptor string            `json:"descriptor,omitempty" yaml:"descriptor,omitempty"` // TYPE
	Date       *Date             `json:"date,omitempty" yaml:"date,omitempty"`
	Place      *Place            `json:"place,omitempty" yaml:"place,omitempty"`
	Age        string            `json:"age,omitempty" yaml:"age,omitempty"`
	HusbandAge string            `json:"husband_age,omitempty" yaml:"husband_age,omitempty"`
	WifeAge    string            `json:"wife_age,omitempty" yaml:"wife_age,omitempty"`
	Cause      string            `json:"cause,omitempty" yaml:"cause,omitempty"`
	Agency     string            `json:"agency,omitempty" yaml:"agency,omitempty"`
	Address    *Address          `json:"address,omitempty" yaml:"address,omitempty"`
	Notes      []*Note           `json:"notes,omitempty" yaml:"notes,omitempty"`
	Citations  []*SourceCitation `json:"citations,omitempty" yaml:"citations,omitempty"`
	Custom     []*CustomData     `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Name is a personal name with its optional pieces.
type Name struct {
	Value         string            `json:"value,omitempty" yaml:"value,omitempty"`
	Given         string            `json:"given,omitempty" yaml:"given,omitempty"`
	Prefix        string            `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix        string            `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	SurnamePrefix string            `json:"surname_prefix,omitempty" yaml:"surname_prefix,omitempty"`
	Surname       string            `json:"surname,omitempty" yaml:"surname,omitempty"`
	Nickname      string            `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	Type          string            `json:"type,omitempty" yaml:"type,omitempty"`
	Notes         []*Note           `json:"notes,omitempty" yaml:"notes,omitempty"`
	Citations     []*SourceCitation `json:"citations,omitempty" yaml:"citations,omitempty"`
	Custom        []*CustomData     `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// FamilyLink connects an individual to a family as child (FAMC) or
// spouse (FAMS).
type FamilyLink struct {
	Xref        string        `json:"xref" yaml:"xref"`
	Kind        LinkKind      `json:"kind" yaml:"kind"`
	Pedigree    Pedigree      `json:"pedigree,omitempty" yaml:"pedigree,omitempty"`
	PedigreeRaw string        `json:"pedigree_raw,omitempty" yaml:"pedigree_raw,omitempty"`
	Notes       []*Note       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Custom      []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// SourceCitation points at a SOUR record, or describes a source inline
// when Xref is not a pointer.
type SourceCitation struct {
	Xref    string        `json:"xref" yaml:"xref"`
	Page    string        `json:"page,omitempty" yaml:"page,omitempty"`
	Quality string        `json:"quality,omitempty" yaml:"quality,omitempty"`
	Date    *Date         `json:"date,omitempty" yaml:"date,omitempty"` // DATA.DATE
	Text    string        `json:"text,omitempty" yaml:"text,omitempty"` // DATA.TEXT
	Notes   []*Note       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Custom  []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// RepoCitation points at the REPO record holding a source.
type RepoCitation struct {
	Xref        string        `json:"xref" yaml:"xref"`
	CallNumbers []string      `json:"call_numbers,omitempty" yaml:"call_numbers,omitempty"`
	Notes       []*Note       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Custom      []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// SourceData is the DATA block of a SOUR record.
type SourceData struct {
	Events []*RecordedEvent `json:"events,omitempty" yaml:"events,omitempty"`
	Agency string           `json:"agency,omitempty" yaml:"agency,omitempty"`
	Date   *Date            `json:"date,omitempty" yaml:"date,omitempty"`
	Notes  []*Note          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Custom []*CustomData    `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// RecordedEvent lists event kinds a source records, with period and place.
type RecordedEvent struct {
	Types  string        `json:"types,omitempty" yaml:"types,omitempty"`
	Date   *Date         `json:"date,omitempty" yaml:"date,omitempty"`
	Place  string        `json:"place,omitempty" yaml:"place,omitempty"`
	Custom []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// CustomData is a user-defined (_TAG) structure and its whole subtree.
type CustomData struct {
	Tag      string        `json:"tag" yaml:"tag"`
	Value    string        `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*CustomData `json:"children,omitempty" yaml:"children,omitempty"`
}

// Individual is an INDI record.
type Individual struct {
	Xref      string            `json:"xref" yaml:"xref"`
	Names     []*Name           `json:"names,omitempty" yaml:"names,omitempty"`
	Sex       Sex               `json:"sex,omitempty" yaml:"sex,omitempty"`
	SexRaw    string            `json:"sex_raw,omitempty" yaml:"sex_raw,omitempty"`
	Events    []*Event          `json:"events,omitempty" yaml:"events,omitempty"`
	Families  []*FamilyLink     `json:"families,omitempty" yaml:"families,omitempty"`
	Change    *ChangeDate       `json:"change,omitempty" yaml:"change,omitempty"`
	Notes     []*Note           `json:"notes,omitempty" yaml:"notes,omitempty"`
	Citations []*SourceCitation `json:"citations,omitempty" yaml:"citations,omitempty"`
	UIDs      []string          `json:"uids,omitempty" yaml:"uids,omitempty"`
	Custom    []*CustomData     `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Name returns the first name value, or "" if the individual has none.
func (i *Individual) Name() string {
	if len(i.Names) == 0 {
		return ""
	}
	return i.Names[0].Value
}

// Event returns the first event of type t, or nil.
func (i *Individual) Event(t EventType) *Event {
	return firstEvent(i.Events, t)
}

// ChildOf returns the xrefs of families the individual is a child in.
func (i *Individual) ChildOf() []string {
	return i.links(LinkChild)
}

// SpouseOf returns the xrefs of families the individual is a spouse in.
func (i *Individual) SpouseOf() []string {
	return i.links(LinkSpouse)
}

func (i *Individual) links(kind LinkKind) []string {
	var out []string
	for _, l := range i.Families {
		if l.Kind == kind {
			out = append(out, l.Xref)
		}
	}
	return out
}

// Family is a FAM record.
type Family struct {
	Xref       string            `json:"xref" yaml:"xref"`
	Husband    string            `json:"husband,omitempty" yaml:"husband,omitempty"`
	Wife       string            `json:"wife,omitempty" yaml:"wife,omitempty"`
	Children   []string          `json:"children,omitempty" yaml:"children,omitempty"`
	ChildCount string            `json:"child_count,omitempty" yaml:"child_count,omitempty"`
	Events     []*Event          `json:"events,omitempty" yaml:"events,omitempty"`
	Change     *ChangeDate       `json:"change,omitempty" yaml:"change,omitempty"`
	Notes      []*Note           `json:"notes,omitempty" yaml:"notes,omitempty"`
	Citations  []*SourceCitation `json:"citations,omitempty" yaml:"citations,omitempty"`
	UIDs       []string          `json:"uids,omitempty" yaml:"uids,omitempty"`
	Custom     []*CustomData     `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Event returns the first event of type t, or nil.
func (f *Family) Event(t EventType) *Event {
	return firstEvent(f.Events, t)
}

// Parents returns the non-empty husband and wife xrefs.
func (f *Family) Parents() []string {
	var out []string
	if f.Husband != "" {
		out = append(out, f.Husband)
	}
	if f.Wife != "" {
		out = append(out, f.Wife)
	}
	return out
}

// Source is a SOUR record.
type Source struct {
	Xref         string          `json:"xref" yaml:"xref"`
	Data         *SourceData     `json:"data,omitempty" yaml:"data,omitempty"`
	Abbreviation string          `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Title        string          `json:"title,omitempty" yaml:"title,omitempty"`
	Author       string          `json:"author,omitempty" yaml:"author,omitempty"`
	Publication  string          `json:"publication,omitempty" yaml:"publication,omitempty"`
	Text         string          `json:"text,omitempty" yaml:"text,omitempty"`
	Repositories []*RepoCitation `json:"repositories,omitempty" yaml:"repositories,omitempty"`
	Notes        []*Note         `json:"notes,omitempty" yaml:"notes,omitempty"`
	Change       *ChangeDate     `json:"change,omitempty" yaml:"change,omitempty"`
	UIDs         []string        `json:"uids,omitempty" yaml:"uids,omitempty"`
	Custom       []*CustomData   `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Repository is a REPO record.
type Repository struct {
	Xref    string        `json:"xref" yaml:"xref"`
	Name    string        `json:"name,omitempty" yaml:"name,omitempty"`
	Address *Address      `json:"address,omitempty" yaml:"address,omitempty"`
	Notes   []*Note       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Change  *ChangeDate   `json:"change,omitempty" yaml:"change,omitempty"`
	UIDs    []string      `json:"uids,omitempty" yaml:"uids,omitempty"`
	Custom  []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`

	Contact `yaml:",inline"`
}

// Submitter is a SUBM record.
type Submitter struct {
	Xref      string        `json:"xref" yaml:"xref"`
	Name      string        `json:"name,omitempty" yaml:"name,omitempty"`
	Address   *Address      `json:"address,omitempty" yaml:"address,omitempty"`
	Languages []string      `json:"languages,omitempty" yaml:"languages,omitempty"`
	Notes     []*Note       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Change    *ChangeDate   `json:"change,omitempty" yaml:"change,omitempty"`
	UIDs      []string      `json:"uids,omitempty" yaml:"uids,omitempty"`
	Custom    []*CustomData `json:"custom,omitempty" yaml:"custom,omitempty"`

	Contact `yaml:",inline"`
}

func firstEvent(events []*Event, t EventType) *Event {
	for _, e := range events {
		if e.Type == t {
			return e
		}
	}
	return nil
}
