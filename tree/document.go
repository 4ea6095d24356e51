package tree

import (
	"slices"

	"github.com/tidwall/btree"
)

// Document is the top-level container for a parsed GEDCOM file.
// Records keep document order; lookups by xref go through an ordered index.
type Document struct {
	name         string
	header       *Header
	individuals  []*Individual
	families     []*Family
	sources      []*Source
	repositories []*Repository
	submitters   []*Submitter

	index       btree.Map[string, any]
	diagnostics []Diagnostic
}

// NewDocument returns an empty document labelled with name (usually the
// file path it was read from).
func NewDocument(name string) *Document {
	return &Document{name: name}
}

func (d *Document) Name() string    { return d.name }
func (d *Document) Header() *Header { return d.header }

func (d *Document) Individuals() []*Individual  { return slices.Clone(d.individuals) }
func (d *Document) Families() []*Family         { return slices.Clone(d.families) }
func (d *Document) Sources() []*Source          { return slices.Clone(d.sources) }
func (d *Document) Repositories() []*Repository { return slices.Clone(d.repositories) }
func (d *Document) Submitters() []*Submitter    { return slices.Clone(d.submitters) }
func (d *Document) Diagnostics() []Diagnostic   { return slices.Clone(d.diagnostics) }

// RecordCount returns the number of top-level records, excluding the header.
func (d *Document) RecordCount() int {
	return len(d.individuals) + len(d.families) + len(d.sources) +
		len(d.repositories) + len(d.submitters)
}

// Lookup returns the record indexed under xref, whatever its type.
func (d *Document) Lookup(xref string) (any, bool) {
	return d.index.Get(xref)
}

// Individual returns the individual with the given xref, or nil if not found.
func (d *Document) Individual(xref string) *Individual {
	return lookup[*Individual](d, xref)
}

// Family returns the family with the given xref, or nil if not found.
func (d *Document) Family(xref string) *Family {
	return lookup[*Family](d, xref)
}

// Source returns the source with the given xref, or nil if not found.
func (d *Document) Source(xref string) *Source {
	return lookup[*Source](d, xref)
}

// Repository returns the repository with the given xref, or nil if not found.
func (d *Document) Repository(xref string) *Repository {
	return lookup[*Repository](d, xref)
}

// Submitter returns the submitter with the given xref, or nil if not found.
func (d *Document) Submitter(xref string) *Submitter {
	return lookup[*Submitter](d, xref)
}

// Xrefs returns every indexed cross-reference identifier in sorted order.
func (d *Document) Xrefs() []string {
	return d.index.Keys()
}

// HasErrors reports whether any diagnostic is at error severity or worse.
func (d *Document) HasErrors() bool {
	for _, diag := range d.diagnostics {
		if diag.Severity <= SeverityError {
			return true
		}
	}
	return false
}

// Construction methods used by the parser. The Add methods return false
// when the record's xref is already taken; the record is still kept in
// document order but the index continues to point at the first holder.

func (d *Document) SetHeader(h *Header) { d.header = h }

func (d *Document) AddIndividual(r *Individual) bool {
	d.individuals = append(d.individuals, r)
	return d.indexRecord(r.Xref, r)
}

func (d *Document) AddFamily(r *Family) bool {
	d.families = append(d.families, r)
	return d.indexRecord(r.Xref, r)
}

func (d *Document) AddSource(r *Source) bool {
	d.sources = append(d.sources, r)
	return d.indexRecord(r.Xref, r)
}

func (d *Document) AddRepository(r *Repository) bool {
	d.repositories = append(d.repositories, r)
	return d.indexRecord(r.Xref, r)
}

func (d *Document) AddSubmitter(r *Submitter) bool {
	d.submitters = append(d.submitters, r)
	return d.indexRecord(r.Xref, r)
}

// AddDiagnostic records a diagnostic against the document.
func (d *Document) AddDiagnostic(diag Diagnostic) {
	if diag.Document == "" {
		diag.Document = d.name
	}
	d.diagnostics = append(d.diagnostics, diag)
}

func (d *Document) indexRecord(xref string, rec any) bool {
	if xref == "" {
		return true
	}
	if _, taken := d.index.Get(xref); taken {
		return false
	}
	d.index.Set(xref, rec)
	return true
}

func lookup[T any](d *Document, xref string) T {
	var zero T
	v, ok := d.index.Get(xref)
	if !ok {
		return zero
	}
	rec, ok := v.(T)
	if !ok {
		return zero
	}
	return rec
}
