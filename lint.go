package gedcom

import (
	"fmt"
	"strings"

	"github.com/gogedcom/gedcom/internal/graph"
	"github.com/gogedcom/gedcom/internal/types"
	"github.com/gogedcom/gedcom/tree"
)

// Lint checks a parsed document for problems the parser cannot see one
// record at a time: references to records that do not exist, individuals
// who are their own ancestors, a missing header and families with no
// members. Results are filtered by the diagnostic configuration and also
// passed to the warning reporter, if any.
func Lint(doc *tree.Document, opts ...Option) []tree.Diagnostic {
	cfg := newParseConfig(opts)
	l := &linter{doc: doc, cfg: cfg}

	if doc.Header() == nil {
		l.report(types.DiagMissingHeader, tree.SeverityMinor, "", "document has no HEAD record")
	} else if x := doc.Header().Submitter; x != "" && doc.Submitter(x) == nil {
		l.dangling("HEAD", "", "SUBM", x)
	}

	for _, ind := range doc.Individuals() {
		for _, link := range ind.Families {
			if doc.Family(link.Xref) == nil {
				l.dangling("INDI", ind.Xref, "FAM", link.Xref)
			}
		}
	}

	for _, fam := range doc.Families() {
		members := fam.Parents()
		members = append(members, fam.Children...)
		if len(members) == 0 {
			l.report(types.DiagEmptyFamily, tree.SeverityStyle, fam.Xref,
				fmt.Sprintf("FAM @%s@ has no husband, wife or children", fam.Xref))
		}
		for _, x := range members {
			if doc.Individual(x) == nil {
				l.dangling("FAM", fam.Xref, "INDI", x)
			}
		}
	}

	for _, src := range doc.Sources() {
		for _, rc := range src.Repositories {
			if doc.Repository(rc.Xref) == nil {
				l.dangling("SOUR", src.Xref, "REPO", rc.Xref)
			}
		}
	}

	for _, cycle := range graph.FromDocument(doc).Cycles() {
		l.report(types.DiagAncestryCycle, tree.SeveritySevere, cycle[0],
			fmt.Sprintf("ancestry cycle: @%s@", strings.Join(cycle, "@, @")))
	}

	return l.diags
}

type linter struct {
	doc   *tree.Document
	cfg   parseConfig
	diags []tree.Diagnostic
}

func (l *linter) dangling(kind, xref, targetKind, target string) {
	owner := kind
	if xref != "" {
		owner = fmt.Sprintf("%s @%s@", kind, xref)
	}
	l.report(types.DiagDanglingXref, tree.SeverityError, target,
		fmt.Sprintf("%s references missing %s @%s@", owner, targetKind, target))
}

func (l *linter) report(code string, sev tree.Severity, token, msg string) {
	sev = l.cfg.diagConfig.Severity(code, sev)
	if !l.cfg.diagConfig.ShouldReport(code, sev) {
		return
	}
	d := tree.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Document: l.doc.Name(),
		Token:    token,
	}
	l.diags = append(l.diags, d)
	if l.cfg.warnings != nil {
		l.cfg.warnings(d)
	}
}

// Summary counts the records of a document.
type Summary struct {
	Individuals  int `json:"individuals" yaml:"individuals"`
	Families     int `json:"families" yaml:"families"`
	Sources      int `json:"sources" yaml:"sources"`
	Repositories int `json:"repositories" yaml:"repositories"`
	Submitters   int `json:"submitters" yaml:"submitters"`

	// Generations is the longest parent chain, ignoring cycles.
	Generations int `json:"generations" yaml:"generations"`
}

// Summarize counts the records of doc and measures its deepest lineage.
func Summarize(doc *tree.Document) Summary {
	return Summary{
		Individuals:  len(doc.Individuals()),
		Families:     len(doc.Families()),
		Sources:      len(doc.Sources()),
		Repositories: len(doc.Repositories()),
		Submitters:   len(doc.Submitters()),
		Generations:  graph.FromDocument(doc).Generations(),
	}
}
