package main

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogedcom/gedcom"
	"github.com/gogedcom/gedcom/cmd/internal/cliutil"
	"github.com/gogedcom/gedcom/tree"
)

var listHeader = []string{"XREF", "NAME", "SEX", "BIRTH", "DEATH"}

func (c *cli) listCmd() *cobra.Command {
	var (
		sortBy string
		match  string
	)
	cmd := &cobra.Command{
		Use:   "list PATH...",
		Short: "List individuals",
		Long: `List the individuals of each document with sex and birth and death dates.

Names are shown without the slashes that mark the surname.`,
		Example: `  gedcom list family.ged
  gedcom list --sort name --match smith family.ged`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch sortBy {
			case "xref", "name", "file":
			default:
				return fmt.Errorf("unknown sort key: %s", sortBy)
			}

			opts, err := c.options()
			if err != nil {
				return err
			}
			docs, err := c.parseArgs(cmd, args, opts)
			if err != nil && !errors.Is(err, gedcom.ErrInvalidDocument) {
				return err
			}

			for i, doc := range docs {
				if len(docs) > 1 {
					if i > 0 {
						fmt.Fprintln(c.stdout)
					}
					fmt.Fprintf(c.stdout, "%s:\n", doc.Name())
				}
				rows := listRows(doc, sortBy, match)
				if err := cliutil.WriteTable(c.stdout, listHeader, rows); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "file", "sort by: file, xref, name")
	cmd.Flags().StringVar(&match, "match", "", "only names containing this text (case-insensitive)")
	return cmd
}

func listRows(doc *tree.Document, sortBy, match string) [][]string {
	inds := doc.Individuals()
	switch sortBy {
	case "xref":
		slices.SortStableFunc(inds, func(a, b *tree.Individual) int {
			return cmp.Compare(a.Xref, b.Xref)
		})
	case "name":
		slices.SortStableFunc(inds, func(a, b *tree.Individual) int {
			return cmp.Compare(strings.ToLower(displayName(a)), strings.ToLower(displayName(b)))
		})
	}

	match = strings.ToLower(match)
	rows := make([][]string, 0, len(inds))
	for _, ind := range inds {
		name := displayName(ind)
		if match != "" && !strings.Contains(strings.ToLower(name), match) {
			continue
		}
		rows = append(rows, []string{
			ind.Xref,
			name,
			ind.Sex.String(),
			eventDate(ind, tree.EventBirth),
			eventDate(ind, tree.EventDeath),
		})
	}
	return rows
}

// displayName renders "John /Smith/" as "John Smith".
func displayName(ind *tree.Individual) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(ind.Name(), "/", " ")), " ")
}

func eventDate(ind *tree.Individual, typ tree.EventType) string {
	ev := ind.Event(typ)
	if ev == nil || ev.Date == nil {
		return ""
	}
	return ev.Date.Value
}
