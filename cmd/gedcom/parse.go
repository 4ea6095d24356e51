package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogedcom/gedcom"
)

type parseResult struct {
	Document    string              `json:"document"`
	Summary     gedcom.Summary      `json:"summary"`
	Diagnostics []gedcom.Diagnostic `json:"diagnostics,omitempty"`
}

func (c *cli) parseCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "parse PATH...",
		Short: "Parse documents and summarize their records",
		Long: `Parse documents and print record counts and the deepest lineage.

Parse diagnostics allowed by the configured strictness are listed under
each document. A document with faults makes the command fail.`,
		Example: `  gedcom parse family.ged
  gedcom parse --json "archive/**/*.ged"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd, args, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "JSON output")
	return cmd
}

func (c *cli) runParse(cmd *cobra.Command, args []string, jsonOutput bool) error {
	opts, err := c.options()
	if err != nil {
		return err
	}
	docs, err := c.parseArgs(cmd, args, opts)
	invalid := errors.Is(err, gedcom.ErrInvalidDocument)
	if err != nil && !invalid {
		return err
	}

	results := make([]parseResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, parseResult{
			Document:    doc.Name(),
			Summary:     gedcom.Summarize(doc),
			Diagnostics: doc.Diagnostics(),
		})
	}

	if jsonOutput {
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("output encoding failed: %w", err)
		}
	} else {
		for _, r := range results {
			s := r.Summary
			fmt.Fprintf(c.stdout, "%s: %d individuals, %d families, %d sources, %d repositories, %d submitters, %d generations\n",
				r.Document, s.Individuals, s.Families, s.Sources, s.Repositories, s.Submitters, s.Generations)
			for _, d := range r.Diagnostics {
				fmt.Fprintf(c.stdout, "  %s\n", d)
			}
		}
	}

	if invalid {
		return &exitCodeError{code: exitError}
	}
	return nil
}
