package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogedcom/gedcom"
	"github.com/gogedcom/gedcom/cmd/internal/cliutil"
	"github.com/gogedcom/gedcom/tree"
)

// dumpDocument is the serialized form of a parsed document.
type dumpDocument struct {
	Name         string             `json:"name" yaml:"name"`
	Header       *tree.Header       `json:"header,omitempty" yaml:"header,omitempty"`
	Individuals  []*tree.Individual `json:"individuals,omitempty" yaml:"individuals,omitempty"`
	Families     []*tree.Family     `json:"families,omitempty" yaml:"families,omitempty"`
	Sources      []*tree.Source     `json:"sources,omitempty" yaml:"sources,omitempty"`
	Repositories []*tree.Repository `json:"repositories,omitempty" yaml:"repositories,omitempty"`
	Submitters   []*tree.Submitter  `json:"submitters,omitempty" yaml:"submitters,omitempty"`
	Diagnostics  []tree.Diagnostic  `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func newDumpDocument(doc *tree.Document) dumpDocument {
	return dumpDocument{
		Name:         doc.Name(),
		Header:       doc.Header(),
		Individuals:  doc.Individuals(),
		Families:     doc.Families(),
		Sources:      doc.Sources(),
		Repositories: doc.Repositories(),
		Submitters:   doc.Submitters(),
		Diagnostics:  doc.Diagnostics(),
	}
}

func (c *cli) dumpCmd() *cobra.Command {
	var (
		format     string
		outputFile string
	)
	cmd := &cobra.Command{
		Use:   "dump PATH...",
		Short: "Output parsed records as JSON or YAML",
		Long: `Output every parsed record, with its document's diagnostics.

JSON output is one object for a single document and an array otherwise.
YAML output is one YAML document per GEDCOM document.`,
		Example: `  gedcom dump family.ged
  gedcom dump --format yaml -o family.yaml family.ged`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "json", "yaml":
			default:
				return fmt.Errorf("unknown format: %s", format)
			}

			opts, err := c.options()
			if err != nil {
				return err
			}
			docs, err := c.parseArgs(cmd, args, opts)
			invalid := errors.Is(err, gedcom.ErrInvalidDocument)
			if err != nil && !invalid {
				return err
			}

			w, closeOut, err := cliutil.GetOutput(outputFile, c.stdout)
			if err != nil {
				return err
			}
			err = writeDump(w, format, docs)
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("output encoding failed: %w", err)
			}
			if invalid {
				return &exitCodeError{code: exitError}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func writeDump(w io.Writer, format string, docs []*tree.Document) error {
	out := make([]dumpDocument, 0, len(docs))
	for _, doc := range docs {
		out = append(out, newDumpDocument(doc))
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, d := range out {
			if err := enc.Encode(d); err != nil {
				return err
			}
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(out) == 1 {
		return enc.Encode(out[0])
	}
	return enc.Encode(out)
}
