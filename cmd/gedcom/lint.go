package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogedcom/gedcom"
	"github.com/gogedcom/gedcom/internal/types"
	"github.com/gogedcom/gedcom/tree"
)

type lintConfig struct {
	failAt string
	ignore []string
	format string
	quiet  bool
	codes  bool
}

type lintResult struct {
	Documents   int                 `json:"documents"`
	Diagnostics []gedcom.Diagnostic `json:"diagnostics"`
	Summary     lintSummary         `json:"summary"`
	ExitCode    int                 `json:"-"`
}

type lintSummary struct {
	Total      int            `json:"total"`
	BySeverity map[string]int `json:"by_severity"`
	ByCode     map[string]int `json:"by_code,omitempty"`
}

func (c *cli) lintCmd() *cobra.Command {
	var cfg lintConfig
	cmd := &cobra.Command{
		Use:   "lint PATH...",
		Short: "Check documents for issues",
		Long: `Check documents for parse problems and cross-record issues: references
to missing records, ancestry cycles, a missing header and empty families.

Faults do not stop a lint run unless parse.max_faults is configured; each
one is reported as a fatal diagnostic.

Exit status is 2 when any diagnostic is at or above the fail_at severity
(default: severe), 1 on other errors and 0 otherwise.`,
		Example: `  gedcom lint family.ged
  gedcom lint --fail-at error archive/
  gedcom lint --ignore "unsupported-*" --format json family.ged
  gedcom lint --codes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.codes {
				return c.printCodes()
			}
			if len(args) == 0 {
				return errors.New("no documents specified")
			}
			return c.runLint(cmd, args, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.failAt, "fail-at", "", "fail on this severity or worse (fatal..info)")
	flags.StringArrayVar(&cfg.ignore, "ignore", nil, `ignore diagnostic codes (repeatable, globs like "unsupported-*")`)
	flags.StringVar(&cfg.format, "format", "text", "output format: text, json")
	flags.BoolVar(&cfg.quiet, "quiet", false, "no output, exit code only")
	flags.BoolVar(&cfg.codes, "codes", false, "list known diagnostic codes")
	return cmd
}

func (c *cli) runLint(cmd *cobra.Command, args []string, cfg lintConfig) error {
	switch cfg.format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format: %s", cfg.format)
	}

	dc, err := c.cfg.DiagnosticConfig()
	if err != nil {
		return err
	}
	if cfg.failAt != "" {
		sev, ok := tree.ParseSeverity(cfg.failAt)
		if !ok {
			return fmt.Errorf("unknown severity: %s", cfg.failAt)
		}
		dc.FailAt = sev
	}
	dc.Ignore = append(dc.Ignore, cfg.ignore...)

	opts, err := c.options(gedcom.WithAccumulate(-1))
	if err != nil {
		return err
	}
	opts = append(opts, gedcom.WithDiagnosticConfig(dc))

	result, err := c.lint(cmd, args, dc, opts)
	if err != nil {
		return err
	}

	if !cfg.quiet {
		var err error
		switch cfg.format {
		case "json":
			err = c.printLintJSON(result)
		default:
			c.printLintText(result)
		}
		if err != nil {
			return fmt.Errorf("output encoding failed: %w", err)
		}
	}

	if result.ExitCode != exitOK {
		return &exitCodeError{code: result.ExitCode}
	}
	return nil
}

func (c *cli) lint(cmd *cobra.Command, args []string, dc tree.DiagnosticConfig, opts []gedcom.Option) (*lintResult, error) {
	result := &lintResult{
		Summary: lintSummary{
			BySeverity: make(map[string]int),
			ByCode:     make(map[string]int),
		},
	}

	docs, err := c.parseArgs(cmd, args, opts)
	var pe *tree.ParseError
	switch {
	case err == nil, errors.Is(err, gedcom.ErrInvalidDocument):
		// Swallowed faults are already in each document's diagnostics.
	case errors.As(err, &pe):
		// The fault limit was reached.
		result.add(pe.Diagnostic, dc)
		return result, nil
	default:
		return nil, err
	}

	result.Documents = len(docs)
	for _, doc := range docs {
		for _, d := range doc.Diagnostics() {
			result.add(d, dc)
		}
		for _, d := range gedcom.Lint(doc, opts...) {
			result.add(d, dc)
		}
	}
	return result, nil
}

func (r *lintResult) add(d tree.Diagnostic, dc tree.DiagnosticConfig) {
	r.Diagnostics = append(r.Diagnostics, d)
	r.Summary.Total++
	r.Summary.BySeverity[d.Severity.String()]++
	r.Summary.ByCode[d.Code]++
	if dc.ShouldFail(d.Severity) {
		r.ExitCode = exitFailAt
	}
}

func (c *cli) printLintText(result *lintResult) {
	for _, d := range result.Diagnostics {
		fmt.Fprintln(c.stdout, d)
	}

	if result.Summary.Total == 0 {
		fmt.Fprintf(c.stdout, "No issues found in %d documents\n", result.Documents)
		return
	}
	fmt.Fprintln(c.stdout)
	c.printLintSummary(result)
}

func (c *cli) printLintSummary(result *lintResult) {
	fmt.Fprintf(c.stdout, "%d issues in %d documents", result.Summary.Total, result.Documents)

	var parts []string
	for sev := tree.SeverityFatal; sev <= tree.SeverityInfo; sev++ {
		if n := result.Summary.BySeverity[sev.String()]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", sev, n))
		}
	}
	fmt.Fprintf(c.stdout, " (%s)\n", strings.Join(parts, ", "))
}

func (c *cli) printLintJSON(result *lintResult) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (c *cli) printCodes() error {
	byPhase := make(map[string][]string)
	for _, info := range types.AllDiagnosticCodes() {
		byPhase[info.Phase] = append(byPhase[info.Phase], info.Code)
	}
	for _, phase := range slices.Sorted(maps.Keys(byPhase)) {
		fmt.Fprintf(c.stdout, "%s:\n", phase)
		for _, code := range byPhase[phase] {
			fmt.Fprintf(c.stdout, "  %s\n", code)
		}
	}
	return nil
}
