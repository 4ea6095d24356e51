// Command gedcom parses, checks and dumps GEDCOM genealogy files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogedcom/gedcom"
	"github.com/gogedcom/gedcom/cmd/internal/cliutil"
	"github.com/gogedcom/gedcom/internal/config"
)

// Exit codes.
const (
	exitOK     = 0 // success
	exitError  = 1 // user error, processing failure or invalid document
	exitFailAt = 2 // lint found diagnostics at or above fail_at
)

// exitCodeError ends the command with a specific exit code. Its output has
// already been written.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type cli struct {
	stdout     io.Writer
	stderr     io.Writer
	verbose    int
	configPath string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	var ec *exitCodeError
	if errors.As(err, &ec) {
		return ec.code
	}
	cliutil.PrintError(stderr, "%v", err)
	return exitError
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "gedcom",
		Short: "GEDCOM parser and checker",
		Long: `gedcom reads GEDCOM 5.5.1 genealogy files and reports on them.

Arguments name files, directories (searched recursively for .ged and
.gedcom files) or doublestar glob patterns such as "archive/**/*.ged".

Configuration is read from --config, or from the file named by
$GEDCOM_CONFIG. TOML and YAML are supported.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return c.setup() },
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.CountVarP(&c.verbose, "verbose", "v", "debug logging (-vv for trace)")
	flags.StringVar(&c.configPath, "config", "", "config file (.toml, .yaml or .yml)")

	root.AddCommand(
		c.parseCmd(),
		c.lintCmd(),
		c.dumpCmd(),
		c.listCmd(),
		c.versionCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (c *cli) setup() error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.Load(c.configPath)
	} else {
		c.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level, err := c.cfg.LogLevel()
	if err != nil {
		return err
	}
	switch {
	case c.verbose >= 2:
		level = gedcom.LevelTrace
	case c.verbose == 1:
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{
		Level: level,
	}))
	return nil
}

// options returns pre followed by the configured options and the logger.
// Later options win, so pre only supplies defaults.
func (c *cli) options(pre ...gedcom.Option) ([]gedcom.Option, error) {
	cfgOpts, err := c.cfg.Options()
	if err != nil {
		return nil, err
	}
	opts := append(pre, cfgOpts...)
	return append(opts, gedcom.WithLogger(c.logger)), nil
}

// sourceFor turns command arguments into one source, preserving argument
// order.
func sourceFor(args []string) (gedcom.Source, error) {
	sources := make([]gedcom.Source, 0, len(args))
	for _, arg := range args {
		if strings.ContainsAny(arg, "*?[{") {
			src, err := gedcom.Glob(arg)
			if err != nil {
				return nil, fmt.Errorf("pattern %q: %w", arg, err)
			}
			sources = append(sources, src)
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			src, err := gedcom.Dir(arg)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
		} else {
			sources = append(sources, gedcom.File(arg))
		}
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	return gedcom.Multi(sources...), nil
}

// parseArgs parses every document the arguments name.
func (c *cli) parseArgs(cmd *cobra.Command, args []string, opts []gedcom.Option) ([]*gedcom.Document, error) {
	src, err := sourceFor(args)
	if err != nil {
		return nil, err
	}
	docs, err := gedcom.ParseFiles(cmd.Context(), src, opts...)
	if err == nil && len(docs) == 0 {
		return nil, fmt.Errorf("no GEDCOM files found in %s", strings.Join(args, ", "))
	}
	return docs, err
}
