package gedcom

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogedcom/gedcom/internal/parser"
	"github.com/gogedcom/gedcom/internal/types"
	"github.com/gogedcom/gedcom/reporter"
	"github.com/gogedcom/gedcom/tree"
)

// ErrNoSources is returned when ParseFiles is called without a source.
var ErrNoSources = errors.New("no GEDCOM sources provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, records).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures Parse, ParseFile and ParseFiles.
type Option func(*parseConfig)

type parseConfig struct {
	logger        *slog.Logger
	name          string
	diagConfig    tree.DiagnosticConfig
	errs          reporter.ErrorReporter
	warnings      reporter.WarningReporter
	lenientEnums  bool
	lenientFields bool
	parallelism   int
}

func newParseConfig(opts []Option) parseConfig {
	cfg := parseConfig{
		diagConfig:  tree.DefaultConfig(),
		parallelism: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c *parseConfig) parserConfig(name string) parser.Config {
	return parser.Config{
		Name:          name,
		Diagnostics:   c.diagConfig,
		LenientEnums:  c.lenientEnums,
		LenientFields: c.lenientFields,
	}
}

func (c *parseConfig) reporter() reporter.Reporter {
	return reporter.NewReporter(c.errs, c.warnings)
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *parseConfig) { c.logger = logger }
}

// WithDocumentName labels the document and its diagnostics. ParseFile and
// ParseFiles use the file name.
func WithDocumentName(name string) Option {
	return func(c *parseConfig) { c.name = name }
}

// WithDiagnosticConfig sets which non-fatal diagnostics are reported.
func WithDiagnosticConfig(cfg tree.DiagnosticConfig) Option {
	return func(c *parseConfig) { c.diagConfig = cfg }
}

// WithStrictness selects a preset diagnostic configuration.
func WithStrictness(level tree.StrictnessLevel) Option {
	return func(c *parseConfig) { c.diagConfig = tree.ConfigForStrictness(level) }
}

// WithErrorReporter decides, per fault, whether parsing aborts. Without
// one, the first fault aborts.
func WithErrorReporter(rep reporter.ErrorReporter) Option {
	return func(c *parseConfig) { c.errs = rep }
}

// WithWarningReporter receives every reported non-fatal diagnostic as it
// happens.
func WithWarningReporter(rep reporter.WarningReporter) Option {
	return func(c *parseConfig) { c.warnings = rep }
}

// WithAccumulate swallows up to limit faults, discarding the faulted
// records, and aborts on the next. A negative limit never aborts.
func WithAccumulate(limit int) Option {
	return func(c *parseConfig) { c.errs = reporter.Accumulate(limit) }
}

// WithLenientEnums keeps unrecognized SEX and PEDI values with a warning
// instead of faulting.
func WithLenientEnums() Option {
	return func(c *parseConfig) { c.lenientEnums = true }
}

// WithLenientFields keeps unknown tags inside records as custom data with
// a warning instead of faulting.
func WithLenientFields() Option {
	return func(c *parseConfig) { c.lenientFields = true }
}

// WithParallelism bounds how many files ParseFiles parses at once.
// Values below one mean one.
func WithParallelism(n int) Option {
	return func(c *parseConfig) { c.parallelism = max(n, 1) }
}

// Parse reads one GEDCOM document from r.
//
// On the first fault Parse returns nil and the fault, a *tree.ParseError
// (see errors.Is with tree.ErrUnknownField and friends). With
// WithAccumulate or a custom error reporter that swallows faults, Parse
// returns the document without the faulted records together with
// tree.ErrInvalidDocument; the faults are in Document.Diagnostics.
//
// Example:
//
//	doc, err := gedcom.Parse(r, gedcom.WithLenientEnums())
//	if err != nil {
//	    return err
//	}
//	for _, ind := range doc.Individuals() {
//	    fmt.Println(ind.Xref, ind.Name())
//	}
func Parse(r io.Reader, opts ...Option) (*tree.Document, error) {
	cfg := newParseConfig(opts)
	return parser.New(r, cfg.logger, cfg.parserConfig(cfg.name)).Parse(cfg.reporter())
}

// ParseFile opens and parses the document at path.
func ParseFile(path string, opts ...Option) (*tree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := newParseConfig(opts)
	if cfg.name == "" {
		cfg.name = path
	}
	return parser.New(f, cfg.logger, cfg.parserConfig(cfg.name)).Parse(cfg.reporter())
}

// logEnabled returns true if logging is enabled at the given level.
func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
