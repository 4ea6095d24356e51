package gedcom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gogedcom/gedcom/internal/parser"
	"github.com/gogedcom/gedcom/reporter"
	"github.com/gogedcom/gedcom/tree"
)

// ParseFiles parses every document src lists, in parallel. The returned
// slice is in listing order.
//
// All files share one reporter, so WithAccumulate bounds the number of
// faults across the whole set. When the reporter aborts, ParseFiles
// returns nil and that error. When faults were swallowed, it returns the
// documents together with tree.ErrInvalidDocument. Cancelling ctx stops
// files that have not started yet.
//
// Example:
//
//	src, err := gedcom.Glob("archive/**/*.ged")
//	if err != nil {
//	    return err
//	}
//	docs, err := gedcom.ParseFiles(ctx, src, gedcom.WithAccumulate(-1))
func ParseFiles(ctx context.Context, src Source, opts ...Option) ([]*tree.Document, error) {
	if src == nil {
		return nil, ErrNoSources
	}
	cfg := newParseConfig(opts)
	logger := cfg.logger

	names, err := src.ListFiles()
	if err != nil {
		return nil, err
	}

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "parallel parsing",
			slog.Int("files", len(names)),
			slog.Int("parallelism", cfg.parallelism))
	}

	handler := reporter.NewHandler(cfg.reporter())
	docs := make([]*tree.Document, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := parseOne(src, name, logger, cfg.parserConfig(name), handler)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "parallel parsing complete",
			slog.Int("documents", len(docs)))
	}

	if err := handler.Error(); err != nil {
		return docs, err
	}
	return docs, nil
}

// parseOne parses a single listed file. Swallowed faults are not an error
// here; ParseFiles reports them once for the whole set.
func parseOne(src Source, name string, logger *slog.Logger, cfg parser.Config, h *reporter.Handler) (*tree.Document, error) {
	rc, err := src.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	if logger != nil {
		logger = logger.With(slog.String("file", name))
	}
	doc, err := parser.New(rc, logger, cfg).ParseWith(h)
	if errors.Is(err, tree.ErrInvalidDocument) {
		return doc, nil
	}
	var pe *tree.ParseError
	if err != nil && !errors.As(err, &pe) {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, err
}
