// Package reporter decides what happens when the parser hits a fault:
// abort, or discard the faulted record and keep going.
package reporter

import (
	"sync"

	"github.com/gogedcom/gedcom/tree"
)

// ErrorReporter is responsible for reporting the given fault. If the reporter
// returns a non-nil error, parsing aborts with that error. If the reporter
// returns nil, the parser discards the faulted record, resynchronizes at the
// next level 0 line and continues.
type ErrorReporter func(err *tree.ParseError) error

// WarningReporter receives non-fatal diagnostics such as skipped records.
type WarningReporter func(d tree.Diagnostic)

// Reporter combines error and warning reporting.
type Reporter interface {
	Error(*tree.ParseError) error
	Warning(tree.Diagnostic)
}

// NewReporter builds a Reporter from the two callbacks. A nil ErrorReporter
// aborts on the first fault; a nil WarningReporter drops warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err *tree.ParseError) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(d tree.Diagnostic) {
	if r.warnings != nil {
		r.warnings(d)
	}
}

// Accumulate returns an ErrorReporter that swallows up to limit faults and
// returns the next one. A negative limit never aborts.
func Accumulate(limit int) ErrorReporter {
	var mu sync.Mutex
	var n int
	return func(err *tree.ParseError) error {
		mu.Lock()
		defer mu.Unlock()
		n++
		if limit >= 0 && n > limit {
			return err
		}
		return nil
	}
}

// Handler tracks the outcome of reporting for a single parse (or a set of
// parallel parses sharing one Reporter). Calls are serialized.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler wraps rep. A nil rep aborts on the first fault.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleError passes a fault to the reporter. A non-nil result means the
// caller must stop; once a Handler has aborted, every later call returns
// the same error.
func (h *Handler) HandleError(err *tree.ParseError) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	h.err = h.reporter.Error(err)
	return h.err
}

// HandleWarning passes a non-fatal diagnostic to the reporter.
func (h *Handler) HandleWarning(d tree.Diagnostic) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reporter.Warning(d)
}

// Error returns the abort error, tree.ErrInvalidDocument if faults were
// reported but swallowed, or nil.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return tree.ErrInvalidDocument
	}
	return h.err
}

// ReporterError returns the error that aborted reporting, if any.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
