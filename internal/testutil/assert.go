// Package testutil provides GEDCOM fixtures and diagnostic assertions for
// tests.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogedcom/gedcom/tree"
)

// DiagCodes returns the code of each diagnostic, in order.
func DiagCodes(diags []tree.Diagnostic) []string {
	codes := make([]string, len(diags))
	for i, d := range diags {
		codes[i] = d.Code
	}
	return codes
}

// FindDiag returns the first diagnostic with the given code.
func FindDiag(diags []tree.Diagnostic, code string) (tree.Diagnostic, bool) {
	for _, d := range diags {
		if d.Code == code {
			return d, true
		}
	}
	return tree.Diagnostic{}, false
}

// RequireDiag fails the test unless diags holds code, and returns the
// first match.
func RequireDiag(t testing.TB, diags []tree.Diagnostic, code string, msgAndArgs ...any) tree.Diagnostic {
	t.Helper()
	d, ok := FindDiag(diags, code)
	if !ok {
		t.Fatalf("%s: no %s diagnostic in %v", formatMsg(msgAndArgs), code, DiagCodes(diags))
	}
	return d
}

// NoDiag fails the test if diags holds code.
func NoDiag(t testing.TB, diags []tree.Diagnostic, code string, msgAndArgs ...any) {
	t.Helper()
	if d, ok := FindDiag(diags, code); ok {
		t.Fatalf("%s: unexpected diagnostic %s", formatMsg(msgAndArgs), d)
	}
}

// RequireFault fails the test unless err is a *tree.ParseError of the
// given kind at line.
func RequireFault(t testing.TB, err error, kind error, line int) *tree.ParseError {
	t.Helper()
	var pe *tree.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *tree.ParseError, got %T: %v", err, err)
		return nil
	}
	if !errors.Is(pe, kind) {
		t.Fatalf("fault kind: got %v, want %v (%s)", pe.Kind(), kind, pe)
	}
	if pe.Line != line {
		t.Fatalf("fault line: got %d, want %d (%s)", pe.Line, line, pe)
	}
	return pe
}

func formatMsg(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "assertion failed"
	}
	msg, ok := msgAndArgs[0].(string)
	if !ok {
		return "assertion failed"
	}
	if len(msgAndArgs) == 1 {
		return msg
	}
	return fmt.Sprintf(msg, msgAndArgs[1:]...)
}
