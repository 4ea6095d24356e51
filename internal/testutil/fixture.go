package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Lines joins GEDCOM lines, terminating each with LF.
func Lines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Header is the smallest well-formed header record.
var Header = []string{
	"0 HEAD",
	"1 GEDC",
	"2 VERS 5.5.1",
	"2 FORM LINEAGE-LINKED",
	"1 CHAR UTF-8",
}

// Doc wraps record lines in Header and a trailer.
func Doc(records ...string) string {
	lines := make([]string, 0, len(Header)+len(records)+1)
	lines = append(lines, Header...)
	lines = append(lines, records...)
	lines = append(lines, "0 TRLR")
	return Lines(lines...)
}

// WriteFixture writes content to name inside dir, creating parent
// directories, and returns the full path.
func WriteFixture(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create fixture dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
