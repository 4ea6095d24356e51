package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gogedcom/gedcom/internal/config"
	"github.com/gogedcom/gedcom/internal/testutil"
	"github.com/gogedcom/gedcom/internal/types"
)

var familyDoc = testutil.Doc(
	"0 @I1@ INDI",
	"1 NAME John /Smith/",
	"1 SEX M",
	"1 BIRT",
	"2 DATE 1 JAN 1900",
	"1 FAMS @F1@",
	"0 @I2@ INDI",
	"1 NAME 李 /明/",
	"1 SEX F",
	"1 FAMC @F1@",
	"0 @F1@ FAM",
	"1 HUSB @I1@",
	"1 CHIL @I2@",
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func fixture(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFixture(t, t.TempDir(), "family.ged", content)
}

func TestVersion(t *testing.T) {
	r := execute(t, "version")
	assert.Equal(t, exitOK, r.code)
	assert.True(t, strings.HasPrefix(r.stdout, "gedcom "), r.stdout)
}

func TestUnknownCommand(t *testing.T) {
	r := execute(t, "frobnicate")
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "error: unknown command")
}

func TestParseSummary(t *testing.T) {
	path := fixture(t, familyDoc)

	r := execute(t, "parse", path)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout,
		"family.ged: 2 individuals, 1 families, 0 sources, 0 repositories, 0 submitters, 2 generations")
}

func TestParseJSON(t *testing.T) {
	path := fixture(t, familyDoc)

	r := execute(t, "parse", "--json", path)
	require.Equal(t, exitOK, r.code, r.stderr)

	var got []parseResult
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	require.Len(t, got, 1)
	assert.Equal(t, path, got[0].Document)
	assert.Equal(t, 2, got[0].Summary.Individuals)
	assert.Equal(t, 2, got[0].Summary.Generations)
}

func TestParseFault(t *testing.T) {
	path := fixture(t, testutil.Doc(
		"0 @I1@ INDI",
		"1 SEX Z",
	))

	r := execute(t, "parse", path)
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "family.ged:7: malformed value")
	assert.Empty(t, r.stdout)
}

func TestParseDirectoryAndGlob(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFixture(t, dir, "a.ged", familyDoc)
	testutil.WriteFixture(t, dir, "sub/b.ged", familyDoc)
	testutil.WriteFixture(t, dir, "notes.txt", "not gedcom")

	r := execute(t, "parse", dir)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, 2, strings.Count(r.stdout, "2 individuals"))

	r = execute(t, "parse", filepath.Join(dir, "**", "*.ged"))
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, 2, strings.Count(r.stdout, "2 individuals"))
}

func TestParseNoFiles(t *testing.T) {
	r := execute(t, "parse", t.TempDir())
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "no GEDCOM files found")
}

func TestParseMissingFile(t *testing.T) {
	r := execute(t, "parse", filepath.Join(t.TempDir(), "missing.ged"))
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "missing.ged")
}

func TestConfigFile(t *testing.T) {
	path := fixture(t, testutil.Doc(
		"0 @I1@ INDI",
		"1 SEX Z",
	))
	cfgPath := testutil.WriteFixture(t, t.TempDir(), "gedcom.toml", testutil.Lines(
		"[parse]",
		"lenient_enums = true",
	))

	r := execute(t, "--config", cfgPath, "parse", path)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "1 individuals")
}

func TestConfigFromEnv(t *testing.T) {
	cfgPath := testutil.WriteFixture(t, t.TempDir(), "gedcom.yaml", testutil.Lines(
		"diagnostics:",
		"  strictness: bogus",
	))
	path := fixture(t, familyDoc)

	var stdout, stderr bytes.Buffer
	t.Setenv(config.EnvVar, cfgPath)
	code := run([]string{"parse", path}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), `unknown strictness "bogus"`)
}

func TestVerboseLogging(t *testing.T) {
	path := fixture(t, familyDoc)

	r := execute(t, "-v", "parse", path)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stderr, "parallel parsing")
}

func TestLintClean(t *testing.T) {
	path := fixture(t, familyDoc)

	r := execute(t, "lint", path)
	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "No issues found in 1 documents\n", r.stdout)
}

func TestLintFailAt(t *testing.T) {
	path := fixture(t, testutil.Doc(
		"0 @I1@ INDI",
		"1 FAMC @F9@",
	))

	r := execute(t, "lint", path)
	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "[dangling-xref] INDI @I1@ references missing FAM @F9@")
	assert.Contains(t, r.stdout, "1 issues in 1 documents (error=1)")

	r = execute(t, "lint", "--fail-at", "error", path)
	assert.Equal(t, exitFailAt, r.code)

	r = execute(t, "lint", "--fail-at", "error", "--ignore", "dangling-*", path)
	assert.Equal(t, exitOK, r.code)

	r = execute(t, "lint", "--fail-at", "loud", path)
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "unknown severity: loud")
}

func TestLintReportsFaults(t *testing.T) {
	path := fixture(t, testutil.Doc(
		"0 @I1@ INDI",
		"1 SEX Z",
		"0 @I2@ INDI",
		"1 SEX Q",
	))

	r := execute(t, "lint", "--format", "json", path)
	assert.Equal(t, exitFailAt, r.code, r.stderr)

	var got lintResult
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	assert.Equal(t, 1, got.Documents)
	assert.Equal(t, 2, got.Summary.Total)
	assert.Equal(t, 2, got.Summary.BySeverity["fatal"])
	assert.Equal(t, 2, got.Summary.ByCode[types.DiagMalformedValue])
}

func TestLintQuiet(t *testing.T) {
	path := fixture(t, testutil.Doc(
		"0 @I1@ INDI",
		"1 SEX Z",
	))

	r := execute(t, "lint", "--quiet", path)
	assert.Equal(t, exitFailAt, r.code)
	assert.Empty(t, r.stdout)
}

func TestLintCodes(t *testing.T) {
	r := execute(t, "lint", "--codes")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "lint:\n  dangling-xref\n")
	assert.Contains(t, r.stdout, "parser:\n  unexpected-token\n")
}

func TestLintNoArgs(t *testing.T) {
	r := execute(t, "lint")
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "no documents specified")
}

func TestDumpJSON(t *testing.T) {
	path := fixture(t, familyDoc)

	r := execute(t, "dump", path)
	require.Equal(t, exitOK, r.code, r.stderr)

	var got struct {
		Name        string `json:"name"`
		Individuals []struct {
			Xref string `json:"xref"`
			Sex  string `json:"sex"`
		} `json:"individuals"`
		Families []struct {
			Children []string `json:"children"`
		} `json:"families"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	assert.Equal(t, path, got.Name)
	require.Len(t, got.Individuals, 2)
	assert.Equal(t, "I1", got.Individuals[0].Xref)
	assert.Equal(t, "male", got.Individuals[0].Sex)
	require.Len(t, got.Families, 1)
	assert.Equal(t, []string{"I2"}, got.Families[0].Children)
}

func TestDumpYAMLToFile(t *testing.T) {
	path := fixture(t, familyDoc)
	out := filepath.Join(t.TempDir(), "family.yaml")

	r := execute(t, "dump", "--format", "yaml", "-o", out, path)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Empty(t, r.stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, path, got["name"])
	header, ok := got["header"].(map[string]any)
	require.True(t, ok, "header missing")
	assert.Equal(t, map[string]any{"value": "UTF-8"}, header["encoding"])
}

func TestDumpBadFormat(t *testing.T) {
	r := execute(t, "dump", "--format", "xml", fixture(t, familyDoc))
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "unknown format: xml")
}

func TestList(t *testing.T) {
	path := fixture(t, familyDoc)

	r := execute(t, "list", "--sort", "name", path)
	require.Equal(t, exitOK, r.code, r.stderr)

	want := "XREF  NAME        SEX     BIRTH       DEATH\n" +
		"I1    John Smith  male    1 JAN 1900  \n" +
		"I2    李 明       female              \n"
	assert.Equal(t, want, r.stdout)
}

func TestListMatch(t *testing.T) {
	path := fixture(t, familyDoc)

	r := execute(t, "list", "--match", "SMITH", path)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "John Smith")
	assert.NotContains(t, r.stdout, "I2")
}
