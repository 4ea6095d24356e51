package gedcom

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogedcom/gedcom/internal/testutil"
	"github.com/gogedcom/gedcom/internal/types"
	"github.com/gogedcom/gedcom/tree"
)

func TestParseMinimal(t *testing.T) {
	doc, err := Parse(strings.NewReader(testutil.Doc(
		"0 @I1@ INDI",
		"1 NAME Ada /Lovelace/",
		"1 SEX F",
	)))
	require.NoError(t, err)
	require.NotNil(t, doc.Header())
	assert.Equal(t, "5.5.1", doc.Header().Gedcom.Version)

	ind := doc.Individual("I1")
	require.NotNil(t, ind)
	assert.Equal(t, "Ada /Lovelace/", ind.Name())
	assert.Equal(t, SexFemale, ind.Sex)
}

func TestParseAbortsOnFirstFault(t *testing.T) {
	doc, err := Parse(strings.NewReader(testutil.Lines(
		"0 @I1@ INDI",
		"1 UNKNOWNTAG x",
		"0 TRLR",
	)))
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrUnknownField)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestParseWithAccumulate(t *testing.T) {
	src := testutil.Doc(
		"0 @I1@ INDI",
		"1 SEX Z",
		"0 @I2@ INDI",
		"1 NAME Kept",
	)

	doc, err := Parse(strings.NewReader(src), WithAccumulate(-1))
	assert.ErrorIs(t, err, ErrInvalidDocument)
	require.NotNil(t, doc)
	assert.Nil(t, doc.Individual("I1"))
	assert.NotNil(t, doc.Individual("I2"))
	testutil.RequireDiag(t, doc.Diagnostics(), types.DiagMalformedValue)

	doc, err = Parse(strings.NewReader(src), WithLenientEnums())
	require.NoError(t, err)
	assert.Equal(t, SexUnknown, doc.Individual("I1").Sex)
}

func TestParseWithErrorReporter(t *testing.T) {
	stop := errors.New("stop")
	var seen []int
	doc, err := Parse(strings.NewReader(testutil.Doc(
		"0 @I1@ INDI",
		"1 BOGUS",
		"0 @I2@ INDI",
		"1 BOGUS",
	)), WithErrorReporter(func(pe *tree.ParseError) error {
		seen = append(seen, pe.Line)
		if len(seen) == 2 {
			return stop
		}
		return nil
	}))
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{7, 9}, seen)
}

func TestParseWithLenientFields(t *testing.T) {
	doc, err := Parse(strings.NewReader(testutil.Doc(
		"0 @I1@ INDI",
		"1 ODDITY here",
	)), WithLenientFields(), WithStrictness(StrictnessStrict))
	require.NoError(t, err)
	ind := doc.Individual("I1")
	require.Len(t, ind.Custom, 1)
	assert.Equal(t, "ODDITY", ind.Custom[0].Tag)
	testutil.RequireDiag(t, doc.Diagnostics(), types.DiagUnknownFieldLenient)
}

func TestParseWarningsAndStrictness(t *testing.T) {
	src := testutil.Doc("0 @N1@ _LOC Somewhere")

	var warned []Diagnostic
	doc, err := Parse(strings.NewReader(src),
		WithDocumentName("places.ged"),
		WithWarningReporter(func(d Diagnostic) { warned = append(warned, d) }))
	require.NoError(t, err)
	require.Len(t, warned, 1)
	assert.Equal(t, types.DiagUnsupportedRecord, warned[0].Code)
	assert.Equal(t, "places.ged", warned[0].Document)
	assert.Equal(t, "places.ged", doc.Name())

	doc, err = Parse(strings.NewReader(src), WithStrictness(StrictnessPermissive))
	require.NoError(t, err)
	assert.Empty(t, doc.Diagnostics())

	doc, err = Parse(strings.NewReader(src), WithDiagnosticConfig(DiagnosticConfig{
		Level:  StrictnessNormal,
		Ignore: []string{"unsupported-*"},
	}))
	require.NoError(t, err)
	assert.Empty(t, doc.Diagnostics())
}

func TestParseWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	_, err := Parse(strings.NewReader(testutil.Doc("0 @I1@ INDI")), WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "component=parser")
	assert.Contains(t, out, "component=lexer")
	assert.Contains(t, out, "parse complete")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFixture(t, dir, "family.ged", testutil.Doc(
		"0 @I1@ INDI",
		"1 SEX Q",
	))

	_, err := ParseFile(path)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, path, pe.Document)
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = ParseFile(filepath.Join(dir, "missing.ged"))
	assert.Error(t, err)
}
