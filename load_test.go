package gedcom

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogedcom/gedcom/internal/testutil"
	"github.com/gogedcom/gedcom/tree"
)

func manyDocs(n int) fstest.MapFS {
	fsys := fstest.MapFS{}
	for i := range n {
		fsys[fmt.Sprintf("doc%02d.ged", i)] = &fstest.MapFile{Data: []byte(testutil.Doc(
			fmt.Sprintf("0 @I%d@ INDI", i),
			fmt.Sprintf("1 NAME Person /%d/", i),
		))}
	}
	return fsys
}

func TestParseFilesNoSource(t *testing.T) {
	_, err := ParseFiles(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestParseFilesOrder(t *testing.T) {
	src := FS("mem", manyDocs(12), "*.ged")

	docs, err := ParseFiles(context.Background(), src, WithParallelism(4))
	require.NoError(t, err)
	require.Len(t, docs, 12)
	for i, doc := range docs {
		assert.Equal(t, fmt.Sprintf("mem:doc%02d.ged", i), doc.Name())
		assert.NotNil(t, doc.Individual(fmt.Sprintf("I%d", i)))
	}
}

func TestParseFilesFromDisk(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFixture(t, dir, "a.ged", testutil.Doc("0 @I1@ INDI"))
	testutil.WriteFixture(t, dir, "b/b.ged", testutil.Doc("0 @F1@ FAM"))

	src, err := Glob(filepath.Join(dir, "**", "*.ged"))
	require.NoError(t, err)
	docs, err := ParseFiles(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.NotNil(t, docs[0].Individual("I1"))
	assert.NotNil(t, docs[1].Family("F1"))
}

func TestParseFilesSharedAccumulate(t *testing.T) {
	fsys := manyDocs(3)
	fsys["bad1.ged"] = &fstest.MapFile{Data: []byte(testutil.Doc("0 @X1@ INDI", "1 BOGUS"))}
	fsys["bad2.ged"] = &fstest.MapFile{Data: []byte(testutil.Doc("0 @X2@ INDI", "1 BOGUS"))}
	src := FS("mem", fsys, "*.ged")

	docs, err := ParseFiles(context.Background(), src, WithAccumulate(-1))
	assert.ErrorIs(t, err, tree.ErrInvalidDocument)
	require.Len(t, docs, 5)
	for _, doc := range docs {
		require.NotNil(t, doc)
	}

	// Two faults across the set exceed a shared limit of one.
	docs, err = ParseFiles(context.Background(), src, WithAccumulate(1), WithParallelism(1))
	assert.Nil(t, docs)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseFilesOpenError(t *testing.T) {
	src := File(filepath.Join(t.TempDir(), "missing.ged"))
	_, err := ParseFiles(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.ged")
}

func TestParseFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseFiles(ctx, FS("mem", manyDocs(3), "*.ged"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFilesWarningsShared(t *testing.T) {
	fsys := fstest.MapFS{}
	for i := range 5 {
		fsys[fmt.Sprintf("d%d.ged", i)] = &fstest.MapFile{Data: []byte(testutil.Doc("0 @O1@ OBJE"))}
	}
	var warnings atomic.Int32
	_, err := ParseFiles(context.Background(), FS("mem", fsys, "*.ged"),
		WithWarningReporter(func(Diagnostic) { warnings.Add(1) }))
	require.NoError(t, err)
	assert.Equal(t, int32(5), warnings.Load())
}

func TestParseFilesListError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ParseFiles(context.Background(), failingSource{boom})
	assert.ErrorIs(t, err, boom)
}

type failingSource struct{ err error }

func (s failingSource) ListFiles() ([]string, error) { return nil, s.err }

func (s failingSource) Open(string) (io.ReadCloser, error) { return nil, s.err }
