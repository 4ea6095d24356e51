package gedcom

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions are the file extensions Dir recognizes as GEDCOM
// documents. Matching is case-insensitive.
var DefaultExtensions = []string{".ged", ".gedcom"}

// Source lists GEDCOM documents and opens them by name.
type Source interface {
	// ListFiles returns the names of all documents this source provides,
	// in a stable order. The names label documents and diagnostics.
	ListFiles() ([]string, error)

	// Open opens a document returned by ListFiles, or fails with
	// fs.ErrNotExist.
	Open(name string) (io.ReadCloser, error)
}

// SourceOption configures a source.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	extensions []string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		extensions: DefaultExtensions,
	}
}

// WithExtensions sets the file extensions to recognize for this source.
func WithExtensions(exts ...string) SourceOption {
	return func(c *sourceConfig) {
		c.extensions = exts
	}
}

// --- File Source (explicit paths) ---

type fileSource struct {
	paths []string
}

// File creates a Source over explicit paths. The files are not checked
// until they are opened.
func File(paths ...string) Source {
	return &fileSource{paths: slices.Clone(paths)}
}

func (s *fileSource) ListFiles() ([]string, error) {
	return slices.Clone(s.paths), nil
}

func (s *fileSource) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// --- Glob Source (doublestar pattern on the OS filesystem) ---

type globSource struct {
	pattern string
}

// Glob creates a Source over every file matching pattern. Patterns use
// doublestar syntax, so "tree/**/*.ged" matches at any depth.
func Glob(pattern string) (Source, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	return &globSource{pattern: pattern}, nil
}

func (s *globSource) ListFiles() ([]string, error) {
	matches, err := doublestar.FilepathGlob(s.pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	slices.Sort(matches)
	return matches, nil
}

func (s *globSource) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// --- Dir Source (recursive directory walk) ---

type dirSource struct {
	root   string
	config sourceConfig
}

// Dir creates a Source over every file below root whose extension is in
// DefaultExtensions (or WithExtensions). The tree is walked on each
// ListFiles call.
func Dir(root string, opts ...SourceOption) (Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: root, Err: os.ErrInvalid}
	}
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &dirSource{root: root, config: cfg}, nil
}

// MustDir is like Dir but panics on error.
func MustDir(root string, opts ...SourceOption) Source {
	src, err := Dir(root, opts...)
	if err != nil {
		panic(err)
	}
	return src
}

func (s *dirSource) ListFiles() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)
	var files []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && hasValidExtension(path, extSet) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *dirSource) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// --- FS Source (for embed.FS, testing, http filesystems) ---

type fsSource struct {
	name    string
	fsys    fs.FS
	pattern string
}

// FS creates a Source over the files of fsys matching a doublestar
// pattern (e.g. an embed.FS and "testdata/*.ged"). The name prefixes the
// listed paths for reporting.
func FS(name string, fsys fs.FS, pattern string) Source {
	return &fsSource{name: name, fsys: fsys, pattern: pattern}
}

func (s *fsSource) ListFiles() ([]string, error) {
	matches, err := doublestar.Glob(s.fsys, s.pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	slices.Sort(matches)
	for i, m := range matches {
		matches[i] = s.name + ":" + m
	}
	return matches, nil
}

func (s *fsSource) Open(name string) (io.ReadCloser, error) {
	path, ok := strings.CutPrefix(name, s.name+":")
	if !ok {
		return nil, fs.ErrNotExist
	}
	return s.fsys.Open(path)
}

// --- Multi Source (combines multiple sources) ---

type multiSource struct {
	sources []Source
}

// Multi combines multiple sources into one. ListFiles concatenates their
// listings; Open tries each source in order, returning the first match.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) ListFiles() ([]string, error) {
	var files []string
	for _, src := range s.sources {
		f, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, f...)
	}
	return files, nil
}

func (s *multiSource) Open(name string) (io.ReadCloser, error) {
	for _, src := range s.sources {
		r, err := src.Open(name)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fs.ErrNotExist
}

// --- Helpers ---

func makeExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

func hasValidExtension(path string, extSet map[string]struct{}) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := extSet[ext]
	return ok
}
