package fcat

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Source is one input to a merge: a display name and a way to open it for
// reading. Construct sources with FileSource, ReaderSource, or Files; Merge
// opens them lazily, at most one at a time.
type Source struct {
	Name string
	open func() (io.ReadCloser, error)
}

func (s Source) openReader() (io.ReadCloser, error) {
	if s.open == nil {
		return nil, errors.New("source has no opener")
	}
	return s.open()
}

// FileSource returns a Source that opens the named file when the merge
// reaches it.
func FileSource(path string) Source {
	return Source{
		Name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// ReaderSource adapts an arbitrary reader into a Source. If r is not a
// Closer it is wrapped in a NopCloser, so closing is always safe.
func ReaderSource(name string, r io.Reader) Source {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return Source{
		Name: name,
		open: func() (io.ReadCloser, error) { return rc, nil },
	}
}

// Files returns file sources for the given paths, in order.
func Files(paths ...string) []Source {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, FileSource(path))
	}
	return sources
}

// SourceError reports which source a merge failed on.
type SourceError struct {
	Index int    // zero-based position in the merge
	Name  string // display name, usually the file path
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
