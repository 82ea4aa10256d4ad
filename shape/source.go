package shape

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// Source is a read-only view of packed raster bytes. It is either a borrowed
// in-memory buffer or a memory-mapped file; the renderer reads from it for
// the duration of a draw and never keeps it.
type Source struct {
	r      io.ReaderAt
	n      int
	closer io.Closer
}

// BytesSource borrows b. The caller keeps ownership and must not modify b
// while it is being drawn.
func BytesSource(b []byte) *Source {
	return &Source{r: bytes.NewReader(b), n: len(b)}
}

// OpenSource memory-maps the file at path. Close releases the mapping.
func OpenSource(path string) (*Source, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster source: %w", err)
	}
	return &Source{r: m, n: m.Len(), closer: m}, nil
}

// Len is the length of the source in bytes.
func (s *Source) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Reader returns a reader over the whole source.
func (s *Source) Reader() io.Reader {
	return io.NewSectionReader(s.r, 0, int64(s.n))
}

// Close releases a memory-mapped source. It is a no-op for borrowed buffers.
func (s *Source) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
