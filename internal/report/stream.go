package report

import (
	"fmt"
	"io"

	"github.com/nao1215/imgscan/internal/model"
)

// Stream prints each accepted URL on its own line as it is accepted.
type Stream struct {
	out   io.Writer
	count int
	err   error
}

// NewStream returns a Stream writing to out.
func NewStream(out io.Writer) *Stream {
	return &Stream{out: out}
}

// Accept prints img.URL. After the first write error further output is
// dropped; the error is available from Err.
func (s *Stream) Accept(img model.Image) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintln(s.out, img.URL); err != nil {
		s.err = err
		return
	}
	s.count++
}

// Count returns how many URLs were printed.
func (s *Stream) Count() int {
	return s.count
}

// Err returns the first write error.
func (s *Stream) Err() error {
	return s.err
}
