package report

import (
	"bufio"
	"io"

	"github.com/nao1215/imgscan/internal/model"
)

// TextWriter writes the result set one URL per line, UTF-8, nothing else.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs every accepted URL in result order.
func (w *TextWriter) Write(scan *model.Scan) (int, error) {
	bw := bufio.NewWriter(w.output)
	var total int
	for _, u := range scan.Results.URLs() {
		n, err := bw.WriteString(u + "\n")
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}
