package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/nao1215/imgscan/internal/config"
	"github.com/nao1215/imgscan/internal/model"
)

// ErrUnknownFormat is returned by NewWriter for an unsupported format.
var ErrUnknownFormat = errors.New("unknown report format")

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the scan to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(scan *model.Scan) (int, error)
}

// NewWriter returns the Writer for format. version is embedded in the
// markdown footer and the JSON document.
func NewWriter(format string, output io.Writer, version string) (Writer, error) {
	switch format {
	case config.FormatText, "":
		return NewTextWriter(output), nil
	case config.FormatMarkdown:
		return NewMarkdownWriter(output, version), nil
	case config.FormatJSON:
		return NewJSONWriter(output, version, WithPrettyPrint()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
