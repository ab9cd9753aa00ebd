package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/nao1215/imgscan/internal/model"
)

// JSONWriter outputs the scan as a JSON document.
type JSONWriter struct {
	baseWriter

	version string

	// indent enables pretty-printed JSON output.
	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
		version:    version,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	// Version is the imgscan version that generated this report.
	Version string `json:"version"`

	// Page is the scanned page URL.
	Page string `json:"page"`

	// ScannedAt is when the scan started.
	ScannedAt time.Time `json:"scanned_at"`

	// DurationMS is the scan duration in milliseconds.
	DurationMS int64 `json:"duration_ms"`

	// Stats summarizes candidate outcomes.
	Stats model.Stats `json:"stats"`

	// Images are the accepted images in result order.
	Images []model.Image `json:"images"`
}

// NewJSONReport builds the JSON document for scan.
func NewJSONReport(scan *model.Scan, version string) *JSONReport {
	return &JSONReport{
		Version:    version,
		Page:       scan.PageURL,
		ScannedAt:  scan.StartedAt,
		DurationMS: scan.Duration().Milliseconds(),
		Stats:      scan.Stats,
		Images:     scan.Results.Images(),
	}
}

// Write outputs the scan in JSON format.
func (w *JSONWriter) Write(scan *model.Scan) (int, error) {
	return w.writeJSON(NewJSONReport(scan, w.version))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
