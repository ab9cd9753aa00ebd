package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/imgscan/internal/model"
)

// MarkdownWriter outputs the scan as a Markdown document.
type MarkdownWriter struct {
	baseWriter
	version string
	title   cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, version string) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		version:    version,
		title:      cases.Title(language.English),
	}
}

// Write outputs the scan in Markdown format.
func (w *MarkdownWriter) Write(scan *model.Scan) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, scan)
	w.writeImages(md, scan)
	w.writeSummary(md, scan)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, scan *model.Scan) {
	md.H1("imgscan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Page", "`" + scan.PageURL + "`"},
			{"Scan Date", scan.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", scan.Duration().Round(time.Millisecond).String()},
			{"Images", strconv.Itoa(scan.Results.Len())},
		},
	})
	md.PlainText("")
}

// writeImages writes the table of accepted images.
func (w *MarkdownWriter) writeImages(md *markdown.Markdown, scan *model.Scan) {
	md.H2("Images")
	md.PlainText("")

	images := scan.Results.Images()
	if len(images) == 0 {
		md.Note("No images were found on this page.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(images))
	for i, img := range images {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			img.URL,
			w.title.String(img.Classification.String()),
			img.Detail,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "URL", "Classified By", "Type"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSummary writes candidate counters and their distribution.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, scan *model.Scan) {
	md.H2("Summary")
	md.PlainText("")

	s := scan.Stats
	counters := []struct {
		label string
		value int
	}{
		{"accepted", s.Accepted},
		{"duplicate", s.Duplicates},
		{"unresolvable", s.Unresolvable},
		{"rejected", s.Rejected},
		{"invalid", s.Invalid},
	}

	rows := [][]string{
		{w.title.String("raw candidates"), strconv.Itoa(s.Raw)},
		{w.title.String("unique candidates"), strconv.Itoa(s.Unique)},
	}
	for _, c := range counters {
		rows = append(rows, []string{w.title.String(c.label), strconv.Itoa(c.value)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Counter", "Value"},
		Rows:   rows,
	})

	if s.Unique == 0 {
		md.PlainText("")
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Candidate Outcomes"),
		piechart.WithShowData(true),
	)
	for _, c := range counters {
		if c.value > 0 {
			chart.LabelAndIntValue(w.title.String(c.label), uint64(c.value)) //nolint:gosec // counters are never negative
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [imgscan %s](https://github.com/nao1215/imgscan)*", w.version)
}
