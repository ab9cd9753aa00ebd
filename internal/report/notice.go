package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Notifier prints user-facing notices. Colors are dropped automatically
// when the process output is not a terminal or NO_COLOR is set.
type Notifier struct {
	out     io.Writer
	warn    *color.Color
	info    *color.Color
	success *color.Color
}

// NewNotifier returns a Notifier writing to out, usually standard error.
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{
		out:     out,
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
	}
}

// Writer returns the writer notices go to.
func (n *Notifier) Writer() io.Writer {
	return n.out
}

// Warnf prints a warning.
func (n *Notifier) Warnf(format string, args ...any) {
	n.print(n.warn, "warning: ", format, args...)
}

// Infof prints an informational notice.
func (n *Notifier) Infof(format string, args ...any) {
	n.print(n.info, "", format, args...)
}

// Successf prints a completion notice.
func (n *Notifier) Successf(format string, args ...any) {
	n.print(n.success, "", format, args...)
}

func (n *Notifier) print(c *color.Color, prefix, format string, args ...any) {
	_, _ = c.Fprintln(n.out, prefix+fmt.Sprintf(format, args...))
}
