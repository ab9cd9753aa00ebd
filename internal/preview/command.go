package preview

import (
	"strconv"
	"strings"
	"time"
)

// CommandOptions are the settings forwarded to the preview subcommand.
type CommandOptions struct {
	// Scratch is the run's scratch directory.
	Scratch string
	// Timeout bounds the image fetch.
	Timeout time.Duration
	// Renderer is the renderer name.
	Renderer string
	// Proxy is forwarded when set.
	Proxy string
	// ConfigFile is forwarded when set so headers and user agent match.
	ConfigFile string
}

// Command builds the preview command fzf runs for the highlighted entry.
// exe is the imgscan binary. The pane size comes from the variables fzf
// exports to the command.
func Command(exe string, o CommandOptions) string {
	parts := []string{
		shellQuote(exe), "preview",
		"--scratch", shellQuote(o.Scratch),
		"--timeout", strconv.Itoa(int(o.Timeout / time.Second)),
		"--renderer", shellQuote(o.Renderer),
	}
	if o.Proxy != "" {
		parts = append(parts, "--proxy", shellQuote(o.Proxy))
	}
	if o.ConfigFile != "" {
		parts = append(parts, "--config", shellQuote(o.ConfigFile))
	}
	parts = append(parts, "--size", `"${FZF_PREVIEW_COLUMNS:-40}x${FZF_PREVIEW_LINES:-20}"`, "{}")
	return strings.Join(parts, " ")
}

// shellQuote wraps s in single quotes for a POSIX shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
