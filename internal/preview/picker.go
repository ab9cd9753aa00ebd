package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// fzf exit codes that mean the user chose nothing.
const (
	fzfExitNoMatch     = 1
	fzfExitInterrupted = 130
)

// LookPicker returns the path of the fzf binary.
func LookPicker() (string, error) {
	path, err := exec.LookPath("fzf")
	if err != nil {
		return "", ErrPickerUnavailable
	}
	return path, nil
}

// Picker runs fzf for a single selection.
type Picker struct {
	path           string
	previewCommand string
	prompt         string
	stderr         io.Writer
}

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithPreviewCommand sets the shell command fzf runs for the highlighted
// entry. fzf replaces {} with the quoted entry.
func WithPreviewCommand(cmd string) PickerOption {
	return func(p *Picker) {
		p.previewCommand = cmd
	}
}

// WithPrompt sets the prompt string.
func WithPrompt(prompt string) PickerOption {
	return func(p *Picker) {
		p.prompt = prompt
	}
}

// WithStderr sets where fzf error output goes. Defaults to os.Stderr.
// fzf draws its interface on the terminal, not on stderr.
func WithStderr(w io.Writer) PickerOption {
	return func(p *Picker) {
		p.stderr = w
	}
}

// NewPicker returns a Picker running the fzf binary at path.
func NewPicker(path string, opts ...PickerOption) *Picker {
	p := &Picker{
		path:   path,
		prompt: "image> ",
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Args returns the fzf command line arguments.
func (p *Picker) Args() []string {
	args := []string{"--no-multi", "--prompt", p.prompt}
	if p.previewCommand != "" {
		args = append(args, "--preview", p.previewCommand, "--preview-window", "right:60%")
	}
	return args
}

// Pick shows items and returns the selected one. Choosing nothing, by
// escape or interrupt or by an empty match, returns "" and no error.
func (p *Picker) Pick(ctx context.Context, items []string) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	cmd := exec.CommandContext(ctx, p.path, p.Args()...) //nolint:gosec // path comes from LookPath
	cmd.Stdin = strings.NewReader(strings.Join(items, "\n") + "\n")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = p.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case fzfExitNoMatch, fzfExitInterrupted:
				return "", nil
			}
		}
		return "", fmt.Errorf("fzf: %w", err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
