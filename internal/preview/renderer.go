package preview

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Renderer converts image bytes into a textual approximation that fits in
// size and writes it to w.
type Renderer interface {
	Render(ctx context.Context, data []byte, size Size, w io.Writer) error
	Name() string
}

// Renderer names accepted by NewRenderer.
const (
	RendererChafa  = "chafa"
	RendererBlocks = "blocks"
)

// NewRenderer returns the renderer called name. The chafa renderer needs
// the chafa binary in PATH.
func NewRenderer(name string) (Renderer, error) {
	switch name {
	case RendererChafa:
		path, err := exec.LookPath("chafa")
		if err != nil {
			return nil, fmt.Errorf("%w: chafa not found in PATH", ErrRendererUnavailable)
		}
		return NewChafaRenderer(path), nil
	case RendererBlocks:
		return NewBlockRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: unknown renderer %q", ErrRendererUnavailable, name)
	}
}

// ChafaRenderer pipes image bytes through the chafa binary.
type ChafaRenderer struct {
	path string
}

// NewChafaRenderer returns a renderer running the chafa binary at path.
func NewChafaRenderer(path string) *ChafaRenderer {
	return &ChafaRenderer{path: path}
}

// Name returns "chafa".
func (r *ChafaRenderer) Name() string {
	return RendererChafa
}

// Render runs "chafa --size WxH -" with data on standard input.
func (r *ChafaRenderer) Render(ctx context.Context, data []byte, size Size, w io.Writer) error {
	cmd := exec.CommandContext(ctx, r.path, "--size", size.String(), "-") //nolint:gosec // path comes from LookPath
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = w
	var stderr limitedBuffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := stderr.String(); msg != "" {
			return fmt.Errorf("chafa: %w: %s", err, msg)
		}
		return fmt.Errorf("chafa: %w", err)
	}
	return nil
}

// limitedBuffer keeps the first stderrLimit bytes written to it.
type limitedBuffer struct {
	buf bytes.Buffer
}

const stderrLimit = 512

func (b *limitedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if room := stderrLimit - b.buf.Len(); room > 0 {
		if len(p) > room {
			p = p[:room]
		}
		b.buf.Write(p)
	}
	return n, nil
}

func (b *limitedBuffer) String() string {
	return strings.TrimSpace(b.buf.String())
}
