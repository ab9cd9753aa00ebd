package preview

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/imgscan/internal/scratch"
)

// BytesFetcher retrieves image bytes.
type BytesFetcher interface {
	FetchBytes(ctx context.Context, rawURL string) ([]byte, string, error)
}

// Previewer renders one URL: thumbnail first, then a description.
type Previewer struct {
	fetcher  BytesFetcher
	renderer Renderer
	cache    *scratch.Dir
	logger   *slog.Logger
}

// PreviewerOption configures a Previewer.
type PreviewerOption func(*Previewer)

// WithCache stores fetched bytes in dir and reuses them.
func WithCache(dir *scratch.Dir) PreviewerOption {
	return func(p *Previewer) {
		p.cache = dir
	}
}

// WithLogger sets the logger for cache and fetch diagnostics.
func WithLogger(logger *slog.Logger) PreviewerOption {
	return func(p *Previewer) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPreviewer creates a Previewer.
func NewPreviewer(fetcher BytesFetcher, renderer Renderer, opts ...PreviewerOption) *Previewer {
	p := &Previewer{
		fetcher:  fetcher,
		renderer: renderer,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Show writes the preview of rawURL to w. Failures are also written to w
// as a one-line message, since w is usually the picker's preview pane.
func (p *Previewer) Show(ctx context.Context, rawURL string, size Size, w io.Writer) error {
	data, err := p.load(ctx, rawURL)
	if err != nil {
		fmt.Fprintf(w, "preview unavailable: %v\n", err)
		return err
	}

	if err := p.renderer.Render(ctx, data, size, w); err != nil {
		fmt.Fprintf(w, "cannot render with %s: %v\n", p.renderer.Name(), err)
		p.logger.Debug("render failed", "url", rawURL, "renderer", p.renderer.Name(), "error", err)
	}

	fmt.Fprintln(w)
	for _, line := range Describe(data) {
		fmt.Fprintln(w, line)
	}
	return nil
}

func (p *Previewer) load(ctx context.Context, rawURL string) ([]byte, error) {
	if p.cache != nil {
		if data, ok := p.cache.Load(rawURL); ok {
			p.logger.Debug("preview cache hit", "url", rawURL)
			return data, nil
		}
	}

	data, _, err := p.fetcher.FetchBytes(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Store(rawURL, data); err != nil {
			p.logger.Debug("preview cache store failed", "url", rawURL, "error", err)
		}
	}
	return data, nil
}
