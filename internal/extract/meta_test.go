package extract

import (
	"slices"
	"testing"
)

// TestMetaExtractor tests DOM-based reference discovery.
func TestMetaExtractor(t *testing.T) {
	t.Parallel()

	markup := `<!doctype html>
<html><head>
<meta property="og:image" content="https://cdn.test/og.jpg">
<meta name="twitter:image" content="/tw.png">
<meta name="description" content="not an image">
<link rel="Shortcut Icon" href="/favicon.ico">
<link rel="apple-touch-icon" href="touch.png">
<link rel="stylesheet" href="site.css">
</head><body>
<img data-src="lazy.webp" src="placeholder.gif">
<div data-srcset="d1.png 1x, d2.png 2x"></div>
<picture><source src="pic.avif"></picture>
<video poster="poster.jpg"></video>
<input type="image" src="submit.png">
<input type="text" value="x.png">
</body></html>`

	m := NewMetaExtractor(nil)
	if m.Name() != "meta" {
		t.Errorf("unexpected name %q", m.Name())
	}

	got := m.Extract(markup)
	want := []string{
		"https://cdn.test/og.jpg",
		"/tw.png",
		"lazy.webp",
		"d1.png",
		"d2.png",
		"pic.avif",
		"poster.jpg",
		"submit.png",
		"/favicon.ico",
		"touch.png",
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, expected %q", got, want)
	}
}

// TestMetaExtractorEmpty tests documents without references.
func TestMetaExtractorEmpty(t *testing.T) {
	t.Parallel()

	for _, markup := range []string{"", "plain text", "<p>hello</p>", "<<<"} {
		if got := NewMetaExtractor(nil).Extract(markup); len(got) != 0 {
			t.Errorf("expected no candidates for %q, got %q", markup, got)
		}
	}
}

// TestSourcesImplementInterface tests that both extractors are Sources.
func TestSourcesImplementInterface(t *testing.T) {
	t.Parallel()

	sources := []Source{NewExtractor(), NewMetaExtractor(nil)}
	for _, s := range sources {
		if s.Name() == "" {
			t.Error("source name should not be empty")
		}
	}
}
