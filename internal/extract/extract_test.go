package extract

import (
	"slices"
	"testing"
)

// TestImgSources tests the img src rule.
func TestImgSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		want   []string
	}{
		{name: "simple", markup: `<img src="/a.png">`, want: []string{"/a.png"}},
		{name: "attributes before src", markup: `<img alt="x" class='c' src="b.jpg" width=3>`, want: []string{"b.jpg"}},
		{name: "single quotes", markup: `<img src='c.gif'/>`, want: []string{"c.gif"}},
		{name: "uppercase tag", markup: `<IMG SRC="D.PNG">`, want: []string{"D.PNG"}},
		{name: "spaces around equals", markup: `<img src = "e.png" >`, want: []string{"e.png"}},
		{name: "multi line tag", markup: "<img\n  loading=\"lazy\"\n  src=\"f.webp\">", want: []string{"f.webp"}},
		{name: "data-src is not src", markup: `<img data-src="lazy.png">`, want: []string{}},
		{name: "data-src before src", markup: `<img data-src="lazy.png" src="real.png">`, want: []string{"real.png"}},
		{name: "other tags ignored", markup: `<script src="app.js"></script><iframe src="x.png">`, want: []string{}},
		{name: "empty value kept", markup: `<img src="">`, want: []string{""}},
		{name: "apostrophe inside double quotes", markup: `<img src="it's.png">`, want: []string{"it's.png"}},
		{name: "several tags", markup: `<p><img src="1.png"><img src="2.png"></p>`, want: []string{"1.png", "2.png"}},
		{name: "unterminated tag", markup: `<img src="broken.png`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ImgSources(tt.markup)
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

// TestSrcsetSources tests the srcset rule.
func TestSrcsetSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		want   []string
	}{
		{name: "density descriptors", markup: `<img srcset="a.webp 1x, b.webp 2x">`, want: []string{"a.webp", "b.webp"}},
		{name: "width descriptors", markup: `<source srcset="s.jpg 320w,m.jpg 640w , l.jpg 1024w">`, want: []string{"s.jpg", "m.jpg", "l.jpg"}},
		{name: "no descriptor", markup: `<img srcset="only.png">`, want: []string{"only.png"}},
		{name: "empty entries skipped", markup: `<img srcset="a.png 1x,, ,b.png 2x">`, want: []string{"a.png", "b.png"}},
		{name: "single quotes", markup: `<img srcset='q.png 1x'>`, want: []string{"q.png"}},
		{name: "case insensitive", markup: `<img SRCSET="u.png 2x">`, want: []string{"u.png"}},
		{name: "data-srcset is left to meta", markup: `<img data-srcset="lazy.png 1x">`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SrcsetSources(tt.markup)
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

// TestCSSBackgrounds tests the CSS background rule.
func TestCSSBackgrounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		want   []string
	}{
		{name: "inline style single quotes", markup: `<div style="background-image:url('pic.gif')">`, want: []string{"pic.gif"}},
		{name: "double quotes in style block", markup: `<style>.a { background: #fff url("bg.png") no-repeat; }</style>`, want: []string{"bg.png"}},
		{name: "unquoted", markup: `<div style="background: url(/h.jpg)">`, want: []string{"/h.jpg"}},
		{name: "padded argument", markup: `<div style="background-image: url(  ' p.png '  );">`, want: []string{"p.png"}},
		{name: "multiple layers", markup: `<i style="background-image: url(a.png), url(b.png);">`, want: []string{"a.png", "b.png"}},
		{name: "uppercase property", markup: `<div style="BACKGROUND-IMAGE:URL(x.svg)">`, want: []string{"x.svg"}},
		{name: "other properties ignored", markup: `<style>.f { src: url(font.woff); } .m { mask: url(m.svg); }</style>`, want: nil},
		{name: "entity double quotes", markup: `<div style="background-image:url(&quot;pic.gif&quot;)"></div>`, want: []string{"pic.gif"}},
		{name: "entity single quotes", markup: `<div style="background:url(&#39;/bg.png&#39;) no-repeat"></div>`, want: []string{"/bg.png"}},
		{name: "entity in url", markup: `<div style="background:url(&quot;/i.png?a=1&amp;b=2&quot;)"></div>`, want: []string{"/i.png?a=1&b=2"}},
		{name: "color only", markup: `<div style="background: red;">`, want: nil},
		{name: "stops at semicolon", markup: `<div style="background: red; list-style: url(dot.png)">`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CSSBackgrounds(tt.markup)
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

// TestExtractorExtract tests that rules are applied independently and
// concatenated.
func TestExtractorExtract(t *testing.T) {
	t.Parallel()

	markup := `<html><body>
<img src="/a.png" srcset="a.webp 1x, b.webp 2x">
<div style="background-image:url('pic.gif')"></div>
<img src="/a.png">
</body></html>`

	e := NewExtractor()
	if e.Name() != "markup" {
		t.Errorf("unexpected name %q", e.Name())
	}

	got := e.Extract(markup)
	want := []string{"/a.png", "/a.png", "a.webp", "b.webp", "pic.gif"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, expected %q", got, want)
	}
}

// TestExtractorEncodedStyle tests serialized inline styles whose quotes
// are character references.
func TestExtractorEncodedStyle(t *testing.T) {
	t.Parallel()

	markup := `<div style="background-image:url(&quot;pic.gif&quot;)"></div>` +
		`<span style='background:url(&#39;/icons/x.png&#39;)'></span>`
	got := Normalize(NewExtractor().Extract(markup))
	want := []string{"/icons/x.png", "pic.gif"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, expected %q", got, want)
	}
}

// TestExtractorMalformed tests that broken markup never panics.
func TestExtractorMalformed(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"<img",
		`<img src="`,
		"<<<>>> background: url(",
		`<div style="background:url('a.png'`,
		"\x00\xff<img src='\xfe.png'>",
	}
	for _, in := range inputs {
		_ = NewExtractor().Extract(in)
	}
}

// TestNormalize tests trimming, entity decoding, sorting and uniquing.
func TestNormalize(t *testing.T) {
	t.Parallel()

	raw := []string{" /b.png ", "", "/a.png", "  ", "/b.png", "x.jpg?w=1&amp;h=2", "\t/a.png\n"}
	got := Normalize(raw)
	want := []string{"/a.png", "/b.png", "x.jpg?w=1&h=2"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, expected %q", got, want)
	}

	if again := Normalize(got); !slices.Equal(again, got) {
		t.Errorf("normalize should be idempotent, got %q", again)
	}

	if got := Normalize(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %q", got)
	}
}
