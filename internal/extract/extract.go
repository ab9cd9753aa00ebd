package extract

import (
	"html"
	"regexp"
	"slices"
	"strings"
)

// Source produces raw candidate strings from page markup.
// Candidates may be empty, padded or relative; duplicates are allowed.
type Source interface {
	// Name identifies the source in log output.
	Name() string
	// Extract returns the candidates found in markup.
	Extract(markup string) []string
}

var (
	// imgSrcPattern matches <img ...src="..."> with attributes in any order.
	imgSrcPattern = regexp.MustCompile(`(?i)<img\b[^>]*?\ssrc\s*=\s*(?:"([^"]*)"|'([^']*)')`)

	// srcsetPattern matches a srcset attribute value.
	srcsetPattern = regexp.MustCompile(`(?i)\ssrcset\s*=\s*(?:"([^"]*)"|'([^']*)')`)

	// backgroundPattern matches a background or background-image declaration
	// up to its terminating semicolon, closing brace or tag boundary.
	backgroundPattern = regexp.MustCompile(`(?i)background(?:-image)?\s*:[^;}<>]*`)

	// cssURLPattern matches the argument of url(...).
	cssURLPattern = regexp.MustCompile(`(?i)url\(([^)]*)\)`)
)

// Extractor implements the three pattern rules.
type Extractor struct{}

// NewExtractor returns the pattern extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns "markup".
func (e *Extractor) Name() string {
	return "markup"
}

// Extract applies every rule independently and concatenates the results
// in rule order: img src, srcset, CSS background.
func (e *Extractor) Extract(markup string) []string {
	var out []string
	out = append(out, ImgSources(markup)...)
	out = append(out, SrcsetSources(markup)...)
	out = append(out, CSSBackgrounds(markup)...)
	return out
}

// ImgSources returns the quoted src value of every img tag.
func ImgSources(markup string) []string {
	return quotedValues(imgSrcPattern, markup)
}

// SrcsetSources returns the URL of every srcset entry. Width and pixel
// density descriptors are dropped.
func SrcsetSources(markup string) []string {
	var out []string
	for _, set := range quotedValues(srcsetPattern, markup) {
		out = append(out, splitSrcset(set)...)
	}
	return out
}

// CSSBackgrounds returns the url() arguments of every background and
// background-image declaration, without surrounding quotes. Character
// references are decoded first, so url(&quot;a.png&quot;) in a style
// attribute is found like url("a.png").
func CSSBackgrounds(markup string) []string {
	var out []string
	for _, decl := range backgroundPattern.FindAllString(html.UnescapeString(markup), -1) {
		for _, m := range cssURLPattern.FindAllStringSubmatch(decl, -1) {
			out = append(out, trimCSSURL(m[1]))
		}
	}
	return out
}

// Normalize trims candidates, decodes HTML character references, drops
// empties and returns the rest sorted in byte order without repeats.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(html.UnescapeString(c))
		if c != "" {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func quotedValues(re *regexp.Regexp, markup string) []string {
	matches := re.FindAllStringSubmatch(markup, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[1] != "" {
			out = append(out, m[1])
		} else {
			out = append(out, m[2])
		}
	}
	return out
}

func splitSrcset(set string) []string {
	var out []string
	for _, entry := range strings.Split(set, ",") {
		if fields := strings.Fields(entry); len(fields) > 0 {
			out = append(out, fields[0])
		}
	}
	return out
}

func trimCSSURL(arg string) string {
	arg = strings.TrimSpace(arg)
	arg = strings.Trim(arg, `"'`)
	return strings.TrimSpace(arg)
}
