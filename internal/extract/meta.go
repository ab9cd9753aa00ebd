package extract

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaRule selects elements and names the attribute holding the reference.
type metaRule struct {
	selector string
	attr     string
	srcset   bool
}

var metaRules = []metaRule{
	{selector: `meta[property="og:image"]`, attr: "content"},
	{selector: `meta[property="og:image:url"]`, attr: "content"},
	{selector: `meta[property="og:image:secure_url"]`, attr: "content"},
	{selector: `meta[name="twitter:image"]`, attr: "content"},
	{selector: `meta[name="twitter:image:src"]`, attr: "content"},
	{selector: `img[data-src]`, attr: "data-src"},
	{selector: `img[data-original]`, attr: "data-original"},
	{selector: `img[data-lazy-src]`, attr: "data-lazy-src"},
	{selector: `[data-srcset]`, attr: "data-srcset", srcset: true},
	{selector: `source[src]`, attr: "src"},
	{selector: `video[poster]`, attr: "poster"},
	{selector: `input[type="image"]`, attr: "src"},
}

// iconRels are the link rel tokens that reference an image.
var iconRels = map[string]struct{}{
	"icon":                         {},
	"apple-touch-icon":             {},
	"apple-touch-icon-precomposed": {},
	"mask-icon":                    {},
	"image_src":                    {},
}

// MetaExtractor finds image references in meta tags, icon links and
// lazy-loading attributes using a DOM parse of the page.
type MetaExtractor struct {
	logger *slog.Logger
}

// NewMetaExtractor returns a MetaExtractor. A nil logger discards output.
func NewMetaExtractor(logger *slog.Logger) *MetaExtractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MetaExtractor{logger: logger}
}

// Name returns "meta".
func (m *MetaExtractor) Name() string {
	return "meta"
}

// Extract returns the references found in markup, in rule order.
// A document that cannot be parsed yields no candidates.
func (m *MetaExtractor) Extract(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		m.logger.Debug("meta extraction skipped", "error", err)
		return nil
	}

	var out []string
	for _, rule := range metaRules {
		doc.Find(rule.selector).Each(func(_ int, s *goquery.Selection) {
			v, ok := s.Attr(rule.attr)
			if !ok {
				return
			}
			if rule.srcset {
				out = append(out, splitSrcset(v)...)
				return
			}
			out = append(out, v)
		})
	}

	doc.Find("link[rel][href]").Each(func(_ int, s *goquery.Selection) {
		rel, _ := s.Attr("rel")
		for _, token := range strings.Fields(strings.ToLower(rel)) {
			if _, ok := iconRels[token]; ok {
				href, _ := s.Attr("href")
				out = append(out, href)
				return
			}
		}
	})

	return out
}
