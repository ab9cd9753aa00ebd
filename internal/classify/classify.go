// Package classify decides whether a resolved URL denotes an image.
package classify

import (
	"context"
	"log/slog"
	"mime"
	"regexp"
	"slices"
	"strings"

	"github.com/nao1215/imgscan/internal/fetch"
	"github.com/nao1215/imgscan/internal/model"
)

// AllowedExtensions is the image allow-list. It is used both for file
// extensions and for Content-Type subtypes.
var AllowedExtensions = []string{"jpg", "jpeg", "png", "gif", "svg", "webp", "bmp", "ico", "tiff"}

// extensionPattern matches an allow-listed extension at the end of the URL,
// optionally followed by a query string.
var extensionPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|svg|webp|bmp|ico|tiff)(\?.*)?$`)

// Prober issues header-only requests.
type Prober interface {
	Head(ctx context.Context, rawURL string) (*fetch.Head, error)
}

// Result is the outcome of classifying one URL.
type Result struct {
	Classification model.Classification
	// Detail is the matched extension or subtype, lowercased.
	Detail string
	// Reason explains a rejection.
	Reason string
}

// Classifier applies the extension rule and, when enabled, the
// content-type probe.
type Classifier struct {
	prober Prober
	probe  bool
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithProbe enables the content-type probe for URLs without a known
// extension. It has no effect without a Prober.
func WithProbe(enabled bool) Option {
	return func(c *Classifier) {
		c.probe = enabled
	}
}

// WithLogger sets the logger for probe diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Classifier. prober may be nil when probing is disabled.
func New(prober Prober, opts ...Option) *Classifier {
	c := &Classifier{
		prober: prober,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the classification of rawURL. It never fails: a probe
// that cannot be completed yields a rejection with the error as reason.
func (c *Classifier) Classify(ctx context.Context, rawURL string) Result {
	if ext, ok := Extension(rawURL); ok {
		return Result{Classification: model.ClassificationExtension, Detail: ext}
	}
	if !c.probe || c.prober == nil {
		return Result{Classification: model.ClassificationRejected, Reason: "no image extension"}
	}

	head, err := c.prober.Head(ctx, rawURL)
	if err != nil {
		c.logger.Debug("content-type probe failed", "url", rawURL, "error", err)
		return Result{Classification: model.ClassificationRejected, Reason: "probe failed: " + err.Error()}
	}

	sub := Subtype(head.ContentType)
	if IsAllowed(sub) {
		return Result{Classification: model.ClassificationContentType, Detail: sub}
	}
	if head.ContentType == "" {
		return Result{Classification: model.ClassificationRejected, Reason: "no content type"}
	}
	return Result{Classification: model.ClassificationRejected, Reason: "content type " + head.ContentType}
}

// Extension returns the lowercased allow-listed extension rawURL ends with.
// The fragment is never sent to the server and is ignored.
func Extension(rawURL string) (string, bool) {
	withoutFragment, _, _ := strings.Cut(rawURL, "#")
	m := extensionPattern.FindStringSubmatch(withoutFragment)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// Subtype returns the lowercased token after the slash of a Content-Type
// value, without parameters. It returns "" when there is no slash.
func Subtype(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
		if i := strings.IndexByte(mediaType, ';'); i >= 0 {
			mediaType = mediaType[:i]
		}
	}
	_, sub, ok := strings.Cut(mediaType, "/")
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(sub))
}

// IsAllowed reports whether s is a member of AllowedExtensions.
func IsAllowed(s string) bool {
	return slices.Contains(AllowedExtensions, s)
}
