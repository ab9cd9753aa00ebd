package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/imgscan/internal/classify"
	"github.com/nao1215/imgscan/internal/extract"
	"github.com/nao1215/imgscan/internal/fetch"
	"github.com/nao1215/imgscan/internal/model"
	"github.com/nao1215/imgscan/internal/resolve"
)

// ErrFetchFailed wraps every failure of the initial page fetch.
var ErrFetchFailed = errors.New("failed to fetch page")

// PageFetcher retrieves the scanned page.
type PageFetcher interface {
	FetchPage(ctx context.Context, rawURL string) (*fetch.Page, error)
}

// Classifier judges one resolved URL.
type Classifier interface {
	Classify(ctx context.Context, rawURL string) classify.Result
}

// Validator checks one classified URL.
type Validator interface {
	Validate(ctx context.Context, rawURL string) error
}

// FetchStep retrieves the page markup.
type FetchStep struct {
	fetcher PageFetcher
	logger  *slog.Logger
}

// NewFetchStep creates a FetchStep.
func NewFetchStep(fetcher PageFetcher, logger *slog.Logger) *FetchStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &FetchStep{fetcher: fetcher, logger: logger}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches scan.PageURL. Any failure is fatal for the run.
func (s *FetchStep) Do(ctx context.Context, scan *model.Scan) error {
	page, err := s.fetcher.FetchPage(ctx, scan.PageURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if page.Truncated {
		s.logger.Warn("page body truncated at size limit", "url", scan.PageURL)
	}
	if page.FinalURL != "" && page.FinalURL != scan.PageURL {
		s.logger.Debug("page redirected", "url", scan.PageURL, "final", page.FinalURL)
	}

	scan.Body = page.Body
	scan.ContentType = page.ContentType
	return nil
}

// ExtractStep collects raw candidates from every source and normalizes
// them into the sorted unique candidate list.
type ExtractStep struct {
	sources []extract.Source
	logger  *slog.Logger
}

// NewExtractStep creates an ExtractStep for the given sources, applied in order.
func NewExtractStep(logger *slog.Logger, sources ...extract.Source) *ExtractStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStep{sources: sources, logger: logger}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do fills scan.Candidates.
func (s *ExtractStep) Do(_ context.Context, scan *model.Scan) error {
	var raw []string
	for _, src := range s.sources {
		found := src.Extract(scan.Body)
		s.logger.Debug("candidates extracted", "source", src.Name(), "count", len(found))
		raw = append(raw, found...)
	}

	scan.Candidates = extract.Normalize(raw)
	scan.Stats.Raw = len(raw)
	scan.Stats.Unique = len(scan.Candidates)
	return nil
}

// SelectStep turns candidates into accepted images.
type SelectStep struct {
	classifier Classifier
	validator  Validator
	onAccept   func(model.Image)
	logger     *slog.Logger
}

// SelectOption configures a SelectStep.
type SelectOption func(*SelectStep)

// WithValidator enables per-URL validation.
func WithValidator(v Validator) SelectOption {
	return func(s *SelectStep) {
		s.validator = v
	}
}

// WithOnAccept registers a callback invoked for each image as soon as it
// is accepted, in result order.
func WithOnAccept(fn func(model.Image)) SelectOption {
	return func(s *SelectStep) {
		s.onAccept = fn
	}
}

// WithSelectLogger sets the logger for per-candidate diagnostics.
func WithSelectLogger(logger *slog.Logger) SelectOption {
	return func(s *SelectStep) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSelectStep creates a SelectStep.
func NewSelectStep(classifier Classifier, opts ...SelectOption) *SelectStep {
	s := &SelectStep{
		classifier: classifier,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *SelectStep) Name() string {
	return "select"
}

// Do processes scan.Candidates in order. Each resolved URL is evaluated
// once; a later candidate resolving to the same URL counts as a duplicate
// whatever the first outcome was.
func (s *SelectStep) Do(ctx context.Context, scan *model.Scan) error {
	resolver, err := resolve.New(scan.PageURL)
	if err != nil {
		return err
	}

	seen := model.NewDeduplicator()
	for _, raw := range scan.Candidates {
		if err := ctx.Err(); err != nil {
			return err
		}

		resolved, err := resolver.Resolve(raw)
		if err != nil {
			scan.Stats.Unresolvable++
			s.logger.Debug("candidate rejected", "raw", raw, "reason", err.Error())
			continue
		}

		if !seen.First(resolved) {
			scan.Stats.Duplicates++
			s.logger.Debug("candidate rejected", "raw", raw, "url", resolved, "reason", "duplicate")
			continue
		}

		result := s.classifier.Classify(ctx, resolved)
		if !result.Classification.IsImage() {
			scan.Stats.Rejected++
			s.logger.Debug("candidate rejected",
				"raw", raw,
				"url", resolved,
				"reason", result.Reason,
				"classification", result.Classification.String(),
			)
			continue
		}

		img := model.Image{
			URL:            resolved,
			Raw:            raw,
			Classification: result.Classification,
			Detail:         result.Detail,
		}

		if s.validator != nil {
			if err := s.validator.Validate(ctx, resolved); err != nil {
				scan.Stats.Invalid++
				s.logger.Debug("candidate rejected",
					"raw", raw,
					"url", resolved,
					"reason", "validation: "+err.Error(),
					"classification", result.Classification.String(),
				)
				continue
			}
			img.Validated = true
		}

		if !scan.Results.Add(img) {
			scan.Stats.Duplicates++
			continue
		}
		scan.Stats.Accepted++
		s.logger.Debug("candidate accepted",
			"raw", raw,
			"url", resolved,
			"classification", result.Classification.String(),
		)
		if s.onAccept != nil {
			s.onAccept(img)
		}
	}
	return nil
}
