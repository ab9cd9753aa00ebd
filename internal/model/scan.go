package model

import "time"

// Scan carries the state of one run through the pipeline.
// Each step reads what earlier steps produced and adds its own part.
type Scan struct {
	// PageURL is the absolute URL of the scanned page.
	// It does not change after the fetch step.
	PageURL string

	// ContentType is the Content-Type of the page response.
	ContentType string

	// Body is the decoded page markup.
	Body string

	// Candidates are the trimmed, sorted, unique raw candidates.
	Candidates []string

	// Results holds the accepted images in candidate order.
	Results *ResultSet

	// Stats summarizes candidate outcomes.
	Stats Stats

	// StartedAt and FinishedAt bracket the pipeline execution.
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewScan creates a Scan for pageURL.
func NewScan(pageURL string) *Scan {
	return &Scan{
		PageURL:   pageURL,
		Results:   NewResultSet(),
		StartedAt: time.Now(),
	}
}

// Duration returns how long the scan took. It is zero until FinishedAt is set.
func (s *Scan) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
