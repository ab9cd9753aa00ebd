package model

import "fmt"

// Stats counts what happened to the candidates of one run.
type Stats struct {
	// Raw is the number of strings the extractors produced, before
	// trimming and uniquing.
	Raw int `json:"raw"`

	// Unique is the number of distinct non-empty trimmed candidates.
	Unique int `json:"unique"`

	// Duplicates counts candidates that resolved to a URL already evaluated.
	Duplicates int `json:"duplicates"`

	// Unresolvable counts candidates that could not become an http(s) URL.
	Unresolvable int `json:"unresolvable"`

	// Rejected counts URLs the classifier did not confirm as images.
	Rejected int `json:"rejected"`

	// Invalid counts classified URLs that failed validation.
	Invalid int `json:"invalid"`

	// Accepted is the size of the result set.
	Accepted int `json:"accepted"`
}

// String returns the one-line summary printed at the end of a run.
func (s Stats) String() string {
	return fmt.Sprintf("%d images (%d candidates, %d unique, %d duplicate, %d unresolvable, %d rejected, %d invalid)",
		s.Accepted, s.Raw, s.Unique, s.Duplicates, s.Unresolvable, s.Rejected, s.Invalid)
}
