package model

import "fmt"

// Classification records how a resolved URL was judged to be an image.
// It is determined once per URL and never re-evaluated.
type Classification int

const (
	// ClassificationRejected means the URL is not treated as an image.
	ClassificationRejected Classification = iota

	// ClassificationExtension means the URL path ends in an allow-listed
	// image extension, optionally followed by a query string.
	ClassificationExtension

	// ClassificationContentType means the URL had no usable extension but a
	// header-only probe reported an allow-listed image subtype.
	ClassificationContentType
)

// String returns a human-readable representation of the classification.
func (c Classification) String() string {
	switch c {
	case ClassificationRejected:
		return "rejected"
	case ClassificationExtension:
		return "extension"
	case ClassificationContentType:
		return "content-type"
	default:
		return "unknown"
	}
}

// IsImage reports whether the classification confirms an image.
func (c Classification) IsImage() bool {
	return c == ClassificationExtension || c == ClassificationContentType
}

// MarshalText encodes the classification as its string form so that JSON
// reports stay readable.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a classification produced by MarshalText.
func (c *Classification) UnmarshalText(text []byte) error {
	switch string(text) {
	case "rejected":
		*c = ClassificationRejected
	case "extension":
		*c = ClassificationExtension
	case "content-type":
		*c = ClassificationContentType
	default:
		return fmt.Errorf("unknown classification %q", string(text))
	}
	return nil
}
