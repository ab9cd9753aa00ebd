package model

// Image is one accepted entry of the result set.
type Image struct {
	// URL is the absolute URL. It always starts with http:// or https://.
	URL string `json:"url"`

	// Raw is the markup string the URL was resolved from.
	// When several raw candidates resolve to the same URL, the first one
	// in candidate order is kept.
	Raw string `json:"raw"`

	// Classification tells whether the URL was accepted by extension or
	// by content-type probe.
	Classification Classification `json:"classification"`

	// Detail is the matched extension or content subtype, lowercased.
	Detail string `json:"detail,omitempty"`

	// Validated is true when the URL answered 200 to a validation request.
	Validated bool `json:"validated,omitempty"`
}
