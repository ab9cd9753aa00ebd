package resolve

import "errors"

var (
	// ErrEmptyCandidate is returned for candidates that are empty after trimming.
	ErrEmptyCandidate = errors.New("empty candidate")

	// ErrUnresolvable is returned for candidates carrying a non-http scheme
	// such as data:, javascript:, blob: or mailto:.
	ErrUnresolvable = errors.New("candidate cannot be resolved to an http(s) URL")

	// ErrInvalidPageURL is returned when the page URL is not an absolute
	// http(s) URL.
	ErrInvalidPageURL = errors.New("page URL must be an absolute http(s) URL")
)
