package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnsupportedScheme is returned for URLs that are not http or https,
	// including redirect targets.
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")

	// ErrUnexpectedStatus is wrapped by StatusError.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrBodyTooLarge is returned when a byte fetch exceeds the size limit.
	ErrBodyTooLarge = errors.New("response body exceeds size limit")

	// ErrTooManyRedirects is returned when a redirect chain exceeds MaxRedirects.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrUnsupportedProxy is returned for proxy URLs with an unknown scheme.
	ErrUnsupportedProxy = errors.New("unsupported proxy scheme")
)

// StatusError reports a response whose status was not acceptable.
type StatusError struct {
	URL  string
	Code int
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Unwrap lets errors.Is match ErrUnexpectedStatus.
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
