package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoTarget is returned when no page URL is given.
	ErrNoTarget = errors.New("no target specified: provide the URL of the page to scan")

	// ErrTooManyTargets is returned when more than one positional argument is given.
	ErrTooManyTargets = errors.New("unknown argument: only one page URL can be scanned per run")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be a positive number of seconds")

	// ErrInvalidFormat is returned for an unknown output file format.
	ErrInvalidFormat = errors.New("invalid output format: must be text, markdown or json")

	// ErrInvalidRenderer is returned for an unknown preview renderer.
	ErrInvalidRenderer = errors.New("invalid preview renderer: must be chafa or blocks")

	// ErrInvalidPreviewSize is returned when the preview width or height is not positive.
	ErrInvalidPreviewSize = errors.New("invalid preview size: width and height must be positive")

	// ErrInvalidProxy is returned when the proxy URL cannot be used.
	ErrInvalidProxy = errors.New("invalid proxy: expected http://, https://, socks5:// or socks5h:// URL")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")
)
