package preview

import "errors"

var (
	// ErrPickerUnavailable is returned when fzf cannot be found.
	ErrPickerUnavailable = errors.New("fzf not found in PATH")

	// ErrRendererUnavailable is returned when the chosen renderer cannot run.
	ErrRendererUnavailable = errors.New("image renderer not available")

	// ErrUnsupportedImage is returned when the built-in renderer cannot
	// decode the image data.
	ErrUnsupportedImage = errors.New("unsupported image format")

	// ErrInvalidSize is returned by ParseSize.
	ErrInvalidSize = errors.New("size must be WIDTHxHEIGHT with positive integers")
)
