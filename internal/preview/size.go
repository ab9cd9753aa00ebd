package preview

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a render area in terminal cells.
type Size struct {
	Width  int
	Height int
}

// String returns the WIDTHxHEIGHT form understood by ParseSize and chafa.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses "WIDTHxHEIGHT".
func ParseSize(s string) (Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return Size{Width: width, Height: height}, nil
}
