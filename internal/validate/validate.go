// Package validate checks that accepted image URLs answer with 200.
package validate

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nao1215/imgscan/internal/fetch"
)

// ErrNotOK is returned when the final status of a validation request is
// anything other than 200.
var ErrNotOK = errors.New("status is not 200 OK")

// Header issues header-only requests.
type Header interface {
	Head(ctx context.Context, rawURL string) (*fetch.Head, error)
}

// Validator issues one HEAD request per URL. No retries are made.
type Validator struct {
	client Header
}

// New returns a Validator using client.
func New(client Header) *Validator {
	return &Validator{client: client}
}

// Validate returns nil when rawURL answers exactly 200 after redirects.
// Network errors, timeouts and any other status are returned as errors.
func (v *Validator) Validate(ctx context.Context, rawURL string) error {
	head, err := v.client.Head(ctx, rawURL)
	if err != nil {
		return err
	}
	if head.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrNotOK, head.StatusCode)
	}
	return nil
}
