package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/html/charset"
)

// Default client values.
const (
	DefaultTimeout     = 10 * time.Second
	DefaultUserAgent   = "imgscan/1.0"
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

const (
	acceptHTML  = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptImage = "image/avif,image/webp,image/png,image/*;q=0.8,*/*;q=0.5"
)

// Client performs the HTTP requests of a run.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	headers     map[string]string
	timeout     time.Duration
	maxBodySize int64
	proxyURL    string
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout applied to each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHeaders adds headers sent with every request.
func WithHeaders(h map[string]string) Option {
	return func(c *Client) {
		for k, v := range h {
			c.headers[k] = v
		}
	}
}

// WithProxy routes requests through proxyURL (http, https, socks5 or socks5h).
func WithProxy(proxyURL string) Option {
	return func(c *Client) {
		c.proxyURL = proxyURL
	}
}

// WithMaxBodySize limits how many bytes of a body are read.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// WithHTTPClient replaces the underlying client. The proxy option is
// ignored when this is used.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		userAgent:   DefaultUserAgent,
		headers:     make(map[string]string),
		timeout:     DefaultTimeout,
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		transport, err := newTransport(c.proxyURL)
		if err != nil {
			return nil, err
		}
		c.httpClient = &http.Client{
			Transport:     transport,
			Timeout:       c.timeout,
			CheckRedirect: checkRedirect,
		}
	}
	return c, nil
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Page is a fetched and decoded HTML document.
type Page struct {
	// URL is the requested URL.
	URL string
	// FinalURL is the URL after redirects.
	FinalURL string
	// StatusCode is the final response status.
	StatusCode int
	// ContentType is the Content-Type response header.
	ContentType string
	// Body is the document decoded to UTF-8.
	Body string
	// Truncated is true when the body was cut at the size limit.
	Truncated bool
}

// FetchPage GETs rawURL and decodes the body to UTF-8 using the charset
// declared by the response header or the document itself. Any status
// outside 2xx is returned as a *StatusError.
func (c *Client) FetchPage(ctx context.Context, rawURL string) (*Page, error) {
	resp, cancel, err := c.do(ctx, http.MethodGet, rawURL, acceptHTML)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: rawURL, Code: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}
	truncated := int64(len(raw)) > c.maxBodySize
	if truncated {
		raw = raw[:c.maxBodySize]
	}

	var decoded io.Reader = bytes.NewReader(raw)
	if r, err := charset.NewReader(decoded, contentType); err != nil {
		c.logger.Debug("charset detection failed, reading raw bytes", "url", rawURL, "error", err)
	} else {
		decoded = r
	}
	body, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", rawURL, err)
	}

	return &Page{
		URL:         rawURL,
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        string(body),
		Truncated:   truncated,
	}, nil
}

// Head is the result of a header-only request.
type Head struct {
	URL         string
	FinalURL    string
	StatusCode  int
	ContentType string
}

// Head issues a HEAD request to rawURL and follows redirects. The status
// is returned as is; callers decide what is acceptable.
func (c *Client) Head(ctx context.Context, rawURL string) (*Head, error) {
	resp, cancel, err := c.do(ctx, http.MethodHead, rawURL, acceptImage)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	return &Head{
		URL:         rawURL,
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// FetchBytes GETs rawURL and returns the body and its Content-Type.
// The status must be 200 and the body must fit in the size limit.
func (c *Client) FetchBytes(ctx context.Context, rawURL string) ([]byte, string, error) {
	resp, cancel, err := c.do(ctx, http.MethodGet, rawURL, acceptImage)
	if err != nil {
		return nil, "", err
	}
	defer cancel()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &StatusError{URL: rawURL, Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", rawURL, err)
	}
	if int64(len(data)) > c.maxBodySize {
		return nil, "", fmt.Errorf("%w: %s", ErrBodyTooLarge, rawURL)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// do sends one request bounded by the client timeout. The returned cancel
// func must be called once the body has been consumed.
func (c *Client) do(ctx context.Context, method, rawURL, accept string) (*http.Response, context.CancelFunc, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Err != nil {
			err = urlErr.Err
		}
		return nil, nil, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}

	c.logger.Debug("http request",
		"method", method,
		"url", rawURL,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return resp, cancel, nil
}
