package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "imgscan"

	// DefaultTimeout applies to every network call of a run: the page
	// fetch, each probe and validation request, and each preview fetch.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent identifies imgscan in HTTP requests.
	DefaultUserAgent = "imgscan/1.0 (+https://github.com/nao1215/imgscan)"

	// DefaultMaxBodySize limits how much of a page or image is read.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// DefaultPreviewWidth and DefaultPreviewHeight bound the final render
	// of a selected image, in terminal cells.
	DefaultPreviewWidth  = 80
	DefaultPreviewHeight = 40
)

// Output file formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Preview renderers.
const (
	// RendererChafa delegates rendering to the external chafa binary.
	RendererChafa = "chafa"
	// RendererBlocks renders with the built-in ANSI half-block renderer.
	RendererBlocks = "blocks"
)

// Config holds all options for one imgscan run.
// It is populated from CLI flags and the optional config file and passed
// down explicitly; nothing reads it from global state.
type Config struct {
	// Target is the page URL to scan, as given by the user.
	Target string

	// OutputFile, when set, receives the final result set.
	// The file is overwritten.
	OutputFile string

	// OutputFormat is one of FormatText, FormatMarkdown or FormatJSON.
	OutputFormat string

	// Verbose enables per-candidate accept/reject diagnostics.
	Verbose bool

	// CheckHTTP enables the content-type probe for extensionless
	// candidates and the 200-status validation of every accepted URL.
	CheckHTTP bool

	// Timeout bounds each network call.
	Timeout time.Duration

	// NoPreview disables the interactive picker.
	NoPreview bool

	// IncludeMeta adds og:image, icons, data-src and similar references
	// to the raw candidate list.
	IncludeMeta bool

	// UserAgent is sent with every request.
	UserAgent string

	// Headers are extra request headers sent with every request.
	Headers map[string]string

	// ProxyURL routes every request through a proxy when set.
	ProxyURL string

	// MaxBodySize caps how many bytes of a response body are read.
	// Zero means DefaultMaxBodySize.
	MaxBodySize int64

	// ConfigFilePath is the explicit config file path, if any.
	ConfigFilePath string

	// ScratchBase is the directory the run-scoped scratch directory is
	// created in. Empty means the system temp dir.
	ScratchBase string

	// Preview configures the picker stage.
	Preview PreviewConfig
}

// PreviewConfig configures thumbnail rendering.
type PreviewConfig struct {
	// Renderer is RendererChafa or RendererBlocks.
	Renderer string

	// Width and Height bound the render of the confirmed selection.
	// The picker pane uses the size fzf reports for it.
	Width  int
	Height int
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputFormat: FormatText,
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		Headers:      make(map[string]string),
		MaxBodySize:  DefaultMaxBodySize,
		ScratchBase:  XDGCacheDir(),
		Preview: PreviewConfig{
			Renderer: RendererChafa,
			Width:    DefaultPreviewWidth,
			Height:   DefaultPreviewHeight,
		},
	}
}

// XDGConfigDir returns the XDG config directory for imgscan.
// On Linux: ~/.config/imgscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for imgscan.
// The run-scoped scratch directory is created below it when it exists,
// and below the system temp dir otherwise.
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Target == "" {
		return ErrNoTarget
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	switch c.OutputFormat {
	case FormatText, FormatMarkdown, FormatJSON:
	default:
		return ErrInvalidFormat
	}
	switch c.Preview.Renderer {
	case RendererChafa, RendererBlocks:
	default:
		return ErrInvalidRenderer
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return ErrInvalidPreviewSize
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.ProxyURL != "" && !isValidProxyURL(c.ProxyURL) {
		return ErrInvalidProxy
	}
	return nil
}

func isValidProxyURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	switch u.Scheme {
	case "http", "https", "socks5", "socks5h":
		return true
	default:
		return false
	}
}
