package config

// File represents the YAML configuration file.
// Every field is optional; zero values leave the built-in default alone.
type File struct {
	// UserAgent overrides DefaultUserAgent.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Timeout is in seconds, like the -t flag.
	Timeout int `yaml:"timeout,omitempty"`

	// Headers are sent with every request, e.g. a Cookie for pages
	// behind a login.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Proxy routes every request through the given proxy URL.
	Proxy string `yaml:"proxy,omitempty"`

	// IncludeMeta turns on meta/icon/data-src extraction by default.
	IncludeMeta bool `yaml:"include_meta,omitempty"`

	// ScratchDir overrides where the run-scoped scratch directory is
	// created (default: the XDG cache dir).
	ScratchDir string `yaml:"scratch_dir,omitempty"`

	// Preview holds renderer settings.
	Preview FilePreview `yaml:"preview,omitempty"`
}

// FilePreview is the preview section of the configuration file.
type FilePreview struct {
	Renderer string `yaml:"renderer,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	Height   int    `yaml:"height,omitempty"`
}

// Apply copies the non-zero values of the file onto cfg.
// Headers are merged; file headers override existing keys.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if f.Timeout > 0 {
		cfg.Timeout = secondsToDuration(f.Timeout)
	}
	if len(f.Headers) > 0 {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string, len(f.Headers))
		}
		for k, v := range f.Headers {
			cfg.Headers[k] = v
		}
	}
	if f.Proxy != "" {
		cfg.ProxyURL = f.Proxy
	}
	if f.IncludeMeta {
		cfg.IncludeMeta = true
	}
	if f.ScratchDir != "" {
		cfg.ScratchBase = f.ScratchDir
	}
	if f.Preview.Renderer != "" {
		cfg.Preview.Renderer = f.Preview.Renderer
	}
	if f.Preview.Width > 0 {
		cfg.Preview.Width = f.Preview.Width
	}
	if f.Preview.Height > 0 {
		cfg.Preview.Height = f.Preview.Height
	}
}
