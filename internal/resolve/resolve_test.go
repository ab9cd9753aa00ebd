package resolve

import (
	"errors"
	"testing"
)

// TestNew tests Resolver construction.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pageURL    string
		wantOrigin string
		wantDir    string
		wantErr    bool
	}{
		{name: "nested path", pageURL: "https://site.test/x/y", wantOrigin: "https://site.test", wantDir: "https://site.test/x/"},
		{name: "trailing slash", pageURL: "https://site.test/x/y/", wantOrigin: "https://site.test", wantDir: "https://site.test/x/"},
		{name: "root", pageURL: "https://site.test/", wantOrigin: "https://site.test", wantDir: "https://site.test/"},
		{name: "no path", pageURL: "http://site.test", wantOrigin: "http://site.test", wantDir: "http://site.test/"},
		{name: "port is kept", pageURL: "http://127.0.0.1:8080/blog/post", wantOrigin: "http://127.0.0.1:8080", wantDir: "http://127.0.0.1:8080/blog/"},
		{name: "query is ignored", pageURL: "https://site.test/x?p=1", wantOrigin: "https://site.test", wantDir: "https://site.test/x/"},
		{name: "relative page URL", pageURL: "site.test/x", wantErr: true},
		{name: "ftp page URL", pageURL: "ftp://site.test/x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := New(tt.pageURL)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPageURL) {
					t.Fatalf("expected ErrInvalidPageURL, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.origin != tt.wantOrigin {
				t.Errorf("origin: got %q, expected %q", r.origin, tt.wantOrigin)
			}
			if r.dir != tt.wantDir {
				t.Errorf("dir: got %q, expected %q", r.dir, tt.wantDir)
			}
		})
	}
}

// TestResolve tests each resolution rule.
func TestResolve(t *testing.T) {
	t.Parallel()

	r, err := New("https://site.test/x/y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "protocol relative", raw: "//cdn.test/a.png", want: "https://cdn.test/a.png"},
		{name: "root relative", raw: "/a.png", want: "https://site.test/a.png"},
		{name: "root relative nested", raw: "/img/b/c.jpg?w=1", want: "https://site.test/img/b/c.jpg?w=1"},
		{name: "absolute https", raw: "https://other.test/p.gif", want: "https://other.test/p.gif"},
		{name: "absolute http", raw: "http://other.test/p.gif", want: "http://other.test/p.gif"},
		{name: "uppercase scheme is lowered", raw: "HTTPS://other.test/p.gif", want: "https://other.test/p.gif"},
		{name: "path relative", raw: "pic.gif", want: "https://site.test/x/pic.gif"},
		{name: "path relative nested", raw: "img/pic.gif", want: "https://site.test/x/img/pic.gif"},
		{name: "dot segments are not interpreted", raw: "../pic.gif", want: "https://site.test/x/../pic.gif"},
		{name: "surrounding whitespace", raw: "  /a.png\n", want: "https://site.test/a.png"},
		{name: "empty", raw: "", wantErr: ErrEmptyCandidate},
		{name: "whitespace only", raw: " \t ", wantErr: ErrEmptyCandidate},
		{name: "data URI", raw: "data:image/png;base64,iVBORw0KGgo=", wantErr: ErrUnresolvable},
		{name: "javascript", raw: "javascript:void(0)", wantErr: ErrUnresolvable},
		{name: "blob", raw: "blob:https://site.test/uuid", wantErr: ErrUnresolvable},
		{name: "mailto", raw: "mailto:a@site.test", wantErr: ErrUnresolvable},
		{name: "bare double slash", raw: "//", wantErr: ErrUnresolvable},
		{name: "http without host", raw: "http://", wantErr: ErrUnresolvable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Resolve(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v (result %q)", tt.wantErr, err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

// TestResolveProperties checks the rule-level properties over several pages.
func TestResolveProperties(t *testing.T) {
	t.Parallel()

	pages := []string{"https://site.test/x/y", "http://site.test/", "https://a.test:8443/deep/er/path/"}
	candidates := []string{"/a.png", "/b/c.jpg", "/", "/x?y=z"}

	for _, page := range pages {
		r, err := New(page)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", page, err)
		}

		for _, c := range candidates {
			got, err := r.Resolve(c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != r.origin+c {
				t.Errorf("root relative %q on %q: got %q", c, page, got)
			}

			pr := "/" + c
			got, err = r.Resolve(pr)
			if len(pr) > 2 && pr[2] != '/' {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != "https:"+pr {
					t.Errorf("protocol relative %q on %q: got %q", pr, page, got)
				}
			}
		}

		for _, abs := range []string{"https://cdn.test/a.png", "http://cdn.test/b", "https://cdn.test/c?d=e#f"} {
			got, err := r.Resolve(abs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != abs {
				t.Errorf("absolute %q should be unchanged, got %q", abs, got)
			}
		}
	}
}

// TestEnsureScheme tests target URL normalization.
func TestEnsureScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    string
		want      string
		wantAdded bool
	}{
		{name: "https kept", target: "https://site.test", want: "https://site.test"},
		{name: "http kept", target: "http://site.test/x", want: "http://site.test/x"},
		{name: "bare host", target: "site.test", want: "https://site.test", wantAdded: true},
		{name: "host and path", target: "site.test/x/y", want: "https://site.test/x/y", wantAdded: true},
		{name: "host with port", target: "localhost:8080/x", want: "https://localhost:8080/x", wantAdded: true},
		{name: "protocol relative", target: "//site.test", want: "https://site.test", wantAdded: true},
		{name: "other scheme untouched", target: "ftp://site.test", want: "ftp://site.test"},
		{name: "trimmed", target: "  site.test ", want: "https://site.test", wantAdded: true},
		{name: "empty", target: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, added := EnsureScheme(tt.target)
			if got != tt.want || added != tt.wantAdded {
				t.Errorf("got (%q, %v), expected (%q, %v)", got, added, tt.want, tt.wantAdded)
			}
		})
	}
}
