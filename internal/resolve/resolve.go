package resolve

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// schemePattern matches a leading URI scheme followed by a colon.
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// Resolver resolves raw candidates against one page URL.
// It is immutable after New and safe to reuse for every candidate of a run.
type Resolver struct {
	origin string // scheme://host
	dir    string // scheme://host/<first segment>/ or scheme://host/
}

// New returns a Resolver for pageURL, which must be absolute http(s).
func New(pageURL string) (*Resolver, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPageURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPageURL, pageURL)
	}

	origin := u.Scheme + "://" + u.Host
	dir := origin + "/"
	if first := firstSegment(u.EscapedPath()); first != "" {
		dir = origin + "/" + first + "/"
	}

	return &Resolver{origin: origin, dir: dir}, nil
}

// Resolve converts one raw candidate to an absolute URL.
// The candidate is trimmed first. Candidates with a scheme other than
// http or https yield ErrUnresolvable.
func (r *Resolver) Resolve(raw string) (string, error) {
	c := strings.TrimSpace(raw)
	if c == "" {
		return "", ErrEmptyCandidate
	}

	switch {
	case strings.HasPrefix(c, "//"):
		if len(c) == 2 || c[2] == '/' {
			return "", fmt.Errorf("%w: %q has no host", ErrUnresolvable, c)
		}
		return "https:" + c, nil
	case strings.HasPrefix(c, "/"):
		return r.origin + c, nil
	}

	if m := schemePattern.FindString(c); m != "" {
		scheme := strings.ToLower(strings.TrimSuffix(m, ":"))
		rest := c[len(m):]
		if (scheme == "http" || scheme == "https") && strings.HasPrefix(rest, "//") && len(rest) > 2 {
			return scheme + ":" + rest, nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnresolvable, truncate(c, 40))
	}

	return r.dir + c, nil
}

// EnsureScheme prefixes target with https:// when it carries no scheme.
// added reports whether the prefix was applied so the caller can warn.
// A target with a non-http scheme is returned as is and rejected later
// by the fetcher.
func EnsureScheme(target string) (normalized string, added bool) {
	t := strings.TrimSpace(target)
	if t == "" {
		return "", false
	}
	if m := schemePattern.FindString(t); m != "" && strings.HasPrefix(t[len(m):], "//") {
		return t, false
	}
	return "https://" + strings.TrimPrefix(t, "//"), true
}

func firstSegment(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
