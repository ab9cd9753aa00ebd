package model

// ResultSet is the ordered sequence of accepted images of one run.
// Insertion order is kept and an exact repeat of a URL is suppressed.
// It only grows; it is not safe for concurrent use.
type ResultSet struct {
	images []Image
	index  map[string]struct{}
}

// NewResultSet returns an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{index: make(map[string]struct{})}
}

// Add appends img unless an image with the same URL is already present.
// It reports whether img was appended.
func (r *ResultSet) Add(img Image) bool {
	if _, ok := r.index[img.URL]; ok {
		return false
	}
	r.index[img.URL] = struct{}{}
	r.images = append(r.images, img)
	return true
}

// Contains reports whether url is in the set.
func (r *ResultSet) Contains(url string) bool {
	_, ok := r.index[url]
	return ok
}

// Len returns the number of images.
func (r *ResultSet) Len() int {
	return len(r.images)
}

// Images returns a copy of the images in insertion order.
func (r *ResultSet) Images() []Image {
	out := make([]Image, len(r.images))
	copy(out, r.images)
	return out
}

// URLs returns the image URLs in insertion order.
func (r *ResultSet) URLs() []string {
	out := make([]string, 0, len(r.images))
	for _, img := range r.images {
		out = append(out, img.URL)
	}
	return out
}

// Deduplicator remembers every URL it has been shown.
// Comparison is exact string equality; no normalization happens.
type Deduplicator struct {
	seen map[string]struct{}
}

// NewDeduplicator returns a Deduplicator with nothing seen.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]struct{})}
}

// First records url and reports whether this is the first time it was seen.
func (d *Deduplicator) First(url string) bool {
	if _, ok := d.seen[url]; ok {
		return false
	}
	d.seen[url] = struct{}{}
	return true
}

// Dedup returns urls with exact repeats removed, preserving first-seen order.
// Dedup(Dedup(x)) equals Dedup(x).
func Dedup(urls []string) []string {
	d := NewDeduplicator()
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if d.First(u) {
			out = append(out, u)
		}
	}
	return out
}
