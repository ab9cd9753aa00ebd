package model

import (
	"slices"
	"testing"
)

// TestResultSetAdd tests insertion order and repeat suppression.
func TestResultSetAdd(t *testing.T) {
	t.Parallel()

	rs := NewResultSet()
	if !rs.Add(Image{URL: "https://site.test/b.png"}) {
		t.Fatal("first add should succeed")
	}
	if !rs.Add(Image{URL: "https://site.test/a.png"}) {
		t.Fatal("second distinct add should succeed")
	}
	if rs.Add(Image{URL: "https://site.test/b.png", Raw: "other"}) {
		t.Error("exact repeat should be suppressed")
	}

	want := []string{"https://site.test/b.png", "https://site.test/a.png"}
	if got := rs.URLs(); !slices.Equal(got, want) {
		t.Errorf("got %v, expected %v", got, want)
	}
	if rs.Len() != 2 {
		t.Errorf("expected 2 images, got %d", rs.Len())
	}
	if !rs.Contains("https://site.test/a.png") {
		t.Error("expected Contains to find a.png")
	}
	if rs.Images()[0].Raw != "" {
		t.Error("suppressed repeat must not overwrite the first entry")
	}
}

// TestResultSetImagesIsCopy tests that callers cannot mutate the set.
func TestResultSetImagesIsCopy(t *testing.T) {
	t.Parallel()

	rs := NewResultSet()
	rs.Add(Image{URL: "https://site.test/a.png"})

	imgs := rs.Images()
	imgs[0].URL = "mutated"

	if rs.URLs()[0] != "https://site.test/a.png" {
		t.Error("Images should return a copy")
	}
}

// TestDedup tests exact-match deduplication.
func TestDedup(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "empty", input: nil, expected: []string{}},
		{name: "no repeats", input: []string{"a", "b"}, expected: []string{"a", "b"}},
		{name: "keeps first-seen order", input: []string{"b", "a", "b", "c", "a"}, expected: []string{"b", "a", "c"}},
		{name: "case sensitive", input: []string{"A.png", "a.png"}, expected: []string{"A.png", "a.png"}},
		{
			name:     "no normalization",
			input:    []string{"https://site.test/a.png", "https://site.test//a.png"},
			expected: []string{"https://site.test/a.png", "https://site.test//a.png"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			once := Dedup(tc.input)
			if !slices.Equal(once, tc.expected) {
				t.Errorf("got %v, expected %v", once, tc.expected)
			}
			if twice := Dedup(once); !slices.Equal(twice, once) {
				t.Errorf("dedup is not idempotent: %v then %v", once, twice)
			}
		})
	}
}

// TestDeduplicatorFirst tests the seen set.
func TestDeduplicatorFirst(t *testing.T) {
	t.Parallel()

	d := NewDeduplicator()
	if !d.First("x") {
		t.Error("first call should report true")
	}
	if d.First("x") {
		t.Error("second call should report false")
	}
	if !d.First("y") {
		t.Error("other value should report true")
	}
}
