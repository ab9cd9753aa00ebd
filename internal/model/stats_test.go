package model

import (
	"strings"
	"testing"
	"time"
)

// TestStatsString tests the summary line.
func TestStatsString(t *testing.T) {
	t.Parallel()

	s := Stats{Raw: 9, Unique: 7, Duplicates: 1, Unresolvable: 2, Rejected: 1, Invalid: 1, Accepted: 2}
	got := s.String()

	for _, want := range []string{"2 images", "9 candidates", "7 unique", "1 duplicate", "2 unresolvable", "1 rejected", "1 invalid"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q should contain %q", got, want)
		}
	}
}

// TestNewScan tests the Scan constructor.
func TestNewScan(t *testing.T) {
	t.Parallel()

	s := NewScan("https://site.test/")
	if s.PageURL != "https://site.test/" {
		t.Errorf("unexpected PageURL %q", s.PageURL)
	}
	if s.Results == nil || s.Results.Len() != 0 {
		t.Error("expected empty result set")
	}
	if s.Duration() != 0 {
		t.Error("duration should be zero before FinishedAt is set")
	}

	s.FinishedAt = s.StartedAt.Add(2 * time.Second)
	if s.Duration() != 2*time.Second {
		t.Errorf("expected 2s, got %v", s.Duration())
	}
}
