package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewStatistics(t *testing.T) {
	if _, err := NewStatistics(-1, 0); err == nil {
		t.Error("negative votes must be rejected")
	}
	if _, err := NewStatistics(0, -1); err == nil {
		t.Error("negative count must be rejected")
	}

	stats, err := NewStatistics(5, 12)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Votes() != 5 || stats.Servers() != 12 || stats.Members() != 12 {
		t.Errorf("stats = votes %d count %d", stats.Votes(), stats.Count())
	}

	var invalid *InvalidArgumentError
	_, err = stats.WithVotes(-3)
	if !errors.As(err, &invalid) {
		t.Errorf("WithVotes(-3) error = %v, want InvalidArgumentError", err)
	}
}

func TestNewTimestamps(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	if _, err := NewTimestamps(time.Time{}, created); err == nil {
		t.Error("zero created_at must be rejected")
	}

	ts, err := NewTimestamps(created, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if !ts.BumpedAt().Equal(created) {
		t.Error("zero bumped_at should default to created_at")
	}

	bumped, err := ts.WithBump(created.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !bumped.CreatedAt().Equal(created) {
		t.Error("WithBump must not move created_at")
	}
}

func TestNewURL(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "https://example.com/a.png", want: "https://example.com/a.png"},
		{input: "http://example.com", want: "http://example.com"},
		{input: "  https://example.com  ", want: "https://example.com"},
		{input: "ftp://example.com", wantErr: true},
		{input: "example.com", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		u, err := NewURL(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewURL(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewURL(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if u.Value() != tt.want {
			t.Errorf("NewURL(%q) = %q, want %q", tt.input, u.Value(), tt.want)
		}
	}
}

func TestStatusFromString(t *testing.T) {
	if StatusFromString("ONLINE") != StatusOnline {
		t.Error("status parsing should be case insensitive")
	}
	if StatusFromString("gone") != StatusUnknown {
		t.Error("unknown statuses fall back to unknown")
	}
	if !StatusIdle.IsAvailable() || StatusIdle.IsOnline() {
		t.Error("idle is available but not online")
	}
	if StatusDND.IsAvailable() {
		t.Error("dnd is not available")
	}
}

func TestSortOptionFromString(t *testing.T) {
	if SortOptionFromString("votes") != SortVotes {
		t.Error("votes should parse")
	}
	if SortOptionFromString("") != SortNewest {
		t.Error("empty sort falls back to newest")
	}
	if SortOptionFromString("popularity") != SortNewest {
		t.Error("unknown sort falls back to newest")
	}
}

func TestEntityEqualByID(t *testing.T) {
	a := testBot(t, 42, "A", false)
	b := testBot(t, 42, "Completely different", false)
	c := testBot(t, 43, "A", false)

	if !a.Equal(b) {
		t.Error("bots with the same id are the same entity")
	}
	if a.Equal(c) {
		t.Error("bots with different ids are different entities")
	}
	if a.Equal(nil) {
		t.Error("nil is never equal")
	}
}
