package timeline

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name         string
		ts           time.Time
		boundaryHour int
		want         Date
	}{
		{
			name:         "afternoon stays on its own day",
			ts:           time.Date(2025, 3, 10, 15, 30, 0, 0, loc),
			boundaryHour: 7,
			want:         "2025-03-10",
		},
		{
			name:         "2am belongs to the previous day",
			ts:           time.Date(2025, 3, 10, 2, 0, 0, 0, loc),
			boundaryHour: 7,
			want:         "2025-03-09",
		},
		{
			name:         "exactly at the boundary is the new day",
			ts:           time.Date(2025, 3, 10, 7, 0, 0, 0, loc),
			boundaryHour: 7,
			want:         "2025-03-10",
		},
		{
			name:         "one minute before the boundary is the old day",
			ts:           time.Date(2025, 3, 10, 6, 59, 0, 0, loc),
			boundaryHour: 7,
			want:         "2025-03-09",
		},
		{
			name:         "boundary 0 never rewinds",
			ts:           time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
			boundaryHour: 0,
			want:         "2025-03-10",
		},
		{
			name:         "month rollover",
			ts:           time.Date(2025, 3, 1, 3, 0, 0, 0, loc),
			boundaryHour: 7,
			want:         "2025-02-28",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.ts, tt.boundaryHour, loc)
			if got != tt.want {
				t.Errorf("Resolve() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolveBoundaryProperty(t *testing.T) {
	// For every boundary hour, the instant at exactly that hour resolves
	// to its own calendar date and one minute earlier to the previous.
	loc := time.UTC
	for h := 0; h <= 23; h++ {
		at := time.Date(2025, 6, 15, h, 0, 0, 0, loc)
		if got := Resolve(at, h, loc); got != "2025-06-15" {
			t.Errorf("boundary %d: at-hour resolved to %s, want 2025-06-15", h, got)
		}
		if h > 0 {
			before := at.Add(-time.Minute)
			if got := Resolve(before, h, loc); got != "2025-06-14" {
				t.Errorf("boundary %d: minute-before resolved to %s, want 2025-06-14", h, got)
			}
		}
	}
}

func TestResolveUsesExplicitLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 22:00 UTC on the 9th is 07:00 on the 10th in Tokyo.
	ts := time.Date(2025, 3, 9, 22, 0, 0, 0, time.UTC)
	if got := Resolve(ts, 7, tokyo); got != "2025-03-10" {
		t.Errorf("Tokyo resolve = %s, want 2025-03-10", got)
	}
	if got := Resolve(ts, 7, time.UTC); got != "2025-03-09" {
		t.Errorf("UTC resolve = %s, want 2025-03-09", got)
	}
}

func TestDateHelpers(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.AddDays(-1) != "2025-03-09" {
		t.Errorf("AddDays(-1) = %s", d.AddDays(-1))
	}
	if !d.Before("2025-03-11") || d.After("2025-03-11") {
		t.Error("comparison helpers disagree with chronology")
	}
	if got := DaysBetween("2025-03-01", d); got != 9 {
		t.Errorf("DaysBetween = %d, want 9", got)
	}
	if _, err := ParseDate("10-03-2025"); err == nil {
		t.Error("expected error for malformed date")
	}
}
