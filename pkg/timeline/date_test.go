package timeline

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2026-03-10", "2026-03-10", false},
		{"2026-3-10", "", true},
		{"10-03-2026", "", true},
		{"yesterday", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := Date("2026-03-10")

	if got := d.AddDays(-2); got != "2026-03-08" {
		t.Errorf("AddDays(-2) = %q", got)
	}
	if got := d.AddDays(22); got != "2026-04-01" {
		t.Errorf("AddDays(22) = %q, expected month rollover", got)
	}
	if !Date("2026-03-09").Before(d) {
		t.Error("2026-03-09 should sort before 2026-03-10")
	}
	if got := DaysBetween(Date("2026-03-01"), Date("2026-03-10")); got != 9 {
		t.Errorf("DaysBetween = %d, want 9", got)
	}
}

func TestDateOfUsesOwnLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 23:30 in Tokyo is still the 10th there, even though UTC has
	// moved on to the 10th 14:30 (same calendar day) or back.
	ts := time.Date(2026, 3, 10, 23, 30, 0, 0, tokyo)
	if got := DateOf(ts); got != "2026-03-10" {
		t.Errorf("DateOf = %q", got)
	}
	if got := DateOf(ts.UTC()); got != "2026-03-10" {
		t.Errorf("DateOf(UTC) = %q", got)
	}
}
