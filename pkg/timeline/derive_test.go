package timeline

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestDeriveUsage(t *testing.T) {
	events := []FocusEvent{
		{Timestamp: at(9, 0), AppName: "Chrome"},
		{Timestamp: at(9, 5), AppName: "VSCode"},
		{Timestamp: at(9, 40), AppName: "Chrome"},
	}

	usage := DeriveUsage(events, 30*time.Minute)

	// Chrome: 5m for the first interval, 0 for the final event.
	if got := usage["Chrome"].Duration; got != 5*time.Minute {
		t.Errorf("Chrome duration = %v, want 5m", got)
	}
	if got := usage["Chrome"].Events; got != 2 {
		t.Errorf("Chrome events = %d, want 2", got)
	}
	// VSCode: 35m interval capped to the 30m gap cap.
	if got := usage["VSCode"].Duration; got != 30*time.Minute {
		t.Errorf("VSCode duration = %v, want 30m (capped)", got)
	}
}

func TestDeriveUsageLockedScreen(t *testing.T) {
	events := []FocusEvent{
		{Timestamp: at(9, 0), AppName: "VSCode"},
		{Timestamp: at(9, 10), AppName: LockedScreenApp},
		{Timestamp: at(9, 50), AppName: "Chrome"},
		{Timestamp: at(9, 55), AppName: "VSCode"},
	}

	usage := DeriveUsage(events, 30*time.Minute)

	if _, ok := usage[LockedScreenApp]; ok {
		t.Error("locked-screen sentinel must not appear in usage")
	}
	// The sentinel still closes VSCode's first interval at 10m.
	if got := usage["VSCode"].Duration; got != 10*time.Minute {
		t.Errorf("VSCode duration = %v, want 10m", got)
	}
	if got := usage["Chrome"].Duration; got != 5*time.Minute {
		t.Errorf("Chrome duration = %v, want 5m", got)
	}
}

func TestDeriveUsageUnsortedInput(t *testing.T) {
	events := []FocusEvent{
		{Timestamp: at(9, 40), AppName: "Chrome"},
		{Timestamp: at(9, 0), AppName: "Chrome"},
		{Timestamp: at(9, 5), AppName: "VSCode"},
	}

	usage := DeriveUsage(events, 30*time.Minute)

	if got := usage["Chrome"].Duration; got != 5*time.Minute {
		t.Errorf("Chrome duration = %v, want 5m after defensive sort", got)
	}
	if got := usage["VSCode"].Duration; got != 30*time.Minute {
		t.Errorf("VSCode duration = %v, want 30m after defensive sort", got)
	}
	// Caller's slice must not be reordered.
	if !events[0].Timestamp.Equal(at(9, 40)) {
		t.Error("input slice was mutated")
	}
}

func TestDeriveUsageDegenerateInput(t *testing.T) {
	if got := DeriveUsage(nil, DefaultGapCap); len(got) != 0 {
		t.Errorf("nil input: got %d entries", len(got))
	}

	single := []FocusEvent{{Timestamp: at(12, 0), AppName: "Slack"}}
	usage := DeriveUsage(single, DefaultGapCap)
	if got := usage["Slack"]; got.Duration != 0 || got.Events != 1 {
		t.Errorf("single event: got %+v, want zero duration and one event", got)
	}
}

func TestTotalActive(t *testing.T) {
	usage := map[string]Usage{
		"Chrome": {Duration: 5 * time.Minute},
		"VSCode": {Duration: 30 * time.Minute},
	}
	if got := TotalActive(usage); got != 35*time.Minute {
		t.Errorf("TotalActive = %v, want 35m", got)
	}
}
