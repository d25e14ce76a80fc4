package timeline

import (
	"sort"
	"time"
)

// LockedScreenApp is the sentinel app name the capture agent records
// when the screen locks. It terminates the interval of whatever was
// focused before it but never accumulates active time itself.
const LockedScreenApp = "__LOCKEDSCREEN"

// DefaultGapCap bounds the time attributable to a single inter-event
// interval, so an overnight sleep gap does not inflate the last focused
// app by eight hours.
const DefaultGapCap = 30 * time.Minute

// FocusEvent is one focus-change sample as stored for a logical day.
type FocusEvent struct {
	Timestamp   time.Time
	AppName     string
	WindowTitle string
	BrowserURL  string
}

// Usage is the derived activity of a single app within one logical day.
type Usage struct {
	Duration time.Duration
	Events   int
}

// DeriveUsage turns an ordered sequence of focus events for one logical
// day into per-app active time. Each event owns the interval up to its
// successor, capped at gapCap; the final event has no successor within
// the query window and is attributed zero.
//
// Input is expected sorted ascending by timestamp but is re-sorted
// defensively when it is not. Empty or single-event input yields an
// empty or zero-duration result.
func DeriveUsage(events []FocusEvent, gapCap time.Duration) map[string]Usage {
	if gapCap <= 0 {
		gapCap = DefaultGapCap
	}

	usage := make(map[string]Usage)
	if len(events) == 0 {
		return usage
	}

	if !sortedByTime(events) {
		events = sortCopy(events)
	}

	for i, ev := range events {
		if ev.AppName == LockedScreenApp {
			continue
		}

		var d time.Duration
		if i < len(events)-1 {
			d = events[i+1].Timestamp.Sub(ev.Timestamp)
			if d > gapCap {
				d = gapCap
			}
		}

		u := usage[ev.AppName]
		u.Duration += d
		u.Events++
		usage[ev.AppName] = u
	}

	return usage
}

func sortedByTime(events []FocusEvent) bool {
	return sort.SliceIsSorted(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
}

// sortCopy sorts into a copy so callers' slices are never reordered
// under them.
func sortCopy(events []FocusEvent) []FocusEvent {
	sorted := make([]FocusEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// TotalActive sums the derived durations across all apps.
func TotalActive(usage map[string]Usage) time.Duration {
	var total time.Duration
	for _, u := range usage {
		total += u.Duration
	}
	return total
}
