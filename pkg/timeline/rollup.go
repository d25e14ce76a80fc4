package timeline

import "time"

// DeriveCategories attributes the same capped inter-event intervals as
// DeriveUsage, but keyed by the category of each event rather than its
// app, so a browser window titled "Jira" and one titled "HN" can land
// in different buckets. The locked-screen sentinel closes intervals but
// accumulates nothing.
func DeriveCategories(events []FocusEvent, gapCap time.Duration, rs RuleSet) map[string]time.Duration {
	if gapCap <= 0 {
		gapCap = DefaultGapCap
	}

	durations := make(map[string]time.Duration)
	if len(events) == 0 {
		return durations
	}

	if !sortedByTime(events) {
		events = sortCopy(events)
	}

	for i, ev := range events {
		if ev.AppName == LockedScreenApp || i == len(events)-1 {
			continue
		}
		d := events[i+1].Timestamp.Sub(ev.Timestamp)
		if d > gapCap {
			d = gapCap
		}
		durations[rs.Categorize(ev.AppName, ev.WindowTitle)] += d
	}

	return durations
}
