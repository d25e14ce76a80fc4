package timeline

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration for human-readable output, e.g.
// "45s", "12m 30s", "2h 05m".
func FormatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%dh %02dm", secs/3600, (secs%3600)/60)
	}
}
