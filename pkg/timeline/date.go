// Package timeline implements the aggregation core of the activity
// logger: logical-day resolution, per-app duration derivation and
// category classification. Everything here is pure computation over
// values supplied by the caller; storage and settings live elsewhere.
package timeline

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a logical calendar day in YYYY-MM-DD form. The string form is
// chosen so that lexicographic order equals chronological order, which
// lets dates be compared and range-filtered directly.
type Date string

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the date as midnight UTC. All persistence of logical
// dates goes through this so that stored values compare equal
// regardless of which machine wrote them.
func (d Date) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d < other
}

func (d Date) After(other Date) bool {
	return d > other
}

func (d Date) String() string {
	return string(d)
}

// DaysBetween returns the number of whole days from d to other
// (positive when other is later).
func DaysBetween(d, other Date) int {
	return int(other.Time().Sub(d.Time()) / (24 * time.Hour))
}
