package timeline

import "time"

// DefaultBoundaryHour is the hour at which a new logical day starts.
// Activity between midnight and this hour counts towards the previous
// calendar day, so a 2am coding session stays attached to the evening
// it belongs to.
const DefaultBoundaryHour = 7

// Resolve maps an instant to its logical day. The timezone is an
// explicit parameter: write-time tagging and read-time range filtering
// must use the same location or stored tags and derived ranges would
// disagree.
//
// An instant exactly at boundaryHour resolves to its own calendar day;
// one minute earlier resolves to the previous one. boundaryHour is
// assumed valid (0-23); it is enforced when settings are written, not
// here.
func Resolve(ts time.Time, boundaryHour int, loc *time.Location) Date {
	local := ts.In(loc)
	if local.Hour() < boundaryHour {
		local = local.AddDate(0, 0, -1)
	}
	return DateOf(local)
}

// Today returns the current logical day.
func Today(boundaryHour int, loc *time.Location) Date {
	return Resolve(time.Now(), boundaryHour, loc)
}
