package timeslot

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is a booked span on a single day's time axis, expressed in
// minutes since midnight. The calendar date is not part of the interval:
// callers compare only reservations they already scoped to one date.
type Interval struct {
	StartMinutes int
	EndMinutes   int
}

// NewInterval builds an interval from a "HH:MM" start time and a duration
// in hours. Fractional hours are supported ("1.5 hrs" rentals).
func NewInterval(startTime string, durationHours float64) (Interval, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return Interval{}, err
	}

	return Interval{
		StartMinutes: start,
		EndMinutes:   start + int(durationHours*60),
	}, nil
}

// Overlaps reports whether two half-open intervals [start, end) intersect.
// Back-to-back slots, where one ends exactly when the other starts, do
// not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.StartMinutes < other.EndMinutes && i.EndMinutes > other.StartMinutes
}

// HasConflict reports whether the candidate interval overlaps any of the
// existing intervals. The caller pre-filters existing reservations by
// date and by qualifying status; this check is a single O(n) pass over
// that set.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// parseClock converts "HH:MM" (or "HH:MM:SS", as Postgres returns time
// columns) to minutes since midnight.
func parseClock(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}

	return hours*60 + minutes, nil
}
