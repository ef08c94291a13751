package domain

import (
	"math"
	"time"
)

// HourInterval is a half-open [Start, End) range of local day hours.
type HourInterval struct {
	Start int
	End   int
}

// Intersects reports whether two half-open hour intervals overlap.
// Touching boundaries do not count as overlap.
func (i HourInterval) Intersects(other HourInterval) bool {
	return i.Start < other.End && i.End > other.Start
}

// DayAvailability is the derived availability picture for one yacht
// and one calendar date. Recomputed on every request, never persisted.
type DayAvailability struct {
	Date time.Time

	// OpenHours is the union of hours covered by at least one valid
	// start across all durations. Coarse UI affordance only.
	OpenHours []int

	// ValidStartsByDuration maps each bookable duration to the sorted
	// list of legal start hours for that exact duration on this date.
	ValidStartsByDuration map[int][]int
}

// HasAnyStart returns true if at least one duration has a legal start
func (d DayAvailability) HasAnyStart() bool {
	for _, starts := range d.ValidStartsByDuration {
		if len(starts) > 0 {
			return true
		}
	}
	return false
}

// ComputeDay computes the availability for one date given the policy
// and the reservations whose buffer-expanded intervals may touch that
// date. Pure function: no store access, no side effects.
//
// reservations are interpreted in loc, the yacht's local timezone;
// cancelled reservations are ignored.
func ComputeDay(p Policy, date time.Time, loc *time.Location, reservations []*Reservation) DayAvailability {
	blocked := blockedIntervals(p, date, loc, reservations)

	validStarts := make(map[int][]int, p.MaxDurationHours-p.MinDurationHours+1)
	var open [24]bool

	for _, d := range p.Durations() {
		starts := make([]int, 0, p.DayEndHour-p.DayStartHour)

		for start := p.DayStartHour; start+d <= p.DayEndHour; start++ {
			if !p.IsStartAllowed(d, start) {
				continue
			}

			candidate := HourInterval{Start: start, End: start + d}
			if intersectsAny(candidate, blocked) {
				continue
			}

			starts = append(starts, start)
			for h := candidate.Start; h < candidate.End && h < 24; h++ {
				open[h] = true
			}
		}

		// Candidate hours ascend, so the list is already sorted.
		validStarts[d] = starts
	}

	openHours := make([]int, 0, 24)
	for h, isOpen := range open {
		if isOpen {
			openHours = append(openHours, h)
		}
	}

	return DayAvailability{
		Date:                  date,
		OpenHours:             openHours,
		ValidStartsByDuration: validStarts,
	}
}

// blockedIntervals converts each booked reservation into a
// buffer-expanded hour interval on the given date, clamped to [0, 24).
// Reservations from adjacent dates are kept when their buffer spills
// into this date.
func blockedIntervals(p Policy, date time.Time, loc *time.Location, reservations []*Reservation) []HourInterval {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	buffer := p.InterBookingBufferHours

	intervals := make([]HourInterval, 0, len(reservations))
	for _, r := range reservations {
		if !r.IsBooked() {
			continue
		}

		startH := int(math.Floor(r.StartAt.In(loc).Sub(midnight).Hours())) - buffer
		endH := int(math.Ceil(r.EndAt.In(loc).Sub(midnight).Hours())) + buffer

		if startH < 0 {
			startH = 0
		}
		if endH > 24 {
			endH = 24
		}
		if startH >= endH {
			continue
		}

		intervals = append(intervals, HourInterval{Start: startH, End: endH})
	}

	return intervals
}

func intersectsAny(candidate HourInterval, blocked []HourInterval) bool {
	for _, b := range blocked {
		if candidate.Intersects(b) {
			return true
		}
	}
	return false
}
