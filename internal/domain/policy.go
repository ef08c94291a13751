package domain

// Policy holds the immutable charter availability constants.
// Loaded once at startup and never mutated afterwards.
type Policy struct {
	DayStartHour            int // first hour a trip may start (operating window open)
	DayEndHour              int // hour by which every trip must end (operating window close)
	MorningEndHour          int // morning trips must end at or before this hour
	BufferStartHour         int // midday buffer window start
	BufferEndHour           int // midday buffer window end
	AfternoonStartHour      int // afternoon trips start at or after this hour
	MinDurationHours        int
	MaxDurationHours        int
	InterBookingBufferHours int // mandatory idle hours between consecutive trips
	TimeStepMinutes         int // scheduling granularity, fixed at 60
}

// DefaultPolicy returns the production charter policy.
func DefaultPolicy() Policy {
	return Policy{
		DayStartHour:            DefaultDayStartHour,
		DayEndHour:              DefaultDayEndHour,
		MorningEndHour:          DefaultMorningEndHour,
		BufferStartHour:         DefaultBufferStartHour,
		BufferEndHour:           DefaultBufferEndHour,
		AfternoonStartHour:      DefaultAfternoonStartHour,
		MinDurationHours:        DefaultMinDurationHours,
		MaxDurationHours:        DefaultMaxDurationHours,
		InterBookingBufferHours: DefaultInterBookingBufferHours,
		TimeStepMinutes:         DefaultTimeStepMinutes,
	}
}

// IsStartAllowed reports whether a trip of durationHours starting at
// startHour is legal under the policy alone, ignoring existing
// reservations. This is the single shared validator consumed by both
// the availability calculator and commit-time revalidation.
//
// Short trips (3-4h) must not straddle the midday buffer: a 3-hour
// trip fits entirely in the morning or starts in the afternoon, a
// 4-hour trip is morning-only. Trips of 5+ hours may straddle the
// buffer. The asymmetry is intentional policy, confirmed with the
// charter operators; do not unify the branches.
func (p Policy) IsStartAllowed(durationHours, startHour int) bool {
	if durationHours < p.MinDurationHours || durationHours > p.MaxDurationHours {
		return false
	}

	// Duration must align with the scheduling granularity.
	if p.TimeStepMinutes <= 0 || (durationHours*60)%p.TimeStepMinutes != 0 {
		return false
	}

	if startHour < p.DayStartHour || startHour+durationHours > p.DayEndHour {
		return false
	}

	switch {
	case durationHours == 3:
		return startHour+3 <= p.MorningEndHour || startHour >= p.AfternoonStartHour
	case durationHours == 4:
		return startHour+4 <= p.MorningEndHour
	default:
		// 5+ hours: any start within the operating window.
		return true
	}
}

// ShiftFit classifies a trip relative to the midday buffer.
type ShiftFit string

const (
	ShiftMorning   ShiftFit = "morning"
	ShiftAfternoon ShiftFit = "afternoon"
	ShiftFlexible  ShiftFit = "flexible"
)

// Classify returns the shift fit for a trip spanning [startHour, endHour).
func (p Policy) Classify(startHour, endHour int) ShiftFit {
	if endHour <= p.MorningEndHour {
		return ShiftMorning
	}
	if startHour >= p.AfternoonStartHour {
		return ShiftAfternoon
	}
	return ShiftFlexible
}

// Durations returns every bookable duration in ascending order.
func (p Policy) Durations() []int {
	durations := make([]int, 0, p.MaxDurationHours-p.MinDurationHours+1)
	for d := p.MinDurationHours; d <= p.MaxDurationHours; d++ {
		durations = append(durations, d)
	}
	return durations
}
