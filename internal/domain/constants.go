package domain

// Default charter policy values
const (
	DefaultDayStartHour            = 6
	DefaultDayEndHour              = 18
	DefaultMorningEndHour          = 13
	DefaultBufferStartHour         = 13
	DefaultBufferEndHour           = 15
	DefaultAfternoonStartHour      = 15
	DefaultMinDurationHours        = 3
	DefaultMaxDurationHours        = 8
	DefaultInterBookingBufferHours = 2
	DefaultTimeStepMinutes         = 60
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxAttendeeNameLength       = 120
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
