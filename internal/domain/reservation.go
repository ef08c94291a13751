package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusBooked    ReservationStatus = "booked"
	StatusCancelled ReservationStatus = "cancelled"
)

// ReservationSource identifies where a reservation came from
type ReservationSource string

const (
	SourceWeb   ReservationSource = "web"
	SourceAdmin ReservationSource = "admin"
	// SourceLegacy marks reservations imported from the old half-day
	// (am/pm) calendar. Their start/end instants were materialized to
	// the full half-day span at import time, so the calculator treats
	// them exactly like hour-precise bookings.
	SourceLegacy ReservationSource = "legacy"
)

// Reservation represents an accepted charter booking for a yacht.
// BookingUID is the current public identifier; every reschedule
// rotates it and appends the prior UID to PriorUIDs.
type Reservation struct {
	ID         int64
	BookingUID string
	PriorUIDs  []string
	YachtID    int64
	StartAt    time.Time // UTC instant
	EndAt      time.Time // UTC instant

	// StartAt/EndAt expanded by half the inter-booking buffer on each
	// side. Two guard intervals overlap exactly when the raw gap
	// between two trips is smaller than the full buffer, which is what
	// the store's exclusion constraint enforces.
	GuardStart time.Time
	GuardEnd   time.Time

	Status ReservationStatus
	Source ReservationSource

	AttendeeEmail string
	AttendeeName  string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBooked returns true if the reservation still occupies calendar time
func (r *Reservation) IsBooked() bool {
	return r.Status == StatusBooked
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// IsOwnedBy returns true if the reservation belongs to the given attendee
func (r *Reservation) IsOwnedBy(email string) bool {
	return r.AttendeeEmail == email
}

// ApplyGuard fills GuardStart/GuardEnd from StartAt/EndAt and the
// policy's inter-booking buffer (half on each side).
func (r *Reservation) ApplyGuard(p Policy) {
	half := time.Duration(p.InterBookingBufferHours) * time.Hour / 2
	r.GuardStart = r.StartAt.Add(-half)
	r.GuardEnd = r.EndAt.Add(half)
}

// GuardIntersects reports whether two reservations violate the
// inter-booking buffer, i.e. their guard intervals overlap.
func (r *Reservation) GuardIntersects(other *Reservation) bool {
	return r.GuardStart.Before(other.GuardEnd) && r.GuardEnd.After(other.GuardStart)
}

// YachtBookingsFilter filters reservation range queries for a yacht.
// From/To match reservations whose guard interval overlaps [From, To).
type YachtBookingsFilter struct {
	YachtID          int64
	From             *time.Time
	To               *time.Time
	IncludeCancelled bool
	ExcludeUID       string // reservation to ignore (the one being rescheduled)
}
