package reschedule_booking

import (
	"fmt"
	"net/mail"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingUID == "" {
		return fmt.Errorf("%w: bookingUid is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartHour < 0 || req.StartHour > 23 {
		return fmt.Errorf("%w: startHour must be within [0, 23]", ErrInvalidInput)
	}

	if req.DurationHours <= 0 {
		return fmt.Errorf("%w: durationHours must be positive", ErrInvalidInput)
	}

	if req.ActorEmail == "" {
		return fmt.Errorf("%w: actorEmail is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.ActorEmail); err != nil {
		return fmt.Errorf("%w: actorEmail is not a valid email address", ErrInvalidInput)
	}

	return nil
}
