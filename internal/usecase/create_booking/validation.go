package create_booking

import (
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.YachtSlug == "" {
		return fmt.Errorf("%w: yachtSlug is required", ErrInvalidInput)
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

	if req.AttendeeEmail == "" {
		return fmt.Errorf("%w: attendeeEmail is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.AttendeeEmail); err != nil {
		return fmt.Errorf("%w: attendeeEmail is not a valid email address", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.AttendeeName) > domain.MaxAttendeeNameLength {
		return fmt.Errorf("%w: attendeeName exceeds %d characters",
			ErrInvalidInput, domain.MaxAttendeeNameLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	switch req.Source {
	case domain.SourceWeb, domain.SourceAdmin:
	default:
		return fmt.Errorf("%w: unsupported booking source %q", ErrInvalidInput, req.Source)
	}

	return nil
}
