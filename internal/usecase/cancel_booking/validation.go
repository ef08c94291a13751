package cancel_booking

import (
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingUID == "" {
		return fmt.Errorf("%w: bookingUid is required", ErrInvalidInput)
	}

	if req.ActorEmail == "" {
		return fmt.Errorf("%w: actorEmail is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.ActorEmail); err != nil {
		return fmt.Errorf("%w: actorEmail is not a valid email address", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}
