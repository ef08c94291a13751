package cancel_booking

import (
	"time"

	cancelBooking "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
// AlreadyCancelled отличает первую отмену от идемпотентного повтора
type CancelBookingResponse struct {
	BookingUID       string `json:"bookingUid"`
	Status           string `json:"status"`
	AlreadyCancelled bool   `json:"alreadyCancelled"`
	CancelledAt      string `json:"cancelledAt,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	out := &CancelBookingResponse{
		BookingUID:       resp.Reservation.BookingUID,
		Status:           string(resp.Reservation.Status),
		AlreadyCancelled: resp.AlreadyCancelled,
	}

	if resp.Reservation.CancelledAt != nil {
		out.CancelledAt = resp.Reservation.CancelledAt.UTC().Format(time.RFC3339)
	}

	return out
}
