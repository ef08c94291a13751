package get_attendee_bookings

import (
	"context"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/service/reservations/models"
)

type ReservationsService interface {
	GetAttendeeBookings(ctx context.Context, email string, actorEmail string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
