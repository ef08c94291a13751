package get_yacht_bookings

import (
	"context"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/service/reservations/models"
)

type ReservationsService interface {
	GetYachtBookings(ctx context.Context, req *models.GetYachtBookingsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
