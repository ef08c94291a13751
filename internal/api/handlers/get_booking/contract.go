package get_booking

import (
	"context"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByUID(ctx context.Context, uid string, actorEmail string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
