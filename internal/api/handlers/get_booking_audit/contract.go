package get_booking_audit

import (
	"context"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/service/reservations/models"
)

type ReservationsService interface {
	GetBookingAudit(ctx context.Context, uid string, actorEmail string) (*models.AuditListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
