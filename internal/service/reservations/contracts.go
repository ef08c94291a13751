package reservations

import (
	"context"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/fleetservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByUID(ctx context.Context, uid string) (*domain.Reservation, error)
	GetByAttendee(ctx context.Context, email string) ([]*domain.Reservation, error)
	GetForYachtWithFilter(ctx context.Context, filter domain.YachtBookingsFilter) ([]*domain.Reservation, error)
}

// AuditRepository интерфейс репозитория аудита мутаций
type AuditRepository interface {
	ListByBookingUIDs(ctx context.Context, uids []string) ([]*domain.AuditRecord, error)
}

// FleetServiceClient интерфейс клиента для FleetService
type FleetServiceClient interface {
	GetYacht(ctx context.Context, slug string) (*fleetservice.Yacht, error)
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
