package reschedule_booking

import (
	"context"
	"time"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/fleetservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByUID получает бронирование по текущему публичному идентификатору
	GetByUID(ctx context.Context, uid string) (*domain.Reservation, error)

	// GetForYachtWithFilter получает бронирования яхты, пересекающие диапазон
	GetForYachtWithFilter(ctx context.Context, filter domain.YachtBookingsFilter) ([]*domain.Reservation, error)

	// Reschedule переносит бронирование на новый интервал с ротацией UID
	Reschedule(ctx context.Context, oldUID, newUID string, startAt, endAt, guardStart, guardEnd time.Time) (*domain.Reservation, error)
}

// AuditRepository интерфейс репозитория аудита мутаций
type AuditRepository interface {
	Append(ctx context.Context, rec *domain.AuditRecord) error
}

// FleetServiceClient интерфейс клиента для FleetService
type FleetServiceClient interface {
	GetYachtByID(ctx context.Context, id int64) (*fleetservice.Yacht, error)
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
