package create_booking

import (
	"context"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/fleetservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// Create создает новое бронирование
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)

	// GetForYachtWithFilter получает бронирования яхты, пересекающие диапазон
	GetForYachtWithFilter(ctx context.Context, filter domain.YachtBookingsFilter) ([]*domain.Reservation, error)
}

// AuditRepository интерфейс репозитория аудита мутаций
type AuditRepository interface {
	Append(ctx context.Context, rec *domain.AuditRecord) error
}

// FleetServiceClient интерфейс клиента для FleetService
type FleetServiceClient interface {
	GetYacht(ctx context.Context, slug string) (*fleetservice.Yacht, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	// DoSerializable выполняет fn в SERIALIZABLE транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
