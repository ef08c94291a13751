package cancel_booking

import (
	"context"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByUID получает бронирование по текущему публичному идентификатору
	GetByUID(ctx context.Context, uid string) (*domain.Reservation, error)

	// Cancel отменяет активное бронирование
	Cancel(ctx context.Context, uid string, reason string) error
}

// AuditRepository интерфейс репозитория аудита мутаций
type AuditRepository interface {
	Append(ctx context.Context, rec *domain.AuditRecord) error
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
