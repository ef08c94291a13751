package get_availability

import (
	"context"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/fleetservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetForYachtWithFilter получает бронирования яхты, пересекающие диапазон
	GetForYachtWithFilter(ctx context.Context, filter domain.YachtBookingsFilter) ([]*domain.Reservation, error)
}

// FleetServiceClient интерфейс клиента для FleetService
type FleetServiceClient interface {
	GetYacht(ctx context.Context, slug string) (*fleetservice.Yacht, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
