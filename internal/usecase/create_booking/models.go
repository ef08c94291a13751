package create_booking

import (
	"time"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
)

// Request модель запроса создания бронирования
type Request struct {
	YachtSlug     string
	Date          time.Time // Календарная дата рейса в таймзоне яхты (без времени)
	StartHour     int       // Час начала в локальном времени яхты
	DurationHours int
	AttendeeEmail string
	AttendeeName  string
	Notes         *string
	Source        domain.ReservationSource // web или admin, выставляется обработчиком
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
	Shift       domain.ShiftFit // Положение рейса относительно дневного буфера
}
