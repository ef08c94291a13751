package reschedule_booking

import (
	"time"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
)

// Request модель запроса переноса бронирования
type Request struct {
	BookingUID    string
	Date          time.Time // Новая календарная дата рейса в таймзоне яхты
	StartHour     int       // Новый час начала в локальном времени яхты
	DurationHours int
	ActorEmail    string // Администратор, выполняющий перенос
}

// Response модель ответа с перенесенным бронированием
// У бронирования новый UID, старый дописан в PriorUIDs
type Response struct {
	Reservation *domain.Reservation
	Shift       domain.ShiftFit // Положение нового интервала относительно дневного буфера
}
