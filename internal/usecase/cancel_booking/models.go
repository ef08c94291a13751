package cancel_booking

import "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"

// Request модель запроса отмены бронирования
type Request struct {
	BookingUID string
	ActorEmail string // Владелец бронирования или администратор
	Reason     string
}

// Response модель ответа отмены
// Отмена идемпотентна: повторный запрос возвращает AlreadyCancelled
type Response struct {
	Reservation      *domain.Reservation
	AlreadyCancelled bool
}
