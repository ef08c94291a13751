package get_availability

import (
	"time"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
)

// Request модель запроса доступности на календарный месяц
type Request struct {
	YachtSlug string    // Публичный идентификатор яхты
	Month     time.Time // Первый день запрошенного месяца (без времени)
}

// Response модель ответа с доступностью по дням месяца
type Response struct {
	YachtSlug string
	Month     time.Time
	// Days индексирован ключом даты "YYYY-MM-DD"
	Days map[string]domain.DayAvailability
}
