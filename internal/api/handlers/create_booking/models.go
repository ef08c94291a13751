package create_booking

import (
	"fmt"
	"time"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	createBooking "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/create_booking"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	YachtSlug     string  `json:"yachtSlug"`
	Date          string  `json:"date"`      // "2026-09-10"
	StartTime     string  `json:"startTime"` // "09:00", минуты всегда 00
	DurationHours int     `json:"durationHours"`
	AttendeeName  string  `json:"attendeeName"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingUID    string  `json:"bookingUid"`
	YachtID       int64   `json:"yachtId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	DurationHours int     `json:"durationHours"`
	StartAt       string  `json:"startAt"` // RFC3339, UTC
	EndAt         string  `json:"endAt"`   // RFC3339, UTC
	Shift         string  `json:"shift"`   // morning / afternoon / flexible
	Status        string  `json:"status"`
	Source        string  `json:"source"`
	AttendeeEmail string  `json:"attendeeEmail"`
	AttendeeName  string  `json:"attendeeName,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// attendeeEmail приходит из контекста аутентификации, не из тела
func (r *CreateBookingRequest) ToUseCaseRequest(attendeeEmail string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	hour, err := startTime.Hour()
	if err != nil {
		return nil, err
	}
	minute, err := startTime.Minute()
	if err != nil {
		return nil, err
	}

	// Шаг расписания - час, минуты кроме 00 не принимаются
	if minute != 0 {
		return nil, fmt.Errorf("start time must be aligned to a full hour")
	}

	return &createBooking.Request{
		YachtSlug:     r.YachtSlug,
		Date:          date,
		StartHour:     hour,
		DurationHours: r.DurationHours,
		AttendeeEmail: attendeeEmail,
		AttendeeName:  r.AttendeeName,
		Notes:         r.Notes,
		Source:        domain.SourceWeb,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Дата и время начала отдаются в таймзоне яхты
func FromUseCaseResponse(resp *createBooking.Response, req *createBooking.Request) *BookingResponse {
	res := resp.Reservation

	return &BookingResponse{
		BookingUID:    res.BookingUID,
		YachtID:       res.YachtID,
		Date:          req.Date.Format(domain.DateFormat),
		StartTime:     fmt.Sprintf("%02d:00", req.StartHour),
		DurationHours: req.DurationHours,
		StartAt:       res.StartAt.UTC().Format(time.RFC3339),
		EndAt:         res.EndAt.UTC().Format(time.RFC3339),
		Shift:         string(resp.Shift),
		Status:        string(res.Status),
		Source:        string(res.Source),
		AttendeeEmail: res.AttendeeEmail,
		AttendeeName:  res.AttendeeName,
		Notes:         res.Notes,
		CreatedAt:     res.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     res.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
