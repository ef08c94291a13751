package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	rescheduleBooking "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/reschedule_booking"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	Date          string `json:"date"`      // "2026-09-12"
	StartTime     string `json:"startTime"` // "09:00", минуты всегда 00
	DurationHours int    `json:"durationHours"`
}

// BookingResponse HTTP response model
// PriorUIDs содержит всю историю идентификаторов бронирования
type BookingResponse struct {
	BookingUID    string   `json:"bookingUid"`
	PriorUIDs     []string `json:"priorUids"`
	YachtID       int64    `json:"yachtId"`
	StartAt       string   `json:"startAt"` // RFC3339, UTC
	EndAt         string   `json:"endAt"`   // RFC3339, UTC
	DurationHours int      `json:"durationHours"`
	Shift         string   `json:"shift"` // morning / afternoon / flexible
	Status        string   `json:"status"`
	AttendeeEmail string   `json:"attendeeEmail"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingUID, actorEmail string) (*rescheduleBooking.Request, error) {
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

	if minute != 0 {
		return nil, fmt.Errorf("start time must be aligned to a full hour")
	}

	return &rescheduleBooking.Request{
		BookingUID:    bookingUID,
		Date:          date,
		StartHour:     hour,
		DurationHours: r.DurationHours,
		ActorEmail:    actorEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	res := resp.Reservation

	return &BookingResponse{
		BookingUID:    res.BookingUID,
		PriorUIDs:     res.PriorUIDs,
		YachtID:       res.YachtID,
		StartAt:       res.StartAt.UTC().Format(time.RFC3339),
		EndAt:         res.EndAt.UTC().Format(time.RFC3339),
		DurationHours: int(res.EndAt.Sub(res.StartAt).Hours()),
		Shift:         string(resp.Shift),
		Status:        string(res.Status),
		AttendeeEmail: res.AttendeeEmail,
		UpdatedAt:     res.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
