package models

import (
	"encoding/json"
	"time"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
)

// Request модели

// GetYachtBookingsRequest запрос на получение бронирований яхты
type GetYachtBookingsRequest struct {
	ActorEmail       string
	YachtSlug        string
	From             *time.Time // Начало периода (опционально)
	To               *time.Time // Конец периода (опционально)
	IncludeCancelled bool       // Включить отмененные бронирования
}

// Response модели

// ReservationResponse бронирование в виде, готовом для HTTP ответа
type ReservationResponse struct {
	BookingUID         string   `json:"bookingUid"`
	PriorUIDs          []string `json:"priorUids,omitempty"`
	YachtID            int64    `json:"yachtId"`
	StartAt            string   `json:"startAt"` // RFC3339, UTC
	EndAt              string   `json:"endAt"`   // RFC3339, UTC
	DurationHours      int      `json:"durationHours"`
	Status             string   `json:"status"`
	Source             string   `json:"source"`
	AttendeeEmail      string   `json:"attendeeEmail"`
	AttendeeName       string   `json:"attendeeName,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// AuditRecordResponse запись аудита мутаций бронирования
type AuditRecordResponse struct {
	ID         int64           `json:"id"`
	BookingUID string          `json:"bookingUid"`
	Action     string          `json:"action"`
	Actor      string          `json:"actor"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  string          `json:"createdAt"` // RFC3339, UTC
}

// AuditListResponse история мутаций бронирования
type AuditListResponse struct {
	Records []*AuditRecordResponse `json:"records"`
	Total   int                    `json:"total"`
}

// FromDomainReservation конвертирует доменную модель в response
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		BookingUID:         res.BookingUID,
		PriorUIDs:          res.PriorUIDs,
		YachtID:            res.YachtID,
		StartAt:            res.StartAt.UTC().Format(time.RFC3339),
		EndAt:              res.EndAt.UTC().Format(time.RFC3339),
		DurationHours:      int(res.EndAt.Sub(res.StartAt).Hours()),
		Status:             string(res.Status),
		Source:             string(res.Source),
		AttendeeEmail:      res.AttendeeEmail,
		AttendeeName:       res.AttendeeName,
		Notes:              res.Notes,
		CancellationReason: res.CancellationReason,
		CreatedAt:          res.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          res.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if res.CancelledAt != nil {
		cancelledAt := res.CancelledAt.UTC().Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список доменных моделей в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]*ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, FromDomainReservation(res))
	}

	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}

// FromDomainAuditRecords конвертирует записи аудита в response
func FromDomainAuditRecords(records []*domain.AuditRecord) *AuditListResponse {
	items := make([]*AuditRecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, &AuditRecordResponse{
			ID:         rec.ID,
			BookingUID: rec.BookingUID,
			Action:     string(rec.Action),
			Actor:      rec.Actor,
			Payload:    rec.Payload,
			CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return &AuditListResponse{
		Records: items,
		Total:   len(items),
	}
}
