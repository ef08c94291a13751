package get_policy

import "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"

// PolicyResponse HTTP response model
// Публичные константы расписания, по которым UI строит форму выбора
type PolicyResponse struct {
	DayStartHour            int   `json:"dayStartHour"`
	DayEndHour              int   `json:"dayEndHour"`
	MorningEndHour          int   `json:"morningEndHour"`
	BufferStartHour         int   `json:"bufferStartHour"`
	BufferEndHour           int   `json:"bufferEndHour"`
	AfternoonStartHour      int   `json:"afternoonStartHour"`
	MinDurationHours        int   `json:"minDurationHours"`
	MaxDurationHours        int   `json:"maxDurationHours"`
	Durations               []int `json:"durations"`
	InterBookingBufferHours int   `json:"interBookingBufferHours"`
	TimeStepMinutes         int   `json:"timeStepMinutes"`
}

// FromDomainPolicy конвертирует доменную политику в HTTP response
func FromDomainPolicy(p domain.Policy) *PolicyResponse {
	return &PolicyResponse{
		DayStartHour:            p.DayStartHour,
		DayEndHour:              p.DayEndHour,
		MorningEndHour:          p.MorningEndHour,
		BufferStartHour:         p.BufferStartHour,
		BufferEndHour:           p.BufferEndHour,
		AfternoonStartHour:      p.AfternoonStartHour,
		MinDurationHours:        p.MinDurationHours,
		MaxDurationHours:        p.MaxDurationHours,
		Durations:               p.Durations(),
		InterBookingBufferHours: p.InterBookingBufferHours,
		TimeStepMinutes:         p.TimeStepMinutes,
	}
}
