package get_availability

import (
	"sort"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	getAvailability "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/get_availability"
)

// DayAvailabilityResponse доступность одного дня
type DayAvailabilityResponse struct {
	OpenHours             []int         `json:"openHours"`
	ValidStartsByDuration map[int][]int `json:"validStartsByDuration"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	YachtSlug string                             `json:"yachtSlug"`
	Month     string                             `json:"month"` // "2026-09"
	Days      map[string]DayAvailabilityResponse `json:"days"`  // ключ "YYYY-MM-DD"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make(map[string]DayAvailabilityResponse, len(resp.Days))
	for date, day := range resp.Days {
		days[date] = DayAvailabilityResponse{
			OpenHours:             day.OpenHours,
			ValidStartsByDuration: sortedStarts(day.ValidStartsByDuration),
		}
	}

	return &AvailabilityResponse{
		YachtSlug: resp.YachtSlug,
		Month:     resp.Month.Format(domain.MonthFormat),
		Days:      days,
	}
}

func sortedStarts(byDuration map[int][]int) map[int][]int {
	out := make(map[int][]int, len(byDuration))
	for d, starts := range byDuration {
		copied := append([]int{}, starts...)
		sort.Ints(copied)
		out[d] = copied
	}
	return out
}
