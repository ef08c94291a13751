package get_yacht_bookings

import (
	"net/url"
	"time"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/service/reservations/models"
)

// parseQuery разбирает query-параметры фильтра бронирований яхты
// from и to - даты YYYY-MM-DD, трактуются как UTC-границы
func parseQuery(query url.Values, slug, actorEmail string) (*models.GetYachtBookingsRequest, error) {
	req := &models.GetYachtBookingsRequest{
		ActorEmail:       actorEmail,
		YachtSlug:        slug,
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		// Верхняя граница включает весь указанный день
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	return req, nil
}
