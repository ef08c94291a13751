package get_yacht_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/middleware"
	reservationsService "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/service/reservations"
)

const (
	msgInvalidPeriod  = "некорректный период, ожидаются даты YYYY-MM-DD"
	msgAccessDenied   = "просмотр бронирований яхты доступен только администратору"
	msgYachtNotFound  = "яхта не найдена"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/yachts/{slug}/bookings?from=YYYY-MM-DD&to=YYYY-MM-DD&includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	actorEmail := middleware.UserEmail(r.Context())

	req, err := parseQuery(r.URL.Query(), slug, actorEmail)
	if err != nil {
		h.logger.Warn("GET /yachts/{slug}/bookings - Invalid period: slug=%s, error=%v", slug, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.GetYachtBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /yachts/{slug}/bookings - Invalid input: slug=%s", slug)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("GET /yachts/{slug}/bookings - Access denied: slug=%s, actor=%s", slug, actorEmail)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservationsService.ErrYachtNotFound):
			h.logger.Warn("GET /yachts/{slug}/bookings - Yacht not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgYachtNotFound)

		default:
			h.logger.Error("GET /yachts/{slug}/bookings - Failed: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /yachts/{slug}/bookings - Fetched %d bookings: slug=%s, actor=%s",
		result.Total, slug, actorEmail)
	handlers.RespondJSON(w, http.StatusOK, result)
}
