package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/middleware"
	reservationsService "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/service/reservations"
)

const (
	msgBookingNotFound = "бронирование не найдено"
	msgAccessDenied    = "нет прав на просмотр этого бронирования"
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

// Handle GET /api/v1/bookings/{uid}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	actorEmail := middleware.UserEmail(r.Context())

	result, err := h.service.GetByUID(r.Context(), uid, actorEmail)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{uid} - Booking not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{uid} - Access denied: uid=%s, actor=%s", uid, actorEmail)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{uid} - Failed: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{uid} - Booking fetched: uid=%s, actor=%s", uid, actorEmail)
	handlers.RespondJSON(w, http.StatusOK, result)
}
