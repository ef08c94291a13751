package get_attendee_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/middleware"
	reservationsService "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/service/reservations"
)

const (
	msgAccessDenied = "нет прав на просмотр чужих бронирований"
	msgInvalidInput = "некорректный email участника"
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

// Handle GET /api/v1/attendees/{email}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	actorEmail := middleware.UserEmail(r.Context())

	result, err := h.service.GetAttendeeBookings(r.Context(), email, actorEmail)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /attendees/{email}/bookings - Invalid input: email=%s", email)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("GET /attendees/{email}/bookings - Access denied: email=%s, actor=%s", email, actorEmail)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /attendees/{email}/bookings - Failed: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /attendees/{email}/bookings - Fetched %d bookings: email=%s", result.Total, email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
