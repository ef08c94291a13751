package get_booking_audit

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
	msgAccessDenied    = "просмотр истории мутаций доступен только администраторам"
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

// Handle GET /api/v1/bookings/{uid}/audit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	actorEmail := middleware.UserEmail(r.Context())

	result, err := h.service.GetBookingAudit(r.Context(), uid, actorEmail)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{uid}/audit - Booking not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{uid}/audit - Access denied: uid=%s, actor=%s", uid, actorEmail)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{uid}/audit - Failed: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{uid}/audit - Audit trail fetched: uid=%s, records=%d, actor=%s",
		uid, result.Total, actorEmail)
	handlers.RespondJSON(w, http.StatusOK, result)
}
