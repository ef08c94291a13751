package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/middleware"
	cancelBooking "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "отменить бронирование может только владелец или администратор"
	msgBookingNotFound    = "бронирование не найдено"
	msgStoreUnavailable   = "хранилище временно недоступно, повторите позже"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{uid}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	actorEmail := middleware.UserEmail(r.Context())

	// Тело опционально: отмена без причины легальна
	var req CancelBookingRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /bookings/{uid}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		BookingUID: uid,
		ActorEmail: actorEmail,
		Reason:     req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{uid}/cancel - Invalid input: uid=%s", uid)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, cancelBooking.ErrForbidden):
			h.logger.Warn("PATCH /bookings/{uid}/cancel - Forbidden: uid=%s, actor=%s", uid, actorEmail)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{uid}/cancel - Booking not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrStoreUnavailable):
			h.logger.Error("PATCH /bookings/{uid}/cancel - Store unavailable: uid=%s, error=%v", uid, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /bookings/{uid}/cancel - Failed: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{uid}/cancel - Booking cancelled: uid=%s, actor=%s, alreadyCancelled=%v",
		uid, actorEmail, result.AlreadyCancelled)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
