package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/middleware"
	rescheduleBooking "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректные дата или время, ожидается YYYY-MM-DD и HH:00"
	msgForbidden          = "перенос бронирования доступен только администратору"
	msgBookingNotFound    = "бронирование не найдено"
	msgAlreadyCancelled   = "бронирование уже отменено"
	msgPolicyViolation    = "выбранный интервал нарушает правила расписания"
	msgSlotConflict       = "интервал пересекается с существующим бронированием"
	msgStoreUnavailable   = "хранилище временно недоступно, повторите позже"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{uid}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	actorEmail := middleware.UserEmail(r.Context())

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{uid}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(uid, actorEmail)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{uid}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{uid}/reschedule - Invalid input: uid=%s", uid)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, rescheduleBooking.ErrForbidden):
			h.logger.Warn("PATCH /bookings/{uid}/reschedule - Forbidden: uid=%s, actor=%s", uid, actorEmail)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{uid}/reschedule - Booking not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/{uid}/reschedule - Already cancelled: uid=%s", uid)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, rescheduleBooking.ErrPolicyViolation):
			h.logger.Warn("PATCH /bookings/{uid}/reschedule - Policy violation: uid=%s, date=%s, start=%s",
				uid, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgPolicyViolation)

		case errors.Is(err, rescheduleBooking.ErrSlotConflict):
			h.logger.Warn("PATCH /bookings/{uid}/reschedule - Slot conflict: uid=%s, date=%s, start=%s",
				uid, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, rescheduleBooking.ErrStoreUnavailable):
			h.logger.Error("PATCH /bookings/{uid}/reschedule - Store unavailable: uid=%s, error=%v", uid, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /bookings/{uid}/reschedule - Failed: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{uid}/reschedule - Booking rescheduled: old_uid=%s, new_uid=%s, actor=%s",
		uid, result.Reservation.BookingUID, actorEmail)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
