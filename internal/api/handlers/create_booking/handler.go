package create_booking

import (
	"errors"
	"net/http"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/middleware"
	createBooking "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректные дата или время, ожидается YYYY-MM-DD и HH:00"
	msgPolicyViolation    = "выбранный интервал нарушает правила расписания"
	msgSlotConflict       = "интервал пересекается с существующим бронированием"
	msgYachtNotFound      = "яхта не найдена"
	msgStoreUnavailable   = "хранилище временно недоступно, повторите позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	attendeeEmail := middleware.UserEmail(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(attendeeEmail)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: yacht=%s, attendee=%s", req.YachtSlug, attendeeEmail)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrPolicyViolation):
			h.logger.Warn("POST /bookings - Policy violation: yacht=%s, date=%s, start=%s, duration=%d",
				req.YachtSlug, req.Date, req.StartTime, req.DurationHours)
			handlers.RespondBadRequest(w, msgPolicyViolation)

		case errors.Is(err, createBooking.ErrYachtNotFound):
			h.logger.Warn("POST /bookings - Yacht not found: slug=%s", req.YachtSlug)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: yacht=%s, date=%s, start=%s",
				req.YachtSlug, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: yacht=%s, error=%v", req.YachtSlug, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: yacht=%s, attendee=%s, error=%v",
				req.YachtSlug, attendeeEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: uid=%s, yacht=%s, attendee=%s",
		result.Reservation.BookingUID, req.YachtSlug, attendeeEmail)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, useCaseReq))
}
