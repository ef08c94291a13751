package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	getAvailability "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/get_availability"
)

const (
	msgInvalidMonth     = "некорректный параметр month, ожидается YYYY-MM"
	msgYachtNotFound    = "яхта не найдена"
	msgStoreUnavailable = "хранилище временно недоступно, повторите позже"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/yachts/{slug}/availability?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	month, err := time.Parse(domain.MonthFormat, r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /yachts/{slug}/availability - Invalid month parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		YachtSlug: slug,
		Month:     month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /yachts/{slug}/availability - Invalid input: slug=%s", slug)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getAvailability.ErrYachtNotFound):
			h.logger.Warn("GET /yachts/{slug}/availability - Yacht not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, getAvailability.ErrStoreUnavailable):
			h.logger.Error("GET /yachts/{slug}/availability - Store unavailable: slug=%s, error=%v", slug, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /yachts/{slug}/availability - Failed: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /yachts/{slug}/availability - Computed availability: slug=%s, month=%s",
		slug, month.Format(domain.MonthFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
