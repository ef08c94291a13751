package get_policy

import (
	"net/http"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
)

type Handler struct {
	policy domain.Policy
	logger Logger
}

func NewHandler(policy domain.Policy, logger Logger) *Handler {
	return &Handler{
		policy: policy,
		logger: logger,
	}
}

// Handle GET /api/v1/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /policy - Policy fetched")
	handlers.RespondJSON(w, http.StatusOK, FromDomainPolicy(h.policy))
}
