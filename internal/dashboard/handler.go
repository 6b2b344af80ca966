package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/vedicure/vedacare/pkg/logging"
)

// Handler handles HTTP requests for the clinic overview
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new dashboard handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// GetOverview handles GET /dashboard requests
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.Overview(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		h.logger.Error("failed to encode dashboard snapshot", "error", err)
	}
}
