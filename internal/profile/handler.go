package profile

import (
	"encoding/json"
	"net/http"

	"github.com/vedicure/vedacare/pkg/logging"
)

// Handler handles HTTP requests for the practitioner profile
type Handler struct {
	profile Profile
	logger  *logging.Logger
}

// NewHandler creates a new profile handler
func NewHandler(p Profile, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{profile: p, logger: logger}
}

// GetProfile handles GET /profile requests
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.profile); err != nil {
		h.logger.Error("failed to encode profile", "error", err)
	}
}
