package summary

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vedicure/vedacare/internal/patients"
	"github.com/vedicure/vedacare/pkg/logging"
)

// Handler handles HTTP requests for AI summaries
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new summary handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// SummaryResponse is the generated-summary payload
type SummaryResponse struct {
	PatientID int    `json:"patient_id"`
	Summary   string `json:"summary"`
}

// GeneratePatientSummary handles POST /patients/{patientID}/summary
// requests. Generation failures still return 200 with placeholder text;
// only an unknown patient is an error.
func (h *Handler) GeneratePatientSummary(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "patientID"))
	if err != nil {
		http.Error(w, "invalid patient id", http.StatusBadRequest)
		return
	}

	text, err := h.service.PatientSummary(r.Context(), id)
	if err != nil {
		if errors.Is(err, patients.ErrPatientNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("failed to generate summary", "patient_id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SummaryResponse{PatientID: id, Summary: text})
}
