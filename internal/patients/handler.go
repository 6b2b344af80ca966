package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vedicure/vedacare/internal/therapy"
	"github.com/vedicure/vedacare/pkg/logging"
)

// Handler handles HTTP requests for the patient roster
type Handler struct {
	store  *Store
	logger *logging.Logger
}

// NewHandler creates a new patients handler
func NewHandler(store *Store, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, logger: logger}
}

// ListPatients handles GET /patients?q= requests. Without a query it
// returns the whole roster.
func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	result := h.store.Search(r.Context(), r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetPatient handles GET /patients/{patientID} requests
func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "patientID"))
	if err != nil {
		http.Error(w, "invalid patient id", http.StatusBadRequest)
		return
	}

	p, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load patient", "patient_id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// LogSessionRequest is the request body for logging a session
type LogSessionRequest struct {
	Status      string `json:"status"`
	TherapyType string `json:"therapy_type"`
	Date        string `json:"date"`
	Review      string `json:"review"`
	Rating      int    `json:"rating"`
}

// LogSession handles POST /patients/{patientID}/sessions requests
func (h *Handler) LogSession(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "patientID"))
	if err != nil {
		http.Error(w, "invalid patient id", http.StatusBadRequest)
		return
	}

	var req LogSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode session request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	draft := SessionDraft{
		Status:      SessionStatus(req.Status),
		TherapyType: therapy.Type(req.TherapyType),
		Date:        date,
		Review:      req.Review,
		Rating:      req.Rating,
	}

	p, err := h.store.AppendSession(r.Context(), id, draft)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Info("session logged",
		"patient_id", p.ID,
		"therapy_type", req.TherapyType,
		"sessions", len(p.Sessions),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// Upcoming handles GET /sessions/upcoming[?patient_id=] requests
func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	patientID := 0
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid patient_id", http.StatusBadRequest)
			return
		}
		patientID = id
	}

	sessions, err := h.store.Upcoming(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("failed to list upcoming sessions", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
