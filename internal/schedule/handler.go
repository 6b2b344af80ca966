package schedule

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

// Handler handles HTTP requests for the appointment book
type Handler struct {
	book   *Book
	logger *logging.Logger
}

// NewHandler creates a new schedule handler
func NewHandler(book *Book, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{book: book, logger: logger}
}

// CreateAppointmentRequest is the scheduling-form request body. Either a
// full RFC3339 start, or the form's separate date and time fields.
type CreateAppointmentRequest struct {
	PatientID      int    `json:"patient_id"`
	PractitionerID int    `json:"practitioner_id"`
	TherapyType    string `json:"therapy_type"`
	Start          string `json:"start"`
	End            string `json:"end"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

// CreateAppointmentResponse carries the created event plus any overlapping
// bookings so the UI can warn without the booking being rejected.
type CreateAppointmentResponse struct {
	Appointment *Appointment   `json:"appointment"`
	Conflicts   []*Appointment `json:"conflicts"`
}

// CreateAppointment handles POST /appointments requests
func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode appointment request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	start, end, err := h.parseTimes(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	draft := AppointmentDraft{
		PatientID:      req.PatientID,
		PractitionerID: req.PractitionerID,
		TherapyType:    therapy.Type(req.TherapyType),
		Start:          start,
		End:            end,
	}

	appt, conflicts, err := h.book.AddWithConflicts(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownPatient), errors.Is(err, ErrUnknownPractitioner):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	h.logger.Info("appointment booked",
		"appointment_id", appt.ID,
		"patient_id", appt.PatientID,
		"practitioner_id", appt.PractitionerID,
		"therapy_type", appt.TherapyType,
		"conflicts", len(conflicts),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateAppointmentResponse{Appointment: appt, Conflicts: conflicts})
}

// GetAppointment handles GET /appointments/{appointmentID} requests
func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return
	}

	appt, err := h.book.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load appointment", "appointment_id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(appt)
}

// ListOnDate handles GET /appointments?date=YYYY-MM-DD requests
func (h *Handler) ListOnDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		http.Error(w, "date query parameter required", http.StatusBadRequest)
		return
	}
	date, err := time.ParseInLocation("2006-01-02", raw, h.book.loc)
	if err != nil {
		http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.book.OnDate(r.Context(), date))
}

// TodayAgenda handles GET /appointments/today requests
func (h *Handler) TodayAgenda(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.book.Today(r.Context()))
}

// GetMonthGrid handles GET /calendar/{year}/{month} requests
func (h *Handler) GetMonthGrid(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month, use 1-12", http.StatusBadRequest)
		return
	}

	grid := h.book.MonthGrid(r.Context(), year, time.Month(month))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(grid)
}

// ListPractitioners handles GET /practitioners requests
func (h *Handler) ListPractitioners(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.book.Practitioners(r.Context()))
}

func (h *Handler) parseTimes(req CreateAppointmentRequest) (start, end time.Time, err error) {
	switch {
	case req.Start != "":
		start, err = time.Parse(time.RFC3339, req.Start)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid start, use RFC3339 format")
		}
	case req.Date != "":
		clock := req.Time
		if clock == "" {
			clock = "09:00"
		}
		start, err = time.ParseInLocation("2006-01-02 15:04", req.Date+" "+clock, h.book.loc)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid date/time, use YYYY-MM-DD and HH:MM")
		}
	default:
		return time.Time{}, time.Time{}, ErrMissingStart
	}

	if req.End != "" {
		end, err = time.Parse(time.RFC3339, req.End)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid end, use RFC3339 format")
		}
	}
	return start, end, nil
}
