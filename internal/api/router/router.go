package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vedicure/vedacare/internal/dashboard"
	httpmiddleware "github.com/vedicure/vedacare/internal/http/middleware"
	"github.com/vedicure/vedacare/internal/observability/metrics"
	"github.com/vedicure/vedacare/internal/patients"
	"github.com/vedicure/vedacare/internal/profile"
	"github.com/vedicure/vedacare/internal/schedule"
	"github.com/vedicure/vedacare/internal/summary"
	"github.com/vedicure/vedacare/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	PatientsHandler    *patients.Handler
	ScheduleHandler    *schedule.Handler
	SummaryHandler     *summary.Handler
	DashboardHandler   *dashboard.Handler
	ProfileHandler     *profile.Handler
	HTTPMetrics        *metrics.HTTPMetrics
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}
	if cfg.HTTPMetrics != nil {
		r.Use(httpmiddleware.Metrics(cfg.HTTPMetrics))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/patients", func(r chi.Router) {
		r.Get("/", cfg.PatientsHandler.ListPatients)
		r.Route("/{patientID}", func(r chi.Router) {
			r.Get("/", cfg.PatientsHandler.GetPatient)
			r.Post("/sessions", cfg.PatientsHandler.LogSession)
			if cfg.SummaryHandler != nil {
				r.Post("/summary", cfg.SummaryHandler.GeneratePatientSummary)
			}
		})
	})

	r.Get("/sessions/upcoming", cfg.PatientsHandler.Upcoming)

	r.Route("/appointments", func(r chi.Router) {
		r.Post("/", cfg.ScheduleHandler.CreateAppointment)
		r.Get("/", cfg.ScheduleHandler.ListOnDate)
		r.Get("/today", cfg.ScheduleHandler.TodayAgenda)
		r.Get("/{appointmentID}", cfg.ScheduleHandler.GetAppointment)
	})

	r.Get("/calendar/{year}/{month}", cfg.ScheduleHandler.GetMonthGrid)
	r.Get("/practitioners", cfg.ScheduleHandler.ListPractitioners)

	if cfg.DashboardHandler != nil {
		r.Get("/dashboard", cfg.DashboardHandler.GetOverview)
	}
	if cfg.ProfileHandler != nil {
		r.Get("/profile", cfg.ProfileHandler.GetProfile)
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
