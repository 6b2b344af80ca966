package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vedicure/vedacare/internal/api/router"
	appconfig "github.com/vedicure/vedacare/internal/config"
	"github.com/vedicure/vedacare/internal/dashboard"
	"github.com/vedicure/vedacare/internal/observability/metrics"
	"github.com/vedicure/vedacare/internal/patients"
	"github.com/vedicure/vedacare/internal/profile"
	"github.com/vedicure/vedacare/internal/schedule"
	"github.com/vedicure/vedacare/internal/summary"
	"github.com/vedicure/vedacare/pkg/logging"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info("starting vedacare API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Calendar convention for day-equality checks
	loc := time.Local
	if cfg.ScheduleTimezone != "" {
		parsed, err := time.LoadLocation(cfg.ScheduleTimezone)
		if err != nil {
			logger.Error("invalid schedule timezone", "tz", cfg.ScheduleTimezone, "error", err)
			os.Exit(1)
		}
		loc = parsed
	}

	// Initialize stores over the demo roster
	store := patients.NewStore(patients.SeedRoster())
	book := schedule.NewBook(schedule.BookConfig{
		Patients:        store,
		Practitioners:   schedule.SeedPractitioners(),
		Seed:            schedule.SeedAppointments(loc),
		DefaultDuration: cfg.AppointmentDuration,
		Location:        loc,
	})

	// Metrics registry
	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	summaryMetrics := metrics.NewSummaryMetrics(registry)

	// Gemini client is optional; without a key every summary request
	// yields the error placeholder.
	var llm summary.LLMClient
	if cfg.GeminiAPIKey != "" {
		gemini, err := summary.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		llm = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, summaries will return placeholder text")
	}
	summarySvc := summary.NewService(llm, store, cfg.SummaryTimeout, summaryMetrics, logger)
	dashboardSvc := dashboard.NewService(store, book, registry)

	// Setup router
	r := router.New(&router.Config{
		Logger:             logger,
		PatientsHandler:    patients.NewHandler(store, logger),
		ScheduleHandler:    schedule.NewHandler(book, logger),
		SummaryHandler:     summary.NewHandler(summarySvc, logger),
		DashboardHandler:   dashboard.NewHandler(dashboardSvc, logger),
		ProfileHandler:     profile.NewHandler(profile.Default(), logger),
		HTTPMetrics:        httpMetrics,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server exited")
}
