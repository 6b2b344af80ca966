package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vedicure/vedacare/internal/observability/metrics"
	"github.com/vedicure/vedacare/internal/patients"
	"github.com/vedicure/vedacare/pkg/logging"
)

var summaryTracer = otel.Tracer("vedacare.internal.summary")

// Placeholder text returned in place of a summary. Remote failures are
// never surfaced to the caller as errors; the UI shows these instead.
const (
	FallbackError = "Error generating response."
	FallbackEmpty = "No response."
)

// Service produces AI clinical summaries from a patient's session history.
type Service struct {
	llm     LLMClient
	store   *patients.Store
	timeout time.Duration
	metrics *metrics.SummaryMetrics
	logger  *logging.Logger
}

// NewService creates a summary service. A nil llm client is allowed (no
// API key configured); every request then yields the error placeholder.
func NewService(llm LLMClient, store *patients.Store, timeout time.Duration, m *metrics.SummaryMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{llm: llm, store: store, timeout: timeout, metrics: m, logger: logger}
}

// PatientSummary generates a clinical summary for the patient. The only
// error it returns is patients.ErrPatientNotFound; generation failures
// become placeholder text.
func (s *Service) PatientSummary(ctx context.Context, patientID int) (string, error) {
	ctx, span := summaryTracer.Start(ctx, "summary.generate")
	defer span.End()
	span.SetAttributes(attribute.Int("vedacare.patient_id", patientID))

	p, err := s.store.FindByID(ctx, patientID)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	prompt := BuildPrompt(p)

	start := time.Now()
	text, err := s.generate(ctx, prompt)
	elapsed := time.Since(start).Seconds()

	switch {
	case err != nil:
		span.RecordError(err)
		span.SetAttributes(attribute.String("vedacare.outcome", "fallback"))
		s.logger.Warn("summary generation failed", "patient_id", patientID, "error", err)
		s.metrics.ObserveGeneration("fallback", elapsed)
		return FallbackError, nil
	case text == "":
		span.SetAttributes(attribute.String("vedacare.outcome", "empty"))
		s.metrics.ObserveGeneration("empty", elapsed)
		return FallbackEmpty, nil
	default:
		span.SetAttributes(attribute.String("vedacare.outcome", "ok"))
		s.metrics.ObserveGeneration("ok", elapsed)
		return text, nil
	}
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.llm == nil {
		return "", fmt.Errorf("summary: no llm client configured")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.llm.Generate(ctx, prompt)
}

// BuildPrompt formats the instruction and session transcript sent to the
// text-generation model.
func BuildPrompt(p *patients.Patient) string {
	lines := make([]string, 0, len(p.Sessions))
	for _, sess := range p.Sessions {
		line := fmt.Sprintf("On %s, a %s session of %s occurred.",
			sess.Date.Format("2006-01-02"), sess.Status, sess.TherapyType)
		if sess.Feedback != nil && sess.Feedback.Review != "" {
			line += fmt.Sprintf(" Patient review: %q", sess.Feedback.Review)
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf(
		"Generate a concise clinical summary for %s, being treated for %s. Based on the following session history, summarize their progress:\n%s\n Keep it brief and professional.",
		p.Name, p.Condition, strings.Join(lines, "\n"))
}
