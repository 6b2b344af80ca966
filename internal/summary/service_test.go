package summary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedicure/vedacare/internal/patients"
	"github.com/vedicure/vedacare/pkg/logging"
)

type fakeLLM struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeLLM) Close() error { return nil }

func newTestService(llm LLMClient) *Service {
	store := patients.NewStore(patients.SeedRoster())
	return NewService(llm, store, time.Second, nil, logging.Default())
}

func TestPatientSummary_Success(t *testing.T) {
	llm := &fakeLLM{text: "Aarav is responding well to Kati Vasti."}
	svc := newTestService(llm)

	got, err := svc.PatientSummary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Aarav is responding well to Kati Vasti.", got)

	require.Len(t, llm.prompts, 1)
	prompt := llm.prompts[0]
	assert.Contains(t, prompt, "Aarav Sharma")
	assert.Contains(t, prompt, "Chronic Back Pain")
	assert.Contains(t, prompt, "On 2025-07-11, a Past session of Kati Vasti occurred.")
	assert.Contains(t, prompt, `Patient review: "Good session, targeted the lower back well."`)
	assert.Contains(t, prompt, "Keep it brief and professional.")
}

func TestPatientSummary_RemoteFailureIsSwallowed(t *testing.T) {
	svc := newTestService(&fakeLLM{err: errors.New("rate limited")})

	got, err := svc.PatientSummary(context.Background(), 2)
	require.NoError(t, err, "remote failures must not surface as errors")
	assert.Equal(t, FallbackError, got)
}

func TestPatientSummary_EmptyCompletion(t *testing.T) {
	svc := newTestService(&fakeLLM{text: ""})

	got, err := svc.PatientSummary(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, FallbackEmpty, got)
}

func TestPatientSummary_NoClientConfigured(t *testing.T) {
	svc := newTestService(nil)

	got, err := svc.PatientSummary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, FallbackError, got)
}

func TestPatientSummary_UnknownPatient(t *testing.T) {
	svc := newTestService(&fakeLLM{text: "irrelevant"})

	_, err := svc.PatientSummary(context.Background(), 99)
	assert.ErrorIs(t, err, patients.ErrPatientNotFound)
}

func TestBuildPromptSkipsReviewForUnreviewedSessions(t *testing.T) {
	store := patients.NewStore(patients.SeedRoster())
	p, err := store.FindByID(context.Background(), 4)
	require.NoError(t, err)

	prompt := BuildPrompt(p)
	assert.Contains(t, prompt, "On 2025-09-28, a Ongoing session of Kati Vasti occurred.")
	assert.Equal(t, 1, strings.Count(prompt, "Patient review:"), "only the past session carries a review")
}

func TestGeneratePatientSummaryHandler(t *testing.T) {
	handler := NewHandler(newTestService(&fakeLLM{text: "Summary text."}), logging.Default())

	r := chi.NewRouter()
	r.Post("/patients/{patientID}/summary", handler.GeneratePatientSummary)

	req := httptest.NewRequest(http.MethodPost, "/patients/1/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"patient_id":1,"summary":"Summary text."}`, w.Body.String())
}

func TestGeneratePatientSummaryHandler_NotFound(t *testing.T) {
	handler := NewHandler(newTestService(&fakeLLM{}), logging.Default())

	r := chi.NewRouter()
	r.Post("/patients/{patientID}/summary", handler.GeneratePatientSummary)

	req := httptest.NewRequest(http.MethodPost, "/patients/99/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratePatientSummaryHandler_FailureStillOK(t *testing.T) {
	handler := NewHandler(newTestService(&fakeLLM{err: errors.New("boom")}), logging.Default())

	r := chi.NewRouter()
	r.Post("/patients/{patientID}/summary", handler.GeneratePatientSummary)

	req := httptest.NewRequest(http.MethodPost, "/patients/1/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), FallbackError)
}
