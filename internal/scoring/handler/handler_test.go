package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadscore_backend/internal/scoring/domain"
	"leadscore_backend/internal/scoring/intent"
	"leadscore_backend/internal/scoring/ports"
	"leadscore_backend/internal/scoring/repository"
	"leadscore_backend/internal/scoring/service"
	"leadscore_backend/internal/scoring/transport"
	"leadscore_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offers map[uuid.UUID]domain.Offer

func (o offers) GetOffer(_ context.Context, id uuid.UUID) (domain.Offer, error) {
	offer, ok := o[id]
	if !ok {
		return domain.Offer{}, ports.ErrOfferNotFound
	}
	return offer, nil
}

func (o offers) ListOfferIDs(context.Context) ([]uuid.UUID, error) { return nil, nil }

type leads []domain.Lead

func (l leads) ListLeads(context.Context) ([]domain.Lead, error) { return l, nil }

type scoreStore struct {
	rows []repository.Result
	seen map[uuid.UUID]bool
}

func (s *scoreStore) Exists(_ context.Context, leadID, _ uuid.UUID) (bool, error) {
	return s.seen[leadID], nil
}

func (s *scoreStore) InsertIfAbsent(_ context.Context, n repository.NewScore) (bool, error) {
	if s.seen[n.LeadID] {
		return false, nil
	}
	s.seen[n.LeadID] = true
	s.rows = append(s.rows, repository.Result{
		LeadID: n.LeadID, Name: "Ava, the \"growth\" lead", Role: "Head of Growth", Company: "FlowMetrics",
		RuleScore: n.RuleScore, AIScore: n.AIScore, Intent: n.Intent, Reasoning: n.Reasoning,
	})
	return true, nil
}

func (s *scoreStore) ListResultsByOffer(context.Context, uuid.UUID) ([]repository.Result, error) {
	return s.rows, nil
}

type classifierFunc func(domain.Lead) (intent.Classification, error)

func (f classifierFunc) Classify(_ context.Context, _ domain.Offer, lead domain.Lead) (intent.Classification, error) {
	return f(lead)
}

func setup(t *testing.T, classify classifierFunc) (*gin.Engine, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	offerID := uuid.New()
	o := offers{offerID: {ID: offerID, Name: "Outreach", ValueProps: []string{"a"}, IdealUseCases: []string{"SaaS"}}}
	l := leads{{ID: uuid.New(), Name: "Ava", Role: "Head of Growth", Industry: "SaaS"}}
	svc := service.New(o, l, &scoreStore{seen: map[uuid.UUID]bool{}}, nil, classify, nil, logger.Discard())

	r := gin.New()
	New(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, offerID
}

func high(domain.Lead) (intent.Classification, error) {
	return intent.Classification{Intent: domain.IntentHigh, Reasoning: "Decision maker, target industry.", Score: 50}, nil
}

func TestScoreAndResults(t *testing.T) {
	r, offerID := setup(t, high)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/score/"+offerID.String(), nil))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var scored transport.ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scored))
	assert.Equal(t, 1, scored.ScoreCount)
	assert.Equal(t, 1, scored.Created)
	assert.Equal(t, 0, scored.Skipped)
	assert.Empty(t, scored.Failed)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/score/"+offerID.String(), nil))
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scored))
	assert.Equal(t, 1, scored.ScoreCount)
	assert.Equal(t, 0, scored.Created)
	assert.Equal(t, 1, scored.Skipped)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/results/"+offerID.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var results transport.ResultsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results.FormattedScore, 1)
	assert.Equal(t, 90, results.FormattedScore[0].Score)
	assert.Equal(t, "HIGH", results.FormattedScore[0].Intent)
}

func TestResultsCSV(t *testing.T) {
	r, offerID := setup(t, high)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/score/"+offerID.String(), nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/res_csv/"+offerID.String(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=offer_"+offerID.String()+"_results.csv", w.Header().Get("Content-Disposition"))
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,role,company,intent,score,reasoning", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"Ava, the ""growth"" lead",Head of Growth,FlowMetrics,HIGH,`), lines[1])
}

func TestResultsXLSX(t *testing.T) {
	r, offerID := setup(t, high)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/results/"+offerID.String()+"/xlsx", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeXLSX, w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "xlsx payload should be a zip archive")
}

func TestScoreOverloadReturns503(t *testing.T) {
	r, offerID := setup(t, func(domain.Lead) (intent.Classification, error) {
		return intent.Classification{}, &intent.OverloadError{Provider: intent.ProviderGemini, Err: errors.New("503")}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/score/"+offerID.String(), nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp transport.OverloadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, intent.ProviderGemini, resp.Provider)
	assert.Equal(t, 0, resp.Details.Created)
	assert.NotEmpty(t, resp.Error)
}

func TestScoreErrors(t *testing.T) {
	r, _ := setup(t, high)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/score/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/score/nope", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/res_csv/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
