package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leadscore_backend/internal/offers/repository"
	"leadscore_backend/internal/offers/service"
	"leadscore_backend/internal/offers/transport"
	"leadscore_backend/platform/httpkit"
	"leadscore_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	offers map[uuid.UUID]repository.Offer
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{offers: map[uuid.UUID]repository.Offer{}}
}

func (m *memoryRepo) Create(_ context.Context, p repository.CreateParams) (repository.Offer, error) {
	o := repository.Offer{
		ID:            uuid.New(),
		Name:          p.Name,
		ValueProps:    p.ValueProps,
		IdealUseCases: p.IdealUseCases,
		CreatedAt:     time.Now(),
	}
	m.offers[o.ID] = o
	return o, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Offer, error) {
	o, ok := m.offers[id]
	if !ok {
		return repository.Offer{}, repository.ErrNotFound
	}
	return o, nil
}

func (m *memoryRepo) List(context.Context) ([]repository.Offer, error) {
	out := make([]repository.Offer, 0, len(m.offers))
	for _, o := range m.offers {
		out = append(out, o)
	}
	return out, nil
}

func newRouter(repo *memoryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(service.New(repo), validator.New()).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestCreateOffer(t *testing.T) {
	repo := newMemoryRepo()
	r := newRouter(repo)

	body := `{"name":" AI Outreach Automation ","value_props":["24/7 outreach","6x more meetings"],"ideal_use_cases":["B2B SaaS mid-market"]}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/offer", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp transport.CreateOfferResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AI Outreach Automation", resp.Offer.Name)
	assert.Equal(t, []string{"B2B SaaS mid-market"}, resp.Offer.IdealUseCases)
	assert.Len(t, repo.offers, 1)
}

func TestCreateOfferValidation(t *testing.T) {
	cases := map[string]string{
		"missing name":      `{"value_props":["a"],"ideal_use_cases":["b"]}`,
		"blank name":        `{"name":"   ","value_props":["a"],"ideal_use_cases":["b"]}`,
		"empty value props": `{"name":"x","value_props":[],"ideal_use_cases":["b"]}`,
		"blank use case":    `{"name":"x","value_props":["a"],"ideal_use_cases":[" "]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newMemoryRepo()
			w := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/offer", strings.NewReader(body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp httpkit.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, msgValidationFailed, resp.Error)
			assert.Empty(t, repo.offers)
		})
	}
}

func TestCreateOfferMalformedJSON(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(newMemoryRepo()).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/offer", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOffer(t *testing.T) {
	repo := newMemoryRepo()
	created, _ := repo.Create(context.Background(), repository.CreateParams{Name: "x", ValueProps: []string{"a"}, IdealUseCases: []string{"b"}})
	r := newRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/offers/"+created.ID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/offers/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/offers/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOffers(t *testing.T) {
	repo := newMemoryRepo()
	_, _ = repo.Create(context.Background(), repository.CreateParams{Name: "x", ValueProps: []string{"a"}, IdealUseCases: []string{"b"}})
	w := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/offers", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp transport.ListOffersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}
