package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type echoModule struct{}

func (echoModule) Name() string { return "echo" }

func (echoModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, "echo")
	})
}

func newApp(cfg *config.Config, health apphttp.HealthChecker) *apphttp.App {
	return &apphttp.App{
		Config:  cfg,
		Logger:  logger.Discard(),
		Health:  health,
		Metrics: metrics.New(),
		Modules: []apphttp.Module{echoModule{}},
	}
}

func serve(t *testing.T, engine *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHealthAndModuleRoutes(t *testing.T) {
	engine := New(newApp(&config.Config{MetricsEnabled: true}, nil))

	rec := serve(t, engine, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = serve(t, engine, http.MethodGet, "/api/v1/echo", map[string]string{"X-Request-ID": "req-1"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "echo", rec.Body.String())
	assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))
}

func TestReadyReflectsDatabase(t *testing.T) {
	healthy := New(newApp(&config.Config{}, pingFunc(func(context.Context) error { return nil })))
	assert.Equal(t, http.StatusOK, serve(t, healthy, http.MethodGet, "/api/ready", nil).Code)

	down := New(newApp(&config.Config{}, pingFunc(func(context.Context) error { return errors.New("connection refused") })))
	assert.Equal(t, http.StatusServiceUnavailable, serve(t, down, http.MethodGet, "/api/ready", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	engine := New(newApp(&config.Config{MetricsEnabled: true}, nil))
	serve(t, engine, http.MethodGet, "/api/v1/echo", nil)

	rec := serve(t, engine, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "leadscore_http_requests_total")

	disabled := New(newApp(&config.Config{}, nil))
	assert.Equal(t, http.StatusNotFound, serve(t, disabled, http.MethodGet, "/metrics", nil).Code)
}

func TestSwaggerToggle(t *testing.T) {
	enabled := New(newApp(&config.Config{SwaggerEnabled: true}, nil))
	rec := serve(t, enabled, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/score/{offerId}")

	disabled := New(newApp(&config.Config{}, nil))
	assert.Equal(t, http.StatusNotFound, serve(t, disabled, http.MethodGet, "/swagger/doc.json", nil).Code)
}

func TestCORSAllowedOrigin(t *testing.T) {
	engine := New(newApp(&config.Config{CORSOrigins: []string{"http://localhost:3000"}}, nil))

	rec := serve(t, engine, http.MethodGet, "/api/health", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(t, engine, http.MethodGet, "/api/health", map[string]string{"Origin": "http://evil.example"})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
