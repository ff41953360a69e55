// Package scoring provides the lead scoring bounded context module.
package scoring

import (
	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/scoring/handler"
	"leadscore_backend/internal/scoring/intent"
	"leadscore_backend/internal/scoring/ports"
	"leadscore_backend/internal/scoring/repository"
	"leadscore_backend/internal/scoring/rules"
	"leadscore_backend/internal/scoring/service"
	"leadscore_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the scoring bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the score repository, orchestrator and handler.
func NewModule(pool *pgxpool.Pool, offers ports.OfferReader, leads ports.LeadReader, scorer *rules.Scorer, classifier intent.Classifier, observer service.RunObserver, log *logger.Logger) *Module {
	svc := service.New(offers, leads, repository.New(pool), scorer, classifier, observer, log)
	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "scoring"
}

// Service returns the orchestrator for callers outside HTTP.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts scoring and results routes on /api/v1.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
