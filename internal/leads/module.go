// Package leads provides the lead ingestion bounded context module.
package leads

import (
	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/leads/handler"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/service"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	repo    *repository.Repository
}

// NewModule wires the lead repository, ingestion service and handler.
// archiver and observer may be nil.
func NewModule(pool *pgxpool.Pool, cfg config.IngestConfig, archiver service.Archiver, observer service.IngestObserver, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, archiver, observer, cfg.GetUploadMaxBytes(), log)
	return &Module{
		handler: handler.New(svc, cfg.GetUploadMaxBytes()),
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Repository exposes lead storage for cross-context adapters.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// RegisterRoutes mounts lead routes under /api/v1/leads.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/leads"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
