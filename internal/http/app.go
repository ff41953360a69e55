package http

import (
	"context"

	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/metrics"
)

// HealthChecker backs /api/ready.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App is everything the router needs, assembled in cmd/api.
type App struct {
	Config config.HTTPConfig
	Logger *logger.Logger
	// Health may be nil, in which case /api/ready always reports ready.
	Health HealthChecker
	// Metrics may be nil to run without request metrics or /metrics.
	Metrics *metrics.Manager
	// Modules are mounted under /api/v1 in order.
	Modules []Module
}
