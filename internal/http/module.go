// Package http holds the contract between bounded contexts and the router.
package http

import (
	"leadscore_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module is a bounded context that mounts its own routes.
type Module interface {
	Name() string
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext is what a module gets to mount routes on.
type RouterContext struct {
	Engine *gin.Engine
	// V1 is the /api/v1 group; modules add their own sub-groups.
	V1 *gin.RouterGroup
}

// Mount registers every module in order and logs each one.
func Mount(ctx *RouterContext, log *logger.Logger, modules ...Module) {
	for _, m := range modules {
		m.RegisterRoutes(ctx)
		log.Info("module registered", "module", m.Name())
	}
}
