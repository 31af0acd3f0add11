// Package analytics provides the reporting bounded context module. All of
// its numbers are derived on read from the current database state.
package analytics

import (
	"crm_admin_backend/internal/analytics/handler"
	"crm_admin_backend/internal/analytics/repository"
	"crm_admin_backend/internal/analytics/service"
	apphttp "crm_admin_backend/internal/http"
	"crm_admin_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the analytics bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the analytics module.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "analytics"
}

// RegisterRoutes mounts analytics routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/analytics")
	group.GET("/dashboard", m.handler.Dashboard)
	group.GET("/executives/:id", m.handler.ExecutiveMetrics)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
