// Package executives provides the executives bounded context module.
// Executive accounts themselves are managed by the external identity system;
// this module serves the roster and its derived workload metrics.
package executives

import (
	apphttp "crm_admin_backend/internal/http"
	"crm_admin_backend/internal/executives/handler"
	"crm_admin_backend/internal/executives/repository"
	"crm_admin_backend/internal/executives/service"
	"crm_admin_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the executives bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the executives module.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "executives"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts executive routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/executives")
	group.GET("", m.handler.ListActive)
	group.GET("/roster", m.handler.Roster)
	group.GET("/:id", m.handler.GetByID)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
