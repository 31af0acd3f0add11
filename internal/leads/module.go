// Package leads provides the leads bounded context module: the lead roster
// the dashboard browses and the assignable-pool resolver.
package leads

import (
	apphttp "crm_admin_backend/internal/http"
	"crm_admin_backend/internal/leads/handler"
	"crm_admin_backend/internal/leads/ports"
	"crm_admin_backend/internal/leads/repository"
	"crm_admin_backend/internal/leads/service"
	"crm_admin_backend/platform/config"
	"crm_admin_backend/platform/logger"
	"crm_admin_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, cfg config.PhoneConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// SetAssignmentReader wires the cross-module reader for active assignments.
func (m *Module) SetAssignmentReader(reader ports.ActiveAssignmentReader) {
	m.service.SetAssignmentReader(reader)
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/leads")
	group.GET("", m.handler.List)
	group.GET("/assignable", m.handler.AssignablePool)
	group.POST("", m.handler.Create)
	group.GET("/:id", m.handler.GetByID)
	group.PATCH("/:id/status", m.handler.UpdateStatus)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
