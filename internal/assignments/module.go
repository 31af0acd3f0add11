// Package assignments provides the assignment ledger bounded context module.
// It owns the lead-to-executive allocation records and performs the paired
// lead updates transactionally.
package assignments

import (
	"crm_admin_backend/internal/assignments/handler"
	"crm_admin_backend/internal/assignments/repository"
	"crm_admin_backend/internal/assignments/service"
	"crm_admin_backend/internal/events"
	apphttp "crm_admin_backend/internal/http"
	"crm_admin_backend/internal/scheduler"
	"crm_admin_backend/platform/config"
	"crm_admin_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the assignments bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the assignments module. The reminder
// scheduler may be nil when redis is not configured.
func NewModule(pool *pgxpool.Pool, cfg config.AssignmentConfig, bus events.Bus, reminders scheduler.DueReminderScheduler, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, bus, reminders, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "assignments"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository exposes the ledger repository for the background worker.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts assignment routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/assignments")
	group.GET("", m.handler.List)
	group.POST("", m.handler.Create)
	group.GET("/:id", m.handler.GetByID)
	group.PATCH("/:id/status", m.handler.UpdateStatus)
	group.DELETE("/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
