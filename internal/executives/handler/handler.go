package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crm_admin_backend/internal/executives/service"
	"crm_admin_backend/platform/httpkit"
)

const msgInvalidID = "invalid executive ID"

// Handler handles HTTP requests for executives.
type Handler struct {
	svc *service.Service
}

// New creates a new executives handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListActive retrieves active executives.
// GET /api/v1/executives
func (h *Handler) ListActive(c *gin.Context) {
	result, err := h.svc.ListActive(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Roster retrieves all executives with derived workload fields.
// GET /api/v1/executives/roster
func (h *Handler) Roster(c *gin.Context) {
	result, err := h.svc.Roster(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetByID retrieves an executive with derived workload fields.
// GET /api/v1/executives/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	result, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
