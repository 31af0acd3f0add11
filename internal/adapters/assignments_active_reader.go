// Package adapters wires module services to the ports other modules consume,
// keeping the bounded contexts free of direct dependencies on each other.
package adapters

import (
	"context"

	"crm_admin_backend/internal/assignments/service"
	"crm_admin_backend/internal/leads/ports"

	"github.com/google/uuid"
)

// ActiveAssignmentAdapter adapts the assignments service for the leads domain.
// It implements the leads/ports.ActiveAssignmentReader interface.
type ActiveAssignmentAdapter struct {
	svc *service.Service
}

func NewActiveAssignmentAdapter(svc *service.Service) *ActiveAssignmentAdapter {
	return &ActiveAssignmentAdapter{svc: svc}
}

func (a *ActiveAssignmentAdapter) ActiveLeadIDs(ctx context.Context) ([]uuid.UUID, error) {
	return a.svc.ActiveLeadIDs(ctx)
}

var _ ports.ActiveAssignmentReader = (*ActiveAssignmentAdapter)(nil)
