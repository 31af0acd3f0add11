package repository

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for leads.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	ListWithFilters(ctx context.Context, params ListParams) ([]Lead, int, error)
	ListAssignable(ctx context.Context, excludeLeadIDs []uuid.UUID) ([]Lead, error)
	Create(ctx context.Context, params CreateParams) (Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Lead, error)
}
