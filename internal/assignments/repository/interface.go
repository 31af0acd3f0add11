package repository

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for the assignment ledger.
// Create and Delete perform the paired lead write in the same transaction,
// so the denormalized lead fields can never drift from the ledger.
type Repository interface {
	GetDetail(ctx context.Context, id uuid.UUID) (Detail, error)
	ListWithFilters(ctx context.Context, params ListParams) ([]Detail, int, error)
	ActiveLeadIDs(ctx context.Context) ([]uuid.UUID, error)
	CreateActive(ctx context.Context, params CreateParams) (Created, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, syncLead bool) (Assignment, error)
	Delete(ctx context.Context, id uuid.UUID) (Assignment, error)
}
