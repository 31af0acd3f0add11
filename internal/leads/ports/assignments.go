// Package ports declares the interfaces the leads module needs from other
// bounded contexts. Implementations live in internal/adapters.
package ports

import (
	"context"

	"github.com/google/uuid"
)

// ActiveAssignmentReader reports which leads currently carry an active
// assignment, so the pool resolver can exclude them.
type ActiveAssignmentReader interface {
	ActiveLeadIDs(ctx context.Context) ([]uuid.UUID, error)
}
