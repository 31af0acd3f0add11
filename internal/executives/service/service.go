package service

import (
	"context"

	"github.com/google/uuid"

	"crm_admin_backend/internal/analytics/stats"
	"crm_admin_backend/internal/executives/repository"
	"crm_admin_backend/internal/executives/transport"
	"crm_admin_backend/platform/logger"
)

// Service provides business logic for executives.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new executives service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetByID retrieves an executive with derived workload fields.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.RosterEntryResponse, error) {
	row, err := s.repo.RosterRow(ctx, id)
	if err != nil {
		return transport.RosterEntryResponse{}, err
	}
	return toRosterEntry(row), nil
}

// ListActive retrieves active executives without derived fields.
func (s *Service) ListActive(ctx context.Context) (transport.ExecutiveListResponse, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return transport.ExecutiveListResponse{}, err
	}

	responses := make([]transport.ExecutiveResponse, len(items))
	for i, item := range items {
		responses[i] = toResponse(item)
	}
	return transport.ExecutiveListResponse{Items: responses, Total: len(responses)}, nil
}

// Roster retrieves all executives with assignment counts and performance
// scores derived from the current ledger snapshot.
func (s *Service) Roster(ctx context.Context) (transport.RosterResponse, error) {
	rows, err := s.repo.Roster(ctx)
	if err != nil {
		return transport.RosterResponse{}, err
	}

	entries := make([]transport.RosterEntryResponse, len(rows))
	for i, row := range rows {
		entries[i] = toRosterEntry(row)
	}
	return transport.RosterResponse{Items: entries, Total: len(entries)}, nil
}

func toResponse(exec repository.Executive) transport.ExecutiveResponse {
	return transport.ExecutiveResponse{
		ID:        exec.ID,
		Name:      exec.Name,
		Email:     exec.Email,
		Phone:     exec.Phone,
		Specialty: exec.Specialty,
		IsActive:  exec.IsActive,
		CreatedAt: exec.CreatedAt,
		UpdatedAt: exec.UpdatedAt,
	}
}

func toRosterEntry(row repository.RosterRow) transport.RosterEntryResponse {
	return transport.RosterEntryResponse{
		ExecutiveResponse:    toResponse(row.Executive),
		ActiveAssignments:    row.ActiveAssignments,
		CompletedAssignments: row.CompletedAssignments,
		PerformanceScore:     stats.PerformanceScore(row.CompletedAssignments, row.ActiveAssignments),
	}
}
