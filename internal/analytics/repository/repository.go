// Package repository loads the read-only snapshot the metrics derivations
// run over. Analytics never writes; it reads across the lead, executive and
// assignment tables in one place instead of fanning out through the owning
// modules.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm_admin_backend/internal/analytics/stats"
	"crm_admin_backend/platform/apperr"
)

// Executive is the snapshot view of an executive row.
type Executive struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

// Repository defines the snapshot reads for analytics.
type Repository interface {
	Leads(ctx context.Context) ([]stats.Lead, error)
	Executives(ctx context.Context) ([]Executive, error)
	Assignments(ctx context.Context) ([]stats.Assignment, error)
	Executive(ctx context.Context, id uuid.UUID) (Executive, error)
}

type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

func (r *Repo) Leads(ctx context.Context) ([]stats.Lead, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, status, created_at FROM leads`)
	if err != nil {
		return nil, fmt.Errorf("query leads snapshot: %w", err)
	}
	defer rows.Close()

	leads := make([]stats.Lead, 0)
	for rows.Next() {
		var lead stats.Lead
		if err := rows.Scan(&lead.ID, &lead.Status, &lead.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead snapshot row: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *Repo) Executives(ctx context.Context) ([]Executive, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, is_active FROM executives ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query executives snapshot: %w", err)
	}
	defer rows.Close()

	executives := make([]Executive, 0)
	for rows.Next() {
		var exec Executive
		if err := rows.Scan(&exec.ID, &exec.Name, &exec.IsActive); err != nil {
			return nil, fmt.Errorf("scan executive snapshot row: %w", err)
		}
		executives = append(executives, exec)
	}
	return executives, rows.Err()
}

func (r *Repo) Assignments(ctx context.Context) ([]stats.Assignment, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, lead_id, assigned_to, status, priority, due_date FROM assignments`)
	if err != nil {
		return nil, fmt.Errorf("query assignments snapshot: %w", err)
	}
	defer rows.Close()

	assignments := make([]stats.Assignment, 0)
	for rows.Next() {
		var a stats.Assignment
		if err := rows.Scan(&a.ID, &a.LeadID, &a.ExecutiveID, &a.Status, &a.Priority, &a.DueDate); err != nil {
			return nil, fmt.Errorf("scan assignment snapshot row: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *Repo) Executive(ctx context.Context, id uuid.UUID) (Executive, error) {
	var exec Executive
	err := r.pool.QueryRow(ctx, `SELECT id, name, is_active FROM executives WHERE id = $1`, id).
		Scan(&exec.ID, &exec.Name, &exec.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Executive{}, apperr.NotFound("executive not found")
		}
		return Executive{}, fmt.Errorf("query executive: %w", err)
	}
	return exec, nil
}
