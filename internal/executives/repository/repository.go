package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm_admin_backend/platform/apperr"
)

const executiveNotFoundMessage = "executive not found"

// Executive is a staff member eligible to receive lead assignments.
// The roster's assignment counts are derived at read time, never stored.
type Executive struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Specialty string
	IsActive  bool
	CreatedAt string
	UpdatedAt string
}

// RosterRow is an executive with per-status assignment counts attached.
type RosterRow struct {
	Executive
	ActiveAssignments    int
	CompletedAssignments int
}

// Repository defines the persistence operations for executives.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Executive, error)
	ListActive(ctx context.Context) ([]Executive, error)
	Roster(ctx context.Context) ([]RosterRow, error)
	RosterRow(ctx context.Context, id uuid.UUID) (RosterRow, error)
}

const executiveColumns = `e.id, e.name, e.email, e.phone, e.specialty, e.is_active, e.created_at, e.updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new executives repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves an executive by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Executive, error) {
	query := `SELECT ` + executiveColumns + ` FROM executives e WHERE e.id = $1`

	exec, err := scanExecutive(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Executive{}, apperr.NotFound(executiveNotFoundMessage)
		}
		return Executive{}, fmt.Errorf("get executive by id: %w", err)
	}

	return exec, nil
}

// ListActive retrieves active executives ordered by name.
func (r *Repo) ListActive(ctx context.Context) ([]Executive, error) {
	query := `SELECT ` + executiveColumns + ` FROM executives e WHERE e.is_active ORDER BY e.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active executives: %w", err)
	}
	defer rows.Close()

	var results []Executive
	for rows.Next() {
		exec, err := scanExecutive(rows)
		if err != nil {
			return nil, fmt.Errorf("scan executive: %w", err)
		}
		results = append(results, exec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate executives: %w", err)
	}

	return results, nil
}

const rosterQuery = `
	SELECT ` + executiveColumns + `,
		COUNT(a.id) FILTER (WHERE a.status = 'active') AS active_assignments,
		COUNT(a.id) FILTER (WHERE a.status = 'completed') AS completed_assignments
	FROM executives e
	LEFT JOIN assignments a ON a.assigned_to = e.id
`

// Roster retrieves all executives with per-status assignment counts.
func (r *Repo) Roster(ctx context.Context) ([]RosterRow, error) {
	query := rosterQuery + ` GROUP BY e.id ORDER BY e.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("executive roster: %w", err)
	}
	defer rows.Close()

	var results []RosterRow
	for rows.Next() {
		row, err := scanRosterRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roster: %w", err)
	}

	return results, nil
}

// RosterRow retrieves one executive with assignment counts.
func (r *Repo) RosterRow(ctx context.Context, id uuid.UUID) (RosterRow, error) {
	query := rosterQuery + ` WHERE e.id = $1 GROUP BY e.id`

	row, err := scanRosterRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RosterRow{}, apperr.NotFound(executiveNotFoundMessage)
		}
		return RosterRow{}, fmt.Errorf("executive roster row: %w", err)
	}

	return row, nil
}

func scanExecutive(row pgx.Row) (Executive, error) {
	var exec Executive
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&exec.ID, &exec.Name, &exec.Email, &exec.Phone, &exec.Specialty,
		&exec.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return Executive{}, err
	}

	exec.CreatedAt = createdAt.Format(time.RFC3339)
	exec.UpdatedAt = updatedAt.Format(time.RFC3339)

	return exec, nil
}

func scanRosterRow(row pgx.Row) (RosterRow, error) {
	var result RosterRow
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&result.ID, &result.Name, &result.Email, &result.Phone, &result.Specialty,
		&result.IsActive, &createdAt, &updatedAt,
		&result.ActiveAssignments, &result.CompletedAssignments,
	)
	if err != nil {
		return RosterRow{}, err
	}

	result.CreatedAt = createdAt.Format(time.RFC3339)
	result.UpdatedAt = updatedAt.Format(time.RFC3339)

	return result, nil
}
