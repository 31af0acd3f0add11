package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm_admin_backend/platform/apperr"
)

const (
	assignmentNotFoundMessage = "assignment not found"
	leadAlreadyAssignedMsg    = "lead already has an active assignment"

	uniqueViolationCode = "23505"
)

// Assignment status values.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Lead status values the ledger writes through its dual-writes.
const (
	leadStatusAssigned  = "assigned"
	leadStatusConverted = "converted"
	leadStatusNew       = "New"
)

// Assignment is a ledger row linking one lead to one executive.
type Assignment struct {
	ID          uuid.UUID
	LeadID      uuid.UUID
	AssignedTo  uuid.UUID
	AssignedBy  uuid.UUID
	Status      string
	Priority    string
	Notes       string
	AssignedAt  time.Time
	DueDate     *time.Time
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// Detail is an assignment with the related lead and executive joined in.
type Detail struct {
	Assignment
	LeadName       string
	ExecutiveName  string
	ExecutiveEmail string
}

// Created is the result of CreateActive, carrying the related names the
// service needs for events and notifications.
type Created struct {
	Assignment
	LeadName       string
	ExecutiveName  string
	ExecutiveEmail string
}

// CreateParams holds the fields for creating an active assignment.
type CreateParams struct {
	LeadID     uuid.UUID
	AssignedTo uuid.UUID
	AssignedBy uuid.UUID
	Priority   string
	Notes      string
	AssignedAt time.Time
	DueDate    time.Time
}

// ListParams controls filtering and pagination for the assignment ledger.
type ListParams struct {
	Status      string
	ExecutiveID *uuid.UUID
	Limit       int
	Offset      int
}

const assignmentColumns = `a.id, a.lead_id, a.assigned_to, a.assigned_by, a.status, a.priority, a.notes, a.assigned_at, a.due_date, a.completed_at, a.updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignments repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetDetail retrieves an assignment with its related lead and executive.
func (r *Repo) GetDetail(ctx context.Context, id uuid.UUID) (Detail, error) {
	query := `
		SELECT ` + assignmentColumns + `, l.name, e.name, e.email
		FROM assignments a
		JOIN leads l ON l.id = a.lead_id
		JOIN executives e ON e.id = a.assigned_to
		WHERE a.id = $1`

	detail, err := scanDetail(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Detail{}, apperr.NotFound(assignmentNotFoundMessage)
		}
		return Detail{}, fmt.Errorf("get assignment detail: %w", err)
	}

	return detail, nil
}

// ListWithFilters retrieves the ledger with related names, optionally scoped
// to one executive and/or one status, newest first.
func (r *Repo) ListWithFilters(ctx context.Context, params ListParams) ([]Detail, int, error) {
	var statusParam interface{}
	if params.Status != "" {
		switch params.Status {
		case StatusActive, StatusCompleted, StatusCancelled:
			statusParam = params.Status
		default:
			return nil, 0, apperr.BadRequest("invalid assignment status filter")
		}
	}
	var executiveParam interface{}
	if params.ExecutiveID != nil {
		executiveParam = *params.ExecutiveID
	}

	countQuery := `
		SELECT COUNT(*)
		FROM assignments a
		WHERE ($1::text IS NULL OR a.status = $1)
			AND ($2::uuid IS NULL OR a.assigned_to = $2)
	`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, statusParam, executiveParam).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assignments: %w", err)
	}

	query := `
		SELECT ` + assignmentColumns + `, l.name, e.name, e.email
		FROM assignments a
		JOIN leads l ON l.id = a.lead_id
		JOIN executives e ON e.id = a.assigned_to
		WHERE ($1::text IS NULL OR a.status = $1)
			AND ($2::uuid IS NULL OR a.assigned_to = $2)
		ORDER BY a.assigned_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, statusParam, executiveParam, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var results []Detail
	for rows.Next() {
		detail, err := scanDetail(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan assignment: %w", err)
		}
		results = append(results, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate assignments: %w", err)
	}

	return results, total, nil
}

// ActiveLeadIDs returns the ids of leads that currently carry an active
// assignment.
func (r *Repo) ActiveLeadIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT lead_id FROM assignments WHERE status = 'active'`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("active lead ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan active lead id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active lead ids: %w", err)
	}

	return ids, nil
}

// CreateActive inserts an active assignment and marks its lead assigned in
// one transaction. The insert is conditional on the lead having no active
// assignment; concurrent creates race on the partial unique index and the
// loser gets a conflict.
func (r *Repo) CreateActive(ctx context.Context, params CreateParams) (Created, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Created{}, fmt.Errorf("begin create assignment: %w", err)
	}
	defer tx.Rollback(ctx)

	var created Created

	err = tx.QueryRow(ctx,
		`SELECT name, email FROM executives WHERE id = $1 AND is_active`,
		params.AssignedTo,
	).Scan(&created.ExecutiveName, &created.ExecutiveEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Created{}, apperr.NotFound("executive not found or inactive")
		}
		return Created{}, fmt.Errorf("resolve executive: %w", err)
	}

	err = tx.QueryRow(ctx, `SELECT name FROM leads WHERE id = $1`, params.LeadID).Scan(&created.LeadName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Created{}, apperr.NotFound("lead not found")
		}
		return Created{}, fmt.Errorf("resolve lead: %w", err)
	}

	insertQuery := `
		INSERT INTO assignments (lead_id, assigned_to, assigned_by, priority, notes, assigned_at, due_date)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE NOT EXISTS (
			SELECT 1 FROM assignments WHERE lead_id = $1 AND status = 'active'
		)
		RETURNING ` + bareAssignmentColumns

	err = scanAssignment(tx.QueryRow(ctx, insertQuery,
		params.LeadID, params.AssignedTo, params.AssignedBy,
		params.Priority, params.Notes, params.AssignedAt, params.DueDate,
	), &created.Assignment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return Created{}, apperr.Conflict(leadAlreadyAssignedMsg)
		}
		return Created{}, fmt.Errorf("insert assignment: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE leads SET status = $2, counselor = $3, updated_at = now() WHERE id = $1`,
		params.LeadID, leadStatusAssigned, created.ExecutiveName,
	)
	if err != nil {
		return Created{}, fmt.Errorf("mark lead assigned: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return Created{}, apperr.Conflict(leadAlreadyAssignedMsg)
		}
		return Created{}, fmt.Errorf("commit create assignment: %w", err)
	}

	return created, nil
}

// UpdateStatus transitions an assignment. completed_at is set exactly when
// the new status is completed. When syncLead is true a completion also marks
// the owning lead converted; by default the lead keeps its assigned state.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, syncLead bool) (Assignment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Assignment{}, fmt.Errorf("begin update assignment: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE assignments SET
			status = $2,
			completed_at = CASE WHEN $2 = 'completed' THEN now() ELSE NULL END,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + bareAssignmentColumns

	var assignment Assignment
	if err := scanAssignment(tx.QueryRow(ctx, query, id, status), &assignment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Assignment{}, apperr.NotFound(assignmentNotFoundMessage)
		}
		return Assignment{}, fmt.Errorf("update assignment status: %w", err)
	}

	if syncLead && status == StatusCompleted {
		_, err = tx.Exec(ctx,
			`UPDATE leads SET status = $2, updated_at = now() WHERE id = $1`,
			assignment.LeadID, leadStatusConverted,
		)
		if err != nil {
			return Assignment{}, fmt.Errorf("sync lead on completion: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Assignment{}, fmt.Errorf("commit update assignment: %w", err)
	}

	return assignment, nil
}

// Delete removes an assignment and reverts its lead to the unassigned pool
// (status "New", no counselor) in one transaction.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (Assignment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Assignment{}, fmt.Errorf("begin delete assignment: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `DELETE FROM assignments WHERE id = $1 RETURNING ` + bareAssignmentColumns

	var assignment Assignment
	if err := scanAssignment(tx.QueryRow(ctx, query, id), &assignment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Assignment{}, apperr.NotFound(assignmentNotFoundMessage)
		}
		return Assignment{}, fmt.Errorf("delete assignment: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE leads SET status = $2, counselor = NULL, updated_at = now() WHERE id = $1`,
		assignment.LeadID, leadStatusNew,
	)
	if err != nil {
		return Assignment{}, fmt.Errorf("revert lead on delete: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Assignment{}, fmt.Errorf("commit delete assignment: %w", err)
	}

	return assignment, nil
}

const bareAssignmentColumns = `id, lead_id, assigned_to, assigned_by, status, priority, notes, assigned_at, due_date, completed_at, updated_at`

func scanAssignment(row pgx.Row, a *Assignment) error {
	return row.Scan(
		&a.ID, &a.LeadID, &a.AssignedTo, &a.AssignedBy, &a.Status, &a.Priority,
		&a.Notes, &a.AssignedAt, &a.DueDate, &a.CompletedAt, &a.UpdatedAt,
	)
}

func scanDetail(row pgx.Row) (Detail, error) {
	var d Detail
	err := row.Scan(
		&d.ID, &d.LeadID, &d.AssignedTo, &d.AssignedBy, &d.Status, &d.Priority,
		&d.Notes, &d.AssignedAt, &d.DueDate, &d.CompletedAt, &d.UpdatedAt,
		&d.LeadName, &d.ExecutiveName, &d.ExecutiveEmail,
	)
	if err != nil {
		return Detail{}, err
	}
	return d, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
