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

const leadNotFoundMessage = "lead not found"

// Lead status values. The mixed casing mirrors the stored data contract.
const (
	StatusNew       = "New"
	StatusHot       = "Hot"
	StatusWarm      = "Warm"
	StatusCold      = "Cold"
	StatusFailed    = "Failed"
	StatusAssigned  = "assigned"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
)

// AssignableStatuses are the lead statuses eligible for assignment.
var AssignableStatuses = []string{StatusNew, StatusHot, StatusWarm, StatusCold}

// Lead is a prospective customer record.
// Counselor mirrors the executive name of the latest active assignment and
// is written only by the assignment ledger.
type Lead struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Status    string
	Priority  string
	Source    string
	Counselor *string
	CreatedAt string
	UpdatedAt string
}

// ListParams controls filtering, pagination, and sorting for lead lists.
type ListParams struct {
	Status    string
	Priority  string
	Search    string
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// CreateParams holds the fields for registering a new lead.
type CreateParams struct {
	Name     string
	Email    string
	Phone    string
	Priority string
	Source   string
}

const leadColumns = `id, name, email, phone, status, priority, source, counselor, created_at, updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves a lead by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("get lead by id: %w", err)
	}

	return lead, nil
}

// ListWithFilters retrieves leads with status/priority filters, search,
// pagination, and sorting.
func (r *Repo) ListWithFilters(ctx context.Context, params ListParams) ([]Lead, int, error) {
	var statusParam interface{}
	if params.Status != "" {
		statusParam = params.Status
	}
	var priorityParam interface{}
	if params.Priority != "" {
		priorityParam = params.Priority
	}
	var searchParam interface{}
	if params.Search != "" {
		searchParam = "%" + params.Search + "%"
	}

	sortBy := "createdAt"
	if params.SortBy != "" {
		switch params.SortBy {
		case "name", "status", "priority", "createdAt":
			sortBy = params.SortBy
		default:
			return nil, 0, apperr.BadRequest("invalid sort field")
		}
	}

	sortOrder := "desc"
	if params.SortOrder != "" {
		switch params.SortOrder {
		case "asc", "desc":
			sortOrder = params.SortOrder
		default:
			return nil, 0, apperr.BadRequest("invalid sort order")
		}
	}

	args := []interface{}{statusParam, priorityParam, searchParam}

	countQuery := `
		SELECT COUNT(*)
		FROM leads
		WHERE ($1::text IS NULL OR status = $1)
			AND ($2::text IS NULL OR priority = $2)
			AND ($3::text IS NULL OR name ILIKE $3 OR email ILIKE $3 OR phone ILIKE $3)
	`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE ($1::text IS NULL OR status = $1)
			AND ($2::text IS NULL OR priority = $2)
			AND ($3::text IS NULL OR name ILIKE $3 OR email ILIKE $3 OR phone ILIKE $3)
		ORDER BY
			CASE WHEN $4 = 'name' AND $5 = 'asc' THEN name END ASC,
			CASE WHEN $4 = 'name' AND $5 = 'desc' THEN name END DESC,
			CASE WHEN $4 = 'status' AND $5 = 'asc' THEN status END ASC,
			CASE WHEN $4 = 'status' AND $5 = 'desc' THEN status END DESC,
			CASE WHEN $4 = 'priority' AND $5 = 'asc' THEN priority END ASC,
			CASE WHEN $4 = 'priority' AND $5 = 'desc' THEN priority END DESC,
			CASE WHEN $4 = 'createdAt' AND $5 = 'asc' THEN created_at END ASC,
			CASE WHEN $4 = 'createdAt' AND $5 = 'desc' THEN created_at END DESC,
			created_at DESC
		LIMIT $6 OFFSET $7
	`

	args = append(args, sortBy, sortOrder, params.Limit, params.Offset)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	items, err := scanLeads(rows)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListAssignable retrieves leads eligible for assignment: workable status and
// not in the excluded (actively assigned) id set, newest first.
func (r *Repo) ListAssignable(ctx context.Context, excludeLeadIDs []uuid.UUID) ([]Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE status = ANY($1)`
	args := []interface{}{AssignableStatuses}

	// An empty exclusion list must not produce an exclusion predicate at all.
	if len(excludeLeadIDs) > 0 {
		query += ` AND NOT (id = ANY($2))`
		args = append(args, excludeLeadIDs)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignable leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// Create registers a new lead with status "New".
func (r *Repo) Create(ctx context.Context, params CreateParams) (Lead, error) {
	query := `
		INSERT INTO leads (name, email, phone, priority, source)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + leadColumns

	lead, err := scanLead(r.pool.QueryRow(ctx, query,
		params.Name, params.Email, params.Phone, params.Priority, params.Source,
	))
	if err != nil {
		return Lead{}, fmt.Errorf("create lead: %w", err)
	}

	return lead, nil
}

// UpdateStatus sets a lead's triage status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Lead, error) {
	query := `
		UPDATE leads SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + leadColumns

	lead, err := scanLead(r.pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("update lead status: %w", err)
	}

	return lead, nil
}

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Status,
		&lead.Priority, &lead.Source, &lead.Counselor, &createdAt, &updatedAt,
	)
	if err != nil {
		return Lead{}, err
	}

	lead.CreatedAt = createdAt.Format(time.RFC3339)
	lead.UpdatedAt = updatedAt.Format(time.RFC3339)

	return lead, nil
}

func scanLeads(rows pgx.Rows) ([]Lead, error) {
	var results []Lead

	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		results = append(results, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}

	return results, nil
}
