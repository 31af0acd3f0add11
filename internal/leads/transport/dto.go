package transport

import "github.com/google/uuid"

// LeadResponse is the API representation of a lead.
type LeadResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	Source    string    `json:"source"`
	Counselor *string   `json:"counselor"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// LeadListResponse is a paginated list of leads.
type LeadListResponse struct {
	Items      []LeadResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// AssignablePoolResponse is the ordered set of leads eligible for assignment.
type AssignablePoolResponse struct {
	Items []LeadResponse `json:"items"`
	Total int            `json:"total"`
}

// ListLeadsRequest holds query parameters for the lead list endpoint.
type ListLeadsRequest struct {
	Status    string `form:"status"`
	Priority  string `form:"priority"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

// CreateLeadRequest registers a walk-in lead from the admin dashboard.
type CreateLeadRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Priority string `json:"priority" validate:"omitempty,oneof=High Medium Low"`
	Source   string `json:"source" validate:"omitempty,max=100"`
}

// UpdateLeadStatusRequest sets a lead's triage status.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
