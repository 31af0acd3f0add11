// Package transport defines the request and response DTOs for the
// assignments API.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreateAssignmentRequest is the payload for assigning a lead to an executive.
type CreateAssignmentRequest struct {
	LeadID      uuid.UUID  `json:"leadId" binding:"required"`
	ExecutiveID uuid.UUID  `json:"executiveId" binding:"required"`
	AssignerID  uuid.UUID  `json:"assignerId" binding:"required"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=High Medium Low"`
	Notes       string     `json:"notes" binding:"omitempty,max=2000"`
	DueDate     *time.Time `json:"dueDate" binding:"omitempty"`
}

// UpdateAssignmentStatusRequest changes the status of an assignment.
type UpdateAssignmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active completed cancelled"`
}

// ListAssignmentsRequest carries filter and pagination query parameters.
type ListAssignmentsRequest struct {
	Status      string `form:"status" binding:"omitempty,oneof=active completed cancelled"`
	ExecutiveID string `form:"executiveId" binding:"omitempty,uuid"`
	Page        int    `form:"page"`
	PageSize    int    `form:"pageSize"`
}

// AssignmentResponse is the API shape of a single assignment.
type AssignmentResponse struct {
	ID             uuid.UUID  `json:"id"`
	LeadID         uuid.UUID  `json:"leadId"`
	LeadName       string     `json:"leadName,omitempty"`
	ExecutiveID    uuid.UUID  `json:"executiveId"`
	ExecutiveName  string     `json:"executiveName,omitempty"`
	AssignedBy     uuid.UUID  `json:"assignedBy"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	Notes          string     `json:"notes"`
	AssignedAt     time.Time  `json:"assignedAt"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	Overdue        bool       `json:"overdue"`
}

// AssignmentListResponse is a paginated page of assignments.
type AssignmentListResponse struct {
	Items    []AssignmentResponse `json:"items"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}
