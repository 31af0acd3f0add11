package transport

import "github.com/google/uuid"

// ExecutiveResponse is the API representation of an executive.
type ExecutiveResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Specialty string    `json:"specialty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// RosterEntryResponse is an executive with derived workload fields.
// The counts and score are recomputed on every read.
type RosterEntryResponse struct {
	ExecutiveResponse
	ActiveAssignments    int `json:"activeAssignments"`
	CompletedAssignments int `json:"completedAssignments"`
	PerformanceScore     int `json:"performanceScore"`
}

// RosterResponse is the full executive roster.
type RosterResponse struct {
	Items []RosterEntryResponse `json:"items"`
	Total int                   `json:"total"`
}

// ExecutiveListResponse is the plain list of active executives.
type ExecutiveListResponse struct {
	Items []ExecutiveResponse `json:"items"`
	Total int                 `json:"total"`
}
