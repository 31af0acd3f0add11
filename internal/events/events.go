// Package events re-exports the platform event bus and defines the domain
// events exchanged between modules.
package events

import (
	"github.com/google/uuid"

	platformevents "crm_admin_backend/platform/events"
	"crm_admin_backend/platform/logger"
)

// Event is a type alias to the platform Event interface.
type Event = platformevents.Event

// Bus is a type alias to the platform Bus interface.
type Bus = platformevents.Bus

// Handler is a type alias to the platform Handler interface.
type Handler = platformevents.Handler

// InMemoryBus is a type alias to the platform InMemoryBus.
type InMemoryBus = platformevents.InMemoryBus

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}

// AssignmentCreated is published after a lead has been assigned to an
// executive and the lead's denormalized fields were updated.
type AssignmentCreated struct {
	platformevents.BaseEvent
	AssignmentID   uuid.UUID
	LeadID         uuid.UUID
	LeadName       string
	ExecutiveID    uuid.UUID
	ExecutiveName  string
	ExecutiveEmail string
	Priority       string
	DueDate        string
}

// EventName returns the unique event identifier.
func (AssignmentCreated) EventName() string { return "assignments.created" }

// AssignmentCompleted is published when an assignment transitions to completed.
type AssignmentCompleted struct {
	platformevents.BaseEvent
	AssignmentID uuid.UUID
	LeadID       uuid.UUID
	ExecutiveID  uuid.UUID
}

// EventName returns the unique event identifier.
func (AssignmentCompleted) EventName() string { return "assignments.completed" }

// AssignmentDeleted is published after an assignment was removed and its
// lead reverted to the unassigned pool.
type AssignmentDeleted struct {
	platformevents.BaseEvent
	AssignmentID uuid.UUID
	LeadID       uuid.UUID
}

// EventName returns the unique event identifier.
func (AssignmentDeleted) EventName() string { return "assignments.deleted" }
