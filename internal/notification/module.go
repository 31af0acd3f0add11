// Package notification provides event handlers for sending notifications in
// response to domain events. Domain modules publish events and stay unaware
// of email providers or templates.
package notification

import (
	"context"
	"time"

	"crm_admin_backend/internal/email"
	"crm_admin_backend/internal/events"
	"crm_admin_backend/platform/logger"
)

// Module handles all notification-related event subscriptions.
type Module struct {
	sender email.Sender
	log    *logger.Logger
}

// New creates a new notification module.
func New(sender email.Sender, log *logger.Logger) *Module {
	return &Module{
		sender: sender,
		log:    log,
	}
}

// RegisterHandlers subscribes to the relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.AssignmentCreated{}.EventName(), m)
	bus.Subscribe(events.AssignmentCompleted{}.EventName(), m)
	bus.Subscribe(events.AssignmentDeleted{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.AssignmentCreated:
		return m.handleAssignmentCreated(ctx, e)
	case events.AssignmentCompleted:
		m.log.Info("assignment completed", "assignmentId", e.AssignmentID, "executiveId", e.ExecutiveID)
		return nil
	case events.AssignmentDeleted:
		m.log.Info("assignment deleted", "assignmentId", e.AssignmentID, "leadId", e.LeadID)
		return nil
	default:
		m.log.Warn("unhandled event type", "event", event.EventName())
		return nil
	}
}

func (m *Module) handleAssignmentCreated(ctx context.Context, e events.AssignmentCreated) error {
	if e.ExecutiveEmail == "" {
		m.log.Warn("assignment created without executive email, skipping notification",
			"assignmentId", e.AssignmentID,
		)
		return nil
	}

	if err := m.sender.SendAssignmentCreatedEmail(ctx, email.AssignmentCreatedNotice{
		AssignmentID:   e.AssignmentID,
		LeadName:       e.LeadName,
		ExecutiveName:  e.ExecutiveName,
		ExecutiveEmail: e.ExecutiveEmail,
		Priority:       e.Priority,
		DueDate:        parseDueDate(e.DueDate),
	}); err != nil {
		m.log.Error("failed to send assignment email",
			"assignmentId", e.AssignmentID,
			"email", e.ExecutiveEmail,
			"error", err,
		)
		return err
	}

	m.log.Info("assignment email sent", "assignmentId", e.AssignmentID, "email", e.ExecutiveEmail)
	return nil
}

func parseDueDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	due, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &due
}
