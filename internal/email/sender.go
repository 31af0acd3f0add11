// Package email renders and delivers transactional emails for the
// assignment workflow.
package email

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AssignmentCreatedNotice carries the fields rendered into the
// new-assignment email sent to the executive.
type AssignmentCreatedNotice struct {
	AssignmentID   uuid.UUID
	LeadName       string
	ExecutiveName  string
	ExecutiveEmail string
	Priority       string
	DueDate        *time.Time
}

// AssignmentDueReminder carries the fields for the due-date reminder email.
type AssignmentDueReminder struct {
	AssignmentID   uuid.UUID
	LeadName       string
	ExecutiveName  string
	ExecutiveEmail string
	Priority       string
	DueDate        *time.Time
}

// Sender delivers assignment workflow emails.
type Sender interface {
	SendAssignmentCreatedEmail(ctx context.Context, notice AssignmentCreatedNotice) error
	SendAssignmentDueReminderEmail(ctx context.Context, reminder AssignmentDueReminder) error
}

// NoopSender discards all emails. Used when email delivery is disabled.
type NoopSender struct{}

func (NoopSender) SendAssignmentCreatedEmail(context.Context, AssignmentCreatedNotice) error {
	return nil
}

func (NoopSender) SendAssignmentDueReminderEmail(context.Context, AssignmentDueReminder) error {
	return nil
}

var _ Sender = NoopSender{}
