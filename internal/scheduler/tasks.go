package scheduler

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskAssignmentDueReminder fires when an assignment reaches its due date.
const TaskAssignmentDueReminder = "assignments.due_reminder"

// AssignmentDueReminderPayload identifies the assignment to re-check.
type AssignmentDueReminderPayload struct {
	AssignmentID uuid.UUID `json:"assignmentId"`
}

// NewAssignmentDueReminderTask builds the asynq task for a due reminder.
func NewAssignmentDueReminderTask(payload AssignmentDueReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAssignmentDueReminder, data), nil
}

// ParseAssignmentDueReminderPayload decodes a due reminder task payload.
func ParseAssignmentDueReminderPayload(task *asynq.Task) (AssignmentDueReminderPayload, error) {
	var payload AssignmentDueReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return AssignmentDueReminderPayload{}, err
	}
	return payload, nil
}
