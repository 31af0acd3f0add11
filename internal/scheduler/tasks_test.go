package scheduler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

func TestDueReminderTaskRoundTrip(t *testing.T) {
	want := AssignmentDueReminderPayload{AssignmentID: uuid.New()}

	task, err := NewAssignmentDueReminderTask(want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Type() != TaskAssignmentDueReminder {
		t.Fatalf("unexpected task type %q", task.Type())
	}

	got, err := ParseAssignmentDueReminderPayload(task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AssignmentID != want.AssignmentID {
		t.Fatalf("expected assignment %v, got %v", want.AssignmentID, got.AssignmentID)
	}
}

func TestParseDueReminderPayloadRejectsGarbage(t *testing.T) {
	task := asynq.NewTask(TaskAssignmentDueReminder, []byte("{not json"))

	if _, err := ParseAssignmentDueReminderPayload(task); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
