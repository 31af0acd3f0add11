package scheduler

import (
	"context"
	"fmt"

	"crm_admin_backend/internal/assignments/repository"
	"crm_admin_backend/internal/email"
	"crm_admin_backend/platform/apperr"
	"crm_admin_backend/platform/config"
	"crm_admin_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Worker consumes scheduled tasks and dispatches reminder notifications.
type Worker struct {
	server      *asynq.Server
	mux         *asynq.ServeMux
	assignments repository.Repository
	sender      email.Sender
	log         *logger.Logger
}

// NewWorker builds the asynq server and registers the task handlers.
func NewWorker(cfg config.SchedulerConfig, assignments repository.Repository, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{queue: 1},
	})

	w := &Worker{
		server:      server,
		mux:         asynq.NewServeMux(),
		assignments: assignments,
		sender:      sender,
		log:         log,
	}
	w.mux.HandleFunc(TaskAssignmentDueReminder, w.handleDueReminder)

	return w, nil
}

// Run blocks processing tasks until Shutdown is called.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

// Shutdown stops the server and waits for in-flight tasks.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleDueReminder(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseAssignmentDueReminderPayload(task)
	if err != nil {
		w.log.Error("invalid due reminder payload", "error", err)
		// Malformed payloads never succeed on retry.
		return fmt.Errorf("parse payload: %v: %w", err, asynq.SkipRetry)
	}

	detail, err := w.assignments.GetDetail(ctx, payload.AssignmentID)
	if err != nil {
		if apperr.GetKind(err) == apperr.KindNotFound {
			// Assignment deleted since scheduling, nothing to remind.
			return nil
		}
		return fmt.Errorf("load assignment %s: %w", payload.AssignmentID, err)
	}

	if detail.Status != repository.StatusActive {
		return nil
	}

	if err := w.sender.SendAssignmentDueReminderEmail(ctx, email.AssignmentDueReminder{
		AssignmentID:   detail.ID,
		LeadName:       detail.LeadName,
		ExecutiveName:  detail.ExecutiveName,
		ExecutiveEmail: detail.ExecutiveEmail,
		Priority:       detail.Priority,
		DueDate:        detail.DueDate,
	}); err != nil {
		return fmt.Errorf("send due reminder for %s: %w", detail.ID, err)
	}

	w.log.Info("due reminder sent", "assignment_id", detail.ID, "executive_email", detail.ExecutiveEmail)
	return nil
}
