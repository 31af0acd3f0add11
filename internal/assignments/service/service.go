// Package service implements the business logic for the assignment ledger.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crm_admin_backend/internal/analytics/stats"
	"crm_admin_backend/internal/assignments/repository"
	"crm_admin_backend/internal/assignments/transport"
	"crm_admin_backend/internal/events"
	"crm_admin_backend/internal/scheduler"
	"crm_admin_backend/platform/apperr"
	"crm_admin_backend/platform/config"
	"crm_admin_backend/platform/logger"
)

const (
	defaultPriority = "Medium"

	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service provides business logic for the assignment ledger.
type Service struct {
	repo      repository.Repository
	cfg       config.AssignmentConfig
	bus       events.Bus
	reminders scheduler.DueReminderScheduler
	log       *logger.Logger
}

// New creates a new assignments service. The reminder scheduler is optional;
// pass nil when redis is not configured and no reminders will be scheduled.
func New(repo repository.Repository, cfg config.AssignmentConfig, bus events.Bus, reminders scheduler.DueReminderScheduler, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		cfg:       cfg,
		bus:       bus,
		reminders: reminders,
		log:       log,
	}
}

// ActiveLeadIDs returns the IDs of leads that currently hold an active
// assignment. Exposed for the leads module's assignable pool.
func (s *Service) ActiveLeadIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.repo.ActiveLeadIDs(ctx)
}

// Create assigns a lead to an executive. The new assignment starts active;
// a lead with an existing active assignment is rejected with a conflict.
// When no due date is given it defaults to the configured number of days
// after the assignment time.
func (s *Service) Create(ctx context.Context, req transport.CreateAssignmentRequest) (transport.AssignmentResponse, error) {
	priority := req.Priority
	if priority == "" {
		priority = defaultPriority
	}

	assignedAt := time.Now().UTC()
	dueDate := s.resolveDueDate(req.DueDate, assignedAt)

	created, err := s.repo.CreateActive(ctx, repository.CreateParams{
		LeadID:     req.LeadID,
		AssignedTo: req.ExecutiveID,
		AssignedBy: req.AssignerID,
		Priority:   priority,
		Notes:      req.Notes,
		AssignedAt: assignedAt,
		DueDate:    dueDate,
	})
	if err != nil {
		return transport.AssignmentResponse{}, err
	}

	s.log.AssignmentEvent("created", created.ID.String(), created.LeadID.String(), created.AssignedTo.String())

	s.publish(ctx, events.AssignmentCreated{
		AssignmentID:   created.ID,
		LeadID:         created.LeadID,
		LeadName:       created.LeadName,
		ExecutiveID:    created.AssignedTo,
		ExecutiveName:  created.ExecutiveName,
		ExecutiveEmail: created.ExecutiveEmail,
		Priority:       created.Priority,
		DueDate:        formatDueDate(created.DueDate),
	})

	s.scheduleReminder(ctx, created)

	return toDetailResponse(repository.Detail{
		Assignment:     created.Assignment,
		LeadName:       created.LeadName,
		ExecutiveName:  created.ExecutiveName,
		ExecutiveEmail: created.ExecutiveEmail,
	}, time.Now().UTC()), nil
}

// GetByID retrieves a single assignment with the related names joined in.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.AssignmentResponse, error) {
	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return transport.AssignmentResponse{}, err
	}
	return toDetailResponse(detail, time.Now().UTC()), nil
}

// List retrieves assignments with optional status and executive filters.
func (s *Service) List(ctx context.Context, req transport.ListAssignmentsRequest) (transport.AssignmentListResponse, error) {
	page := req.Page
	if page < 1 {
		page = defaultPage
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	params := repository.ListParams{
		Status: req.Status,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if req.ExecutiveID != "" {
		execID, err := uuid.Parse(req.ExecutiveID)
		if err != nil {
			return transport.AssignmentListResponse{}, apperr.BadRequest("invalid executive ID")
		}
		params.ExecutiveID = &execID
	}

	details, total, err := s.repo.ListWithFilters(ctx, params)
	if err != nil {
		return transport.AssignmentListResponse{}, err
	}

	now := time.Now().UTC()
	items := make([]transport.AssignmentResponse, len(details))
	for i, detail := range details {
		items[i] = toDetailResponse(detail, now)
	}

	return transport.AssignmentListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateStatus transitions an assignment between active, completed and
// cancelled. Completing sets the completion timestamp; leaving completed
// clears it again.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (transport.AssignmentResponse, error) {
	syncLead := status == repository.StatusCompleted && s.cfg.GetCompleteSyncLead()

	updated, err := s.repo.UpdateStatus(ctx, id, status, syncLead)
	if err != nil {
		return transport.AssignmentResponse{}, err
	}

	s.log.AssignmentEvent("status_"+status, updated.ID.String(), updated.LeadID.String(), updated.AssignedTo.String())

	if status == repository.StatusCompleted {
		s.publish(ctx, events.AssignmentCompleted{
			AssignmentID: updated.ID,
			LeadID:       updated.LeadID,
			ExecutiveID:  updated.AssignedTo,
		})
	}

	return toResponse(updated, time.Now().UTC()), nil
}

// Delete removes an assignment and reverts its lead to the unassigned pool.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.log.AssignmentEvent("deleted", deleted.ID.String(), deleted.LeadID.String(), deleted.AssignedTo.String())

	s.publish(ctx, events.AssignmentDeleted{
		AssignmentID: deleted.ID,
		LeadID:       deleted.LeadID,
	})

	return nil
}

// resolveDueDate applies the configured default when the caller gave none.
// With no configured window the due date falls back to the assignment time,
// making a fresh assignment due immediately rather than never.
func (s *Service) resolveDueDate(requested *time.Time, assignedAt time.Time) time.Time {
	if requested != nil {
		return requested.UTC()
	}
	days := s.cfg.GetAssignmentDueDays()
	if days <= 0 {
		return assignedAt
	}
	return assignedAt.AddDate(0, 0, days)
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, event)
}

func (s *Service) scheduleReminder(ctx context.Context, created repository.Created) {
	if s.reminders == nil || created.DueDate == nil {
		return
	}
	err := s.reminders.ScheduleDueReminder(ctx, scheduler.AssignmentDueReminderPayload{
		AssignmentID: created.ID,
	}, *created.DueDate)
	if err != nil {
		// A missed reminder must not fail the assignment itself.
		s.log.Error("failed to schedule due reminder", "assignment_id", created.ID, "error", err)
	}
}

func toResponse(a repository.Assignment, now time.Time) transport.AssignmentResponse {
	return transport.AssignmentResponse{
		ID:          a.ID,
		LeadID:      a.LeadID,
		ExecutiveID: a.AssignedTo,
		AssignedBy:  a.AssignedBy,
		Status:      a.Status,
		Priority:    a.Priority,
		Notes:       a.Notes,
		AssignedAt:  a.AssignedAt,
		DueDate:     a.DueDate,
		CompletedAt: a.CompletedAt,
		UpdatedAt:   a.UpdatedAt,
		Overdue: stats.IsOverdue(stats.Assignment{
			Status:  a.Status,
			DueDate: a.DueDate,
		}, now),
	}
}

func toDetailResponse(d repository.Detail, now time.Time) transport.AssignmentResponse {
	resp := toResponse(d.Assignment, now)
	resp.LeadName = d.LeadName
	resp.ExecutiveName = d.ExecutiveName
	return resp
}

func formatDueDate(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format(time.RFC3339)
}
