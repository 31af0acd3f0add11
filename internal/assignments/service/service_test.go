package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"crm_admin_backend/internal/assignments/repository"
	"crm_admin_backend/internal/assignments/transport"
	"crm_admin_backend/internal/scheduler"
	"crm_admin_backend/platform/apperr"
	"crm_admin_backend/platform/logger"
)

type fakeRepo struct {
	lastCreate   repository.CreateParams
	lastSyncLead bool
	lastStatus   string
	deleted      []uuid.UUID
	createErr    error
	updateResult repository.Assignment
}

func (f *fakeRepo) GetDetail(ctx context.Context, id uuid.UUID) (repository.Detail, error) {
	return repository.Detail{}, apperr.NotFound("assignment not found")
}

func (f *fakeRepo) ListWithFilters(ctx context.Context, params repository.ListParams) ([]repository.Detail, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) ActiveLeadIDs(ctx context.Context) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeRepo) CreateActive(ctx context.Context, params repository.CreateParams) (repository.Created, error) {
	if f.createErr != nil {
		return repository.Created{}, f.createErr
	}
	f.lastCreate = params
	due := params.DueDate
	return repository.Created{
		Assignment: repository.Assignment{
			ID:         uuid.New(),
			LeadID:     params.LeadID,
			AssignedTo: params.AssignedTo,
			AssignedBy: params.AssignedBy,
			Status:     repository.StatusActive,
			Priority:   params.Priority,
			Notes:      params.Notes,
			AssignedAt: params.AssignedAt,
			DueDate:    &due,
		},
		LeadName:       "Jane Doe",
		ExecutiveName:  "Alex Smith",
		ExecutiveEmail: "alex@example.com",
	}, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, syncLead bool) (repository.Assignment, error) {
	f.lastStatus = status
	f.lastSyncLead = syncLead
	result := f.updateResult
	result.ID = id
	result.Status = status
	return result, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) (repository.Assignment, error) {
	f.deleted = append(f.deleted, id)
	return repository.Assignment{ID: id, LeadID: uuid.New(), AssignedTo: uuid.New()}, nil
}

var _ repository.Repository = (*fakeRepo)(nil)

type fakeConfig struct {
	dueDays  int
	syncLead bool
}

func (f fakeConfig) GetAssignmentDueDays() int { return f.dueDays }
func (f fakeConfig) GetCompleteSyncLead() bool { return f.syncLead }

type fakeScheduler struct {
	scheduled []scheduler.AssignmentDueReminderPayload
	runAt     time.Time
}

func (f *fakeScheduler) ScheduleDueReminder(ctx context.Context, payload scheduler.AssignmentDueReminderPayload, runAt time.Time) error {
	f.scheduled = append(f.scheduled, payload)
	f.runAt = runAt
	return nil
}

func newTestService(repo *fakeRepo, cfg fakeConfig, reminders scheduler.DueReminderScheduler) *Service {
	return New(repo, cfg, nil, reminders, logger.New("development"))
}

func createRequest() transport.CreateAssignmentRequest {
	return transport.CreateAssignmentRequest{
		LeadID:      uuid.New(),
		ExecutiveID: uuid.New(),
		AssignerID:  uuid.New(),
	}
}

func TestCreateDefaultsDueDateFromConfig(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeConfig{dueDays: 7}, nil)

	before := time.Now().UTC()
	resp, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMin := before.AddDate(0, 0, 7)
	if repo.lastCreate.DueDate.Before(wantMin) {
		t.Fatalf("due date %v earlier than assigned time plus 7 days %v", repo.lastCreate.DueDate, wantMin)
	}
	if resp.DueDate == nil {
		t.Fatal("expected due date in response")
	}
}

func TestCreateFallsBackToAssignedAtWithoutDueWindow(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeConfig{dueDays: 0}, nil)

	if _, err := svc.Create(context.Background(), createRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.lastCreate.DueDate.Equal(repo.lastCreate.AssignedAt) {
		t.Fatalf("expected due date %v to equal assigned time %v", repo.lastCreate.DueDate, repo.lastCreate.AssignedAt)
	}
}

func TestCreateHonorsExplicitDueDate(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeConfig{dueDays: 7}, nil)

	due := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	req := createRequest()
	req.DueDate = &due

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.lastCreate.DueDate.Equal(due) {
		t.Fatalf("expected explicit due date %v, got %v", due, repo.lastCreate.DueDate)
	}
}

func TestCreateDefaultsPriorityToMedium(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeConfig{dueDays: 7}, nil)

	if _, err := svc.Create(context.Background(), createRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastCreate.Priority != defaultPriority {
		t.Fatalf("expected default priority %q, got %q", defaultPriority, repo.lastCreate.Priority)
	}
}

func TestCreatePropagatesConflict(t *testing.T) {
	repo := &fakeRepo{createErr: apperr.Conflict("lead already has an active assignment")}
	svc := newTestService(repo, fakeConfig{dueDays: 7}, nil)

	_, err := svc.Create(context.Background(), createRequest())
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestCreateSchedulesDueReminder(t *testing.T) {
	repo := &fakeRepo{}
	reminders := &fakeScheduler{}
	svc := newTestService(repo, fakeConfig{dueDays: 3}, reminders)

	if _, err := svc.Create(context.Background(), createRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reminders.scheduled) != 1 {
		t.Fatalf("expected 1 scheduled reminder, got %d", len(reminders.scheduled))
	}
	if !reminders.runAt.Equal(repo.lastCreate.DueDate) {
		t.Fatalf("reminder scheduled at %v, expected due date %v", reminders.runAt, repo.lastCreate.DueDate)
	}
}

func TestCreateWithoutSchedulerSkipsReminder(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeConfig{dueDays: 3}, nil)

	if _, err := svc.Create(context.Background(), createRequest()); err != nil {
		t.Fatalf("unexpected error with nil scheduler: %v", err)
	}
}

func TestCompleteDoesNotSyncLeadByDefault(t *testing.T) {
	repo := &fakeRepo{updateResult: repository.Assignment{LeadID: uuid.New(), AssignedTo: uuid.New()}}
	svc := newTestService(repo, fakeConfig{dueDays: 7, syncLead: false}, nil)

	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), repository.StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastSyncLead {
		t.Fatal("completing an assignment must not touch the lead unless configured")
	}
}

func TestCompleteSyncsLeadWhenConfigured(t *testing.T) {
	repo := &fakeRepo{updateResult: repository.Assignment{LeadID: uuid.New(), AssignedTo: uuid.New()}}
	svc := newTestService(repo, fakeConfig{dueDays: 7, syncLead: true}, nil)

	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), repository.StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.lastSyncLead {
		t.Fatal("expected lead sync when completion sync is enabled")
	}
}

func TestCancelNeverSyncsLead(t *testing.T) {
	repo := &fakeRepo{updateResult: repository.Assignment{LeadID: uuid.New(), AssignedTo: uuid.New()}}
	svc := newTestService(repo, fakeConfig{dueDays: 7, syncLead: true}, nil)

	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), repository.StatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastSyncLead {
		t.Fatal("cancelling must never sync the lead")
	}
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeConfig{dueDays: 7}, nil)

	id := uuid.New()
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.deleted) != 1 || repo.deleted[0] != id {
		t.Fatalf("expected delete of %v, got %v", id, repo.deleted)
	}
}

func TestListRejectsMalformedExecutiveID(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeConfig{dueDays: 7}, nil)

	_, err := svc.List(context.Background(), transport.ListAssignmentsRequest{ExecutiveID: "not-a-uuid"})
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request error, got %v", err)
	}
}
