package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"crm_admin_backend/internal/leads/repository"
	"crm_admin_backend/internal/leads/transport"
	"crm_admin_backend/platform/apperr"
	"crm_admin_backend/platform/logger"
)

type fakeRepo struct {
	lastExclude   []uuid.UUID
	lastList      repository.ListParams
	lastCreate    repository.CreateParams
	lastStatus    string
	assignable    []repository.Lead
	excludeCalled bool
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	return repository.Lead{ID: id}, nil
}

func (f *fakeRepo) ListWithFilters(ctx context.Context, params repository.ListParams) ([]repository.Lead, int, error) {
	f.lastList = params
	return nil, 0, nil
}

func (f *fakeRepo) ListAssignable(ctx context.Context, excludeLeadIDs []uuid.UUID) ([]repository.Lead, error) {
	f.excludeCalled = true
	f.lastExclude = excludeLeadIDs
	return f.assignable, nil
}

func (f *fakeRepo) Create(ctx context.Context, params repository.CreateParams) (repository.Lead, error) {
	f.lastCreate = params
	return repository.Lead{ID: uuid.New(), Name: params.Name, Priority: params.Priority}, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (repository.Lead, error) {
	f.lastStatus = status
	return repository.Lead{ID: id, Status: status}, nil
}

var _ repository.Repository = (*fakeRepo)(nil)

type fakeReader struct {
	ids []uuid.UUID
}

func (f fakeReader) ActiveLeadIDs(ctx context.Context) ([]uuid.UUID, error) {
	return f.ids, nil
}

type fakePhoneConfig struct{}

func (fakePhoneConfig) GetDefaultPhoneRegion() string { return "US" }

func newTestService(repo *fakeRepo, reader fakeReader) *Service {
	svc := New(repo, fakePhoneConfig{}, logger.New("development"))
	svc.SetAssignmentReader(reader)
	return svc
}

func TestAssignablePoolPassesActiveLeadIDs(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeReader{ids: ids})

	if _, err := svc.AssignablePool(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.lastExclude) != 2 {
		t.Fatalf("expected 2 excluded lead IDs, got %d", len(repo.lastExclude))
	}
}

func TestAssignablePoolWithNoActiveAssignments(t *testing.T) {
	repo := &fakeRepo{assignable: []repository.Lead{{ID: uuid.New(), Status: repository.StatusNew}}}
	svc := newTestService(repo, fakeReader{})

	resp, err := svc.AssignablePool(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.excludeCalled {
		t.Fatal("expected repository to be queried")
	}
	if len(repo.lastExclude) != 0 {
		t.Fatalf("expected empty exclusion list, got %v", repo.lastExclude)
	}
	if resp.Total != 1 {
		t.Fatalf("expected 1 assignable lead, got %d", resp.Total)
	}
}

func TestAssignablePoolRequiresReader(t *testing.T) {
	svc := New(&fakeRepo{}, fakePhoneConfig{}, logger.New("development"))

	_, err := svc.AssignablePool(context.Background())
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error without reader, got %v", err)
	}
}

func TestUpdateStatusRejectsLedgerOwnedStatuses(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeReader{})

	for _, status := range []string{repository.StatusAssigned, repository.StatusConverted} {
		_, err := svc.UpdateStatus(context.Background(), uuid.New(), status)
		if !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("expected validation error for %q, got %v", status, err)
		}
	}
	if repo.lastStatus != "" {
		t.Fatal("repository must not be called for rejected statuses")
	}
}

func TestUpdateStatusAllowsTriageStatuses(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeReader{})

	for _, status := range []string{
		repository.StatusNew,
		repository.StatusHot,
		repository.StatusWarm,
		repository.StatusCold,
		repository.StatusFailed,
		repository.StatusContacted,
		repository.StatusQualified,
	} {
		if _, err := svc.UpdateStatus(context.Background(), uuid.New(), status); err != nil {
			t.Fatalf("unexpected error for %q: %v", status, err)
		}
	}
}

func TestListClampsPagination(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeReader{})

	if _, err := svc.ListWithFilters(context.Background(), transport.ListLeadsRequest{Page: -3, PageSize: 9999}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastList.Offset != 0 {
		t.Fatalf("expected offset 0 for clamped page, got %d", repo.lastList.Offset)
	}
	if repo.lastList.Limit != 100 {
		t.Fatalf("expected page size clamped to 100, got %d", repo.lastList.Limit)
	}
}

func TestCreateDefaultsPriority(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, fakeReader{})

	if _, err := svc.Create(context.Background(), transport.CreateLeadRequest{Name: "Jane Doe"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastCreate.Priority != "Medium" {
		t.Fatalf("expected default priority Medium, got %q", repo.lastCreate.Priority)
	}
}
