package service

import (
	"context"

	"github.com/google/uuid"

	"crm_admin_backend/internal/leads/ports"
	"crm_admin_backend/internal/leads/repository"
	"crm_admin_backend/internal/leads/transport"
	"crm_admin_backend/platform/apperr"
	"crm_admin_backend/platform/config"
	"crm_admin_backend/platform/logger"
	"crm_admin_backend/platform/phone"
)

// triageStatuses are the statuses staff may set manually. Ledger-owned
// statuses ("assigned", "converted") are rejected here.
var triageStatuses = map[string]bool{
	repository.StatusNew:       true,
	repository.StatusHot:       true,
	repository.StatusWarm:      true,
	repository.StatusCold:      true,
	repository.StatusFailed:    true,
	repository.StatusContacted: true,
	repository.StatusQualified: true,
}

// Service provides business logic for leads.
type Service struct {
	repo        repository.Repository
	assignments ports.ActiveAssignmentReader
	cfg         config.PhoneConfig
	log         *logger.Logger
}

// New creates a new leads service. The assignment reader is wired later by
// the composition root via SetAssignmentReader.
func New(repo repository.Repository, cfg config.PhoneConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log}
}

// SetAssignmentReader injects the cross-module reader for active assignments.
func (s *Service) SetAssignmentReader(reader ports.ActiveAssignmentReader) {
	s.assignments = reader
}

// GetByID retrieves a lead by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, err
	}
	return toResponse(lead), nil
}

// ListWithFilters retrieves leads with filters and pagination.
func (s *Service) ListWithFilters(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadListResponse, error) {
	page := req.Page
	pageSize := req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	params := repository.ListParams{
		Status:    req.Status,
		Priority:  req.Priority,
		Search:    req.Search,
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	items, total, err := s.repo.ListWithFilters(ctx, params)
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	return toListResponse(items, total, page, pageSize), nil
}

// AssignablePool resolves the current unassigned, workable lead set:
// status in {New, Hot, Warm, Cold} and no active assignment, newest first.
func (s *Service) AssignablePool(ctx context.Context) (transport.AssignablePoolResponse, error) {
	if s.assignments == nil {
		return transport.AssignablePoolResponse{}, apperr.Internal("assignment reader not configured")
	}

	activeIDs, err := s.assignments.ActiveLeadIDs(ctx)
	if err != nil {
		return transport.AssignablePoolResponse{}, err
	}

	leads, err := s.repo.ListAssignable(ctx, activeIDs)
	if err != nil {
		return transport.AssignablePoolResponse{}, err
	}

	items := make([]transport.LeadResponse, len(leads))
	for i, lead := range leads {
		items[i] = toResponse(lead)
	}
	return transport.AssignablePoolResponse{Items: items, Total: len(items)}, nil
}

// Create registers a new lead with a normalized phone number.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	priority := req.Priority
	if priority == "" {
		priority = "Medium"
	}

	params := repository.CreateParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    phone.NormalizeE164(req.Phone, s.cfg.GetDefaultPhoneRegion()),
		Priority: priority,
		Source:   req.Source,
	}

	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.log.Info("lead created", "id", lead.ID, "name", lead.Name, "source", lead.Source)
	return toResponse(lead), nil
}

// UpdateStatus sets a lead's triage status.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (transport.LeadResponse, error) {
	if !triageStatuses[status] {
		return transport.LeadResponse{}, apperr.Validation("status is not manually assignable")
	}

	lead, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.log.Info("lead status updated", "id", id, "status", status)
	return toResponse(lead), nil
}

func toResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Status:    lead.Status,
		Priority:  lead.Priority,
		Source:    lead.Source,
		Counselor: lead.Counselor,
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}
}

func toListResponse(items []repository.Lead, total, page, pageSize int) transport.LeadListResponse {
	responses := make([]transport.LeadResponse, len(items))
	for i, item := range items {
		responses[i] = toResponse(item)
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return transport.LeadListResponse{
		Items:      responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
