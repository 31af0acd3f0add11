// Package service assembles the dashboard read models from a concurrently
// fetched snapshot.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"crm_admin_backend/internal/analytics/repository"
	"crm_admin_backend/internal/analytics/stats"
	"crm_admin_backend/internal/analytics/transport"
	"crm_admin_backend/platform/logger"
)

// Service provides the analytics read models.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new analytics service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// snapshot is one consistent-enough read of the three tables. The reads run
// concurrently; the dashboard tolerates the skew between them.
type snapshot struct {
	leads       []stats.Lead
	executives  []repository.Executive
	assignments []stats.Assignment
}

func (s *Service) fetchSnapshot(ctx context.Context) (snapshot, error) {
	var snap snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		leads, err := s.repo.Leads(gctx)
		if err != nil {
			return err
		}
		snap.leads = leads
		return nil
	})
	g.Go(func() error {
		executives, err := s.repo.Executives(gctx)
		if err != nil {
			return err
		}
		snap.executives = executives
		return nil
	})
	g.Go(func() error {
		assignments, err := s.repo.Assignments(gctx)
		if err != nil {
			return err
		}
		snap.assignments = assignments
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// Dashboard derives the full report payload: pool size, lead counts by
// status, ledger metrics and per-executive summaries.
func (s *Service) Dashboard(ctx context.Context) (transport.DashboardResponse, error) {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return transport.DashboardResponse{}, err
	}

	now := time.Now().UTC()

	leadsByStatus := make(map[string]int)
	for _, lead := range snap.leads {
		leadsByStatus[lead.Status]++
	}

	summaries := make([]transport.ExecutiveSummaryResponse, len(snap.executives))
	for i, exec := range snap.executives {
		scoped := stats.ForExecutive(snap.assignments, exec.ID)
		scopedMetrics := stats.Compute(scoped, now)
		summaries[i] = transport.ExecutiveSummaryResponse{
			ExecutiveID:      exec.ID,
			Name:             exec.Name,
			IsActive:         exec.IsActive,
			Active:           scopedMetrics.Active,
			Completed:        scopedMetrics.Completed,
			PerformanceScore: stats.PerformanceScore(scopedMetrics.Completed, scopedMetrics.Active),
		}
	}

	return transport.DashboardResponse{
		PoolSize:      len(stats.AssignablePool(snap.leads, snap.assignments)),
		TotalLeads:    len(snap.leads),
		LeadsByStatus: leadsByStatus,
		Metrics:       toMetricsResponse(stats.Compute(snap.assignments, now)),
		Executives:    summaries,
		GeneratedAt:   now,
	}, nil
}

// ExecutiveMetrics derives the metrics for a single executive's assignments.
func (s *Service) ExecutiveMetrics(ctx context.Context, id uuid.UUID) (transport.ExecutiveMetricsResponse, error) {
	exec, err := s.repo.Executive(ctx, id)
	if err != nil {
		return transport.ExecutiveMetricsResponse{}, err
	}

	assignments, err := s.repo.Assignments(ctx)
	if err != nil {
		return transport.ExecutiveMetricsResponse{}, err
	}

	now := time.Now().UTC()
	scoped := stats.ForExecutive(assignments, exec.ID)
	metrics := stats.Compute(scoped, now)

	return transport.ExecutiveMetricsResponse{
		ExecutiveID:      exec.ID,
		Name:             exec.Name,
		Metrics:          toMetricsResponse(metrics),
		PerformanceScore: stats.PerformanceScore(metrics.Completed, metrics.Active),
		GeneratedAt:      now,
	}, nil
}

func toMetricsResponse(m stats.Metrics) transport.MetricsResponse {
	return transport.MetricsResponse{
		Total:                m.Total,
		Active:               m.Active,
		Completed:            m.Completed,
		Cancelled:            m.Cancelled,
		ConversionRate:       m.ConversionRate,
		HighPriority:         m.HighPriority,
		Overdue:              m.Overdue,
		AverageResponseHours: m.AverageResponseHours,
	}
}
