// Package transport defines the response DTOs for the analytics API.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// MetricsResponse is the API shape of derived assignment metrics.
type MetricsResponse struct {
	Total                int     `json:"total"`
	Active               int     `json:"active"`
	Completed            int     `json:"completed"`
	Cancelled            int     `json:"cancelled"`
	ConversionRate       int     `json:"conversionRate"`
	HighPriority         int     `json:"highPriority"`
	Overdue              int     `json:"overdue"`
	AverageResponseHours float64 `json:"averageResponseHours"`
}

// ExecutiveSummaryResponse is one executive's slice of the dashboard.
type ExecutiveSummaryResponse struct {
	ExecutiveID      uuid.UUID `json:"executiveId"`
	Name             string    `json:"name"`
	IsActive         bool      `json:"isActive"`
	Active           int       `json:"activeAssignments"`
	Completed        int       `json:"completedAssignments"`
	PerformanceScore int       `json:"performanceScore"`
}

// DashboardResponse is the full payload behind the report tab.
type DashboardResponse struct {
	PoolSize      int                        `json:"poolSize"`
	TotalLeads    int                        `json:"totalLeads"`
	LeadsByStatus map[string]int             `json:"leadsByStatus"`
	Metrics       MetricsResponse            `json:"metrics"`
	Executives    []ExecutiveSummaryResponse `json:"executives"`
	GeneratedAt   time.Time                  `json:"generatedAt"`
}

// ExecutiveMetricsResponse scopes the metrics to a single executive.
type ExecutiveMetricsResponse struct {
	ExecutiveID      uuid.UUID       `json:"executiveId"`
	Name             string          `json:"name"`
	Metrics          MetricsResponse `json:"metrics"`
	PerformanceScore int             `json:"performanceScore"`
	GeneratedAt      time.Time       `json:"generatedAt"`
}
