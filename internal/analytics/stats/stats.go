// Package stats contains the pure derivation functions for dashboard
// metrics. Everything here is computed from a fetched snapshot; nothing is
// stored, so the numbers are always consistent with the latest read.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Assignment status values.
const (
	AssignmentActive    = "active"
	AssignmentCompleted = "completed"
	AssignmentCancelled = "cancelled"
)

// PriorityHigh is the priority value counted by the high-priority metric.
const PriorityHigh = "High"

// averageResponseHoursPlaceholder stands in for a real response-time
// derivation, which needs an interaction-event log the data model does not
// capture yet.
const averageResponseHoursPlaceholder = 24.0

// Assignment is the snapshot view of a ledger row.
type Assignment struct {
	ID          uuid.UUID
	LeadID      uuid.UUID
	ExecutiveID uuid.UUID
	Status      string
	Priority    string
	DueDate     *time.Time
}

// Lead is the snapshot view of a lead row.
type Lead struct {
	ID        uuid.UUID
	Status    string
	CreatedAt time.Time
}

// Metrics holds derived counters for a set of assignments.
type Metrics struct {
	Total                int
	Active               int
	Completed            int
	Cancelled            int
	ConversionRate       int
	HighPriority         int
	Overdue              int
	AverageResponseHours float64
}

var assignableLeadStatuses = map[string]bool{
	"New":  true,
	"Hot":  true,
	"Warm": true,
	"Cold": true,
}

// AssignablePool returns the leads eligible for assignment: workable status
// and no active assignment, ordered by creation time descending.
func AssignablePool(leads []Lead, assignments []Assignment) []Lead {
	activeLeads := make(map[uuid.UUID]bool)
	for _, a := range assignments {
		if a.Status == AssignmentActive {
			activeLeads[a.LeadID] = true
		}
	}

	pool := make([]Lead, 0, len(leads))
	for _, lead := range leads {
		if assignableLeadStatuses[lead.Status] && !activeLeads[lead.ID] {
			pool = append(pool, lead)
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].CreatedAt.After(pool[j].CreatedAt)
	})

	return pool
}

// IsOverdue reports whether an assignment counts as overdue at the given
// instant: still active, has a due date, and the due date has passed.
func IsOverdue(a Assignment, now time.Time) bool {
	return a.Status == AssignmentActive && a.DueDate != nil && a.DueDate.Before(now)
}

// Compute derives the display metrics for a snapshot of assignments.
func Compute(assignments []Assignment, now time.Time) Metrics {
	m := Metrics{
		Total:                len(assignments),
		AverageResponseHours: averageResponseHoursPlaceholder,
	}

	for _, a := range assignments {
		switch a.Status {
		case AssignmentActive:
			m.Active++
		case AssignmentCompleted:
			m.Completed++
		case AssignmentCancelled:
			m.Cancelled++
		}
		if a.Priority == PriorityHigh {
			m.HighPriority++
		}
		if IsOverdue(a, now) {
			m.Overdue++
		}
	}

	m.ConversionRate = ConversionRate(m.Completed, m.Total)
	return m
}

// ForExecutive filters a snapshot down to one executive's assignments.
func ForExecutive(assignments []Assignment, executiveID uuid.UUID) []Assignment {
	scoped := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.ExecutiveID == executiveID {
			scoped = append(scoped, a)
		}
	}
	return scoped
}

// ConversionRate is the rounded percentage of completed assignments over the
// whole snapshot. Empty snapshots rate as 0.
func ConversionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return roundPercent(completed, total)
}

// PerformanceScore is the rounded percentage of completed assignments over
// the executive's completed plus active ones. Zero workload scores 0.
func PerformanceScore(completed, active int) int {
	denominator := completed + active
	if denominator <= 0 {
		return 0
	}
	return roundPercent(completed, denominator)
}

func roundPercent(part, whole int) int {
	return int(math.Round(100 * float64(part) / float64(whole)))
}
