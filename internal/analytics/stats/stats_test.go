package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newLead(status string, createdAt time.Time) Lead {
	return Lead{ID: uuid.New(), Status: status, CreatedAt: createdAt}
}

func activeFor(leadID uuid.UUID) Assignment {
	return Assignment{ID: uuid.New(), LeadID: leadID, Status: AssignmentActive}
}

func TestAssignablePoolExcludesActivelyAssignedLeads(t *testing.T) {
	assigned := newLead("Hot", testNow)
	free := newLead("Warm", testNow)

	pool := AssignablePool([]Lead{assigned, free}, []Assignment{activeFor(assigned.ID)})

	if len(pool) != 1 {
		t.Fatalf("expected 1 assignable lead, got %d", len(pool))
	}
	if pool[0].ID != free.ID {
		t.Fatal("expected the unassigned lead in the pool")
	}
}

func TestAssignablePoolKeepsLeadsWithInactiveAssignments(t *testing.T) {
	lead := newLead("New", testNow)
	completed := Assignment{ID: uuid.New(), LeadID: lead.ID, Status: AssignmentCompleted}
	cancelled := Assignment{ID: uuid.New(), LeadID: lead.ID, Status: AssignmentCancelled}

	pool := AssignablePool([]Lead{lead}, []Assignment{completed, cancelled})

	if len(pool) != 1 {
		t.Fatalf("expected lead with only inactive assignments to stay assignable, pool size %d", len(pool))
	}
}

func TestAssignablePoolFiltersNonWorkableStatuses(t *testing.T) {
	leads := []Lead{
		newLead("New", testNow),
		newLead("Hot", testNow),
		newLead("Warm", testNow),
		newLead("Cold", testNow),
		newLead("Failed", testNow),
		newLead("assigned", testNow),
		newLead("contacted", testNow),
		newLead("qualified", testNow),
		newLead("converted", testNow),
	}

	pool := AssignablePool(leads, nil)

	if len(pool) != 4 {
		t.Fatalf("expected only New/Hot/Warm/Cold leads, got %d", len(pool))
	}
	for _, lead := range pool {
		if !assignableLeadStatuses[lead.Status] {
			t.Fatalf("unexpected status %q in pool", lead.Status)
		}
	}
}

func TestAssignablePoolOrdersNewestFirst(t *testing.T) {
	older := newLead("New", testNow.Add(-48*time.Hour))
	newer := newLead("New", testNow)

	pool := AssignablePool([]Lead{older, newer}, nil)

	if len(pool) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(pool))
	}
	if pool[0].ID != newer.ID {
		t.Fatal("expected newest lead first")
	}
}

func TestAssignablePoolEmptyAssignments(t *testing.T) {
	leads := []Lead{newLead("Hot", testNow), newLead("Cold", testNow)}

	pool := AssignablePool(leads, []Assignment{})

	if len(pool) != 2 {
		t.Fatalf("expected full pool with no assignments, got %d", len(pool))
	}
}

func TestIsOverdue(t *testing.T) {
	past := testNow.Add(-time.Hour)
	future := testNow.Add(time.Hour)

	cases := []struct {
		name string
		a    Assignment
		want bool
	}{
		{"active past due", Assignment{Status: AssignmentActive, DueDate: &past}, true},
		{"active not yet due", Assignment{Status: AssignmentActive, DueDate: &future}, false},
		{"active without due date", Assignment{Status: AssignmentActive}, false},
		{"completed past due", Assignment{Status: AssignmentCompleted, DueDate: &past}, false},
		{"cancelled past due", Assignment{Status: AssignmentCancelled, DueDate: &past}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOverdue(tc.a, testNow); got != tc.want {
				t.Fatalf("IsOverdue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverdueMonotonicOverTime(t *testing.T) {
	due := testNow
	a := Assignment{Status: AssignmentActive, DueDate: &due}

	if IsOverdue(a, testNow.Add(-time.Minute)) {
		t.Fatal("assignment should not be overdue before its due date")
	}
	if !IsOverdue(a, testNow.Add(time.Minute)) {
		t.Fatal("assignment should be overdue after its due date")
	}
	if !IsOverdue(a, testNow.Add(24*time.Hour)) {
		t.Fatal("an overdue assignment must stay overdue while it remains active")
	}
}

func TestComputeCounts(t *testing.T) {
	past := testNow.Add(-time.Hour)
	assignments := []Assignment{
		{Status: AssignmentActive, Priority: PriorityHigh, DueDate: &past},
		{Status: AssignmentActive, Priority: "Low"},
		{Status: AssignmentCompleted, Priority: PriorityHigh},
		{Status: AssignmentCancelled, Priority: "Medium"},
	}

	m := Compute(assignments, testNow)

	if m.Total != 4 || m.Active != 2 || m.Completed != 1 || m.Cancelled != 1 {
		t.Fatalf("unexpected counts: %+v", m)
	}
	if m.HighPriority != 2 {
		t.Fatalf("expected 2 high priority, got %d", m.HighPriority)
	}
	if m.Overdue != 1 {
		t.Fatalf("expected 1 overdue, got %d", m.Overdue)
	}
	if m.ConversionRate != 25 {
		t.Fatalf("expected conversion rate 25, got %d", m.ConversionRate)
	}
	if m.AverageResponseHours != averageResponseHoursPlaceholder {
		t.Fatalf("expected placeholder average response hours, got %v", m.AverageResponseHours)
	}
}

func TestComputeEmptySnapshot(t *testing.T) {
	m := Compute(nil, testNow)

	if m.Total != 0 || m.ConversionRate != 0 || m.Overdue != 0 {
		t.Fatalf("expected zeroed metrics for empty snapshot, got %+v", m)
	}
}

func TestConversionRateBounds(t *testing.T) {
	if got := ConversionRate(0, 0); got != 0 {
		t.Fatalf("empty snapshot should rate 0, got %d", got)
	}
	if got := ConversionRate(0, 10); got != 0 {
		t.Fatalf("no completions should rate 0, got %d", got)
	}
	if got := ConversionRate(10, 10); got != 100 {
		t.Fatalf("all completed should rate 100, got %d", got)
	}
	if got := ConversionRate(1, 3); got != 33 {
		t.Fatalf("expected rounded 33, got %d", got)
	}
	if got := ConversionRate(2, 3); got != 67 {
		t.Fatalf("expected rounded 67, got %d", got)
	}
}

func TestForExecutive(t *testing.T) {
	exec := uuid.New()
	other := uuid.New()
	assignments := []Assignment{
		{ID: uuid.New(), ExecutiveID: exec, Status: AssignmentActive},
		{ID: uuid.New(), ExecutiveID: other, Status: AssignmentActive},
		{ID: uuid.New(), ExecutiveID: exec, Status: AssignmentCompleted},
	}

	scoped := ForExecutive(assignments, exec)

	if len(scoped) != 2 {
		t.Fatalf("expected 2 assignments for executive, got %d", len(scoped))
	}
	for _, a := range scoped {
		if a.ExecutiveID != exec {
			t.Fatal("scoped snapshot contains another executive's assignment")
		}
	}
}

func TestPerformanceScore(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		active    int
		want      int
	}{
		{"zero workload", 0, 0, 0},
		{"all active", 0, 5, 0},
		{"all completed", 5, 0, 100},
		{"half", 2, 2, 50},
		{"rounded up", 2, 1, 67},
		{"cancelled not counted", 3, 1, 75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PerformanceScore(tc.completed, tc.active); got != tc.want {
				t.Fatalf("PerformanceScore(%d, %d) = %d, want %d", tc.completed, tc.active, got, tc.want)
			}
		})
	}
}
