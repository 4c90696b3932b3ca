package services

import (
	"testing"
	"time"

	"github.com/aarusa/your-ai-meal-sub000/models"
)

func TestPlanDateKey(t *testing.T) {
	at := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)
	if got := PlanDateKey(at); got != "2025-03-07" {
		t.Errorf("PlanDateKey = %q, want 2025-03-07", got)
	}
	// the key only changes at the calendar-day boundary
	if PlanDateKey(at) != PlanDateKey(at.Add(-23*time.Hour)) {
		t.Error("same calendar day must share a key")
	}
	if PlanDateKey(at) == PlanDateKey(at.Add(time.Hour)) {
		t.Error("next calendar day must get a new key")
	}
}

func TestDefaultPlan(t *testing.T) {
	plan := defaultPlan("2025-03-07")
	if !plan.Fallback {
		t.Error("default plan must be marked as fallback")
	}
	if plan.Date != "2025-03-07" {
		t.Errorf("date = %q, want 2025-03-07", plan.Date)
	}
	if len(plan.Meals) == 0 {
		t.Fatal("default plan must contain meals")
	}
	for _, m := range plan.Meals {
		if !models.ValidMealType(m.Category) {
			t.Errorf("meal %q has invalid category %q", m.Name, m.Category)
		}
	}
}

func TestPlanTokenGuard(t *testing.T) {
	s := NewPlanService(nil, nil)

	t1 := s.nextToken(7)
	if !s.tokenCurrent(7, t1) {
		t.Error("fresh token must be current")
	}

	t2 := s.nextToken(7)
	if s.tokenCurrent(7, t1) {
		t.Error("superseded token must not be current")
	}
	if !s.tokenCurrent(7, t2) {
		t.Error("newest token must be current")
	}

	// tokens are per user
	if s.tokenCurrent(8, t2) {
		t.Error("another user's counter must not validate this token")
	}
}
