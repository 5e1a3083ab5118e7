package overview

import (
	"testing"
	"time"

	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/generate"
	"github.com/abhisek/learntrace/internal/plan"
	"github.com/abhisek/learntrace/internal/progress"
)

func testBundle() *generate.Bundle {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &generate.Bundle{
		Learner:     catalog.Learner{ID: "demo-maya", DisplayName: "Maya", Grade: 4},
		GeneratedAt: now,
		Plans: []plan.StudyPlan{
			{ID: "p1", SubjectID: "math", Title: "Math Foundations", Status: plan.StatusCompleted},
			{ID: "p2", SubjectID: "science", Title: "Science Explorer", Status: plan.StatusInProgress, Active: true},
		},
		Activities: []plan.Activity{
			{ID: "a1", PlanID: "p1", Ordinal: 0},
			{ID: "a2", PlanID: "p1", Ordinal: 1},
			{ID: "a3", PlanID: "p2", Ordinal: 0},
		},
		Records: []progress.Record{
			{ID: "r1", ActivityID: "a1", Status: progress.StatusCompleted, Score: 85, Attempt: 1},
			{ID: "r2", ActivityID: "a2", Status: progress.StatusInProgress, Score: 55, Attempt: 1},
			{ID: "r3", ActivityID: "a3", Status: progress.StatusCompleted, Score: 91, Attempt: 2},
		},
	}
}

func TestBuildRows(t *testing.T) {
	rows := buildRows(testBundle())

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].activities != 2 || rows[0].completed != 1 {
		t.Errorf("p1: expected 1/2 completed, got %d/%d", rows[0].completed, rows[0].activities)
	}
	if rows[1].activities != 1 || rows[1].completed != 1 {
		t.Errorf("p2: expected 1/1 completed, got %d/%d", rows[1].completed, rows[1].activities)
	}
	if got := rows[0].fraction(); got != 0.5 {
		t.Errorf("p1: expected fraction 0.5, got %v", got)
	}
}

func TestVisibleFilter(t *testing.T) {
	s := New(testBundle())

	if got := len(s.visible()); got != 2 {
		t.Fatalf("empty filter: expected 2 rows, got %d", got)
	}

	s.filter.Model.SetValue("math")
	rows := s.visible()
	if len(rows) != 1 {
		t.Fatalf("filter 'math': expected 1 row, got %d", len(rows))
	}
	if rows[0].plan.ID != "p1" {
		t.Errorf("filter 'math': expected p1, got %s", rows[0].plan.ID)
	}

	s.filter.Model.SetValue("nothing")
	if got := len(s.visible()); got != 0 {
		t.Errorf("filter 'nothing': expected 0 rows, got %d", got)
	}
}

func TestClampSelection(t *testing.T) {
	s := New(testBundle())
	s.selected = 1

	s.filter.Model.SetValue("math")
	s.clampSelection()

	if s.selected != 0 {
		t.Errorf("expected selection clamped to 0, got %d", s.selected)
	}
}
