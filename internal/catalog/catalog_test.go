package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestSeededLearnerLookup(t *testing.T) {
	c := NewSeeded()
	ctx := context.Background()

	l, err := c.Learner(ctx, "demo-maya")
	if err != nil {
		t.Fatalf("Learner(demo-maya): %v", err)
	}
	if l.Grade != 4 {
		t.Errorf("demo-maya grade = %d, want 4", l.Grade)
	}
}

func TestUnknownLearnerIsNotFound(t *testing.T) {
	c := NewSeeded()

	_, err := c.Learner(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error for unknown learner")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error does not wrap ErrNotFound: %v", err)
	}

	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("error is not *NotFoundError: %T", err)
	}
	if nfe.ID != "ghost" || nfe.Kind != "learner" {
		t.Errorf("NotFoundError = %+v, want learner/ghost", nfe)
	}
}

func TestSubjectsForGradeStableOrder(t *testing.T) {
	c := NewSeeded()
	ctx := context.Background()

	first, err := c.SubjectsForGrade(ctx, 4)
	if err != nil {
		t.Fatalf("SubjectsForGrade: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected grade 4 subjects")
	}

	second, _ := c.SubjectsForGrade(ctx, 4)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("subject order not stable at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestTopicsInheritSubject(t *testing.T) {
	c := NewSeeded()
	ctx := context.Background()

	for grade := 3; grade <= 5; grade++ {
		subjects, _ := c.SubjectsForGrade(ctx, grade)
		for _, s := range subjects {
			topics, err := c.TopicsForSubject(ctx, grade, s.ID)
			if err != nil {
				t.Fatalf("TopicsForSubject(%d, %s): %v", grade, s.ID, err)
			}
			for _, topic := range topics {
				if topic.SubjectID != s.ID {
					t.Errorf("topic %s has subject %q, want %q", topic.ID, topic.SubjectID, s.ID)
				}
				if topic.EstimatedMinutes <= 0 {
					t.Errorf("topic %s has non-positive estimate", topic.ID)
				}
			}
		}
	}
}

func TestTopicsForUnknownSubjectIsEmpty(t *testing.T) {
	c := NewSeeded()

	topics, err := c.TopicsForSubject(context.Background(), 4, "latin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 0 {
		t.Errorf("expected no topics, got %d", len(topics))
	}
}
