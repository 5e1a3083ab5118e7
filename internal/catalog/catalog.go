package catalog

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by all catalog lookup failures.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a catalog entity that could not be resolved.
type NotFoundError struct {
	Kind string // "learner", "subject"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Difficulty is a content difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Subject is one teachable subject at a grade level.
type Subject struct {
	ID          string
	DisplayName string
	Grade       int
}

// Topic is one unit of content within a subject.
type Topic struct {
	ID               string
	SubjectID        string
	DisplayName      string
	Difficulty       Difficulty
	EstimatedMinutes int
}

// Learner is a registered learner the generator can produce history for.
type Learner struct {
	ID          string
	DisplayName string
	Grade       int
}

// Catalog resolves learners and reference content.
// Implementations must return subjects and topics in a stable order so
// generation is deterministic given a fixed random source.
type Catalog interface {
	// Learner resolves a learner by id. Returns a *NotFoundError
	// (wrapping ErrNotFound) for unknown ids.
	Learner(ctx context.Context, id string) (Learner, error)

	// SubjectsForGrade returns all subjects available at the grade.
	SubjectsForGrade(ctx context.Context, grade int) ([]Subject, error)

	// TopicsForSubject returns the topics of one subject at the grade.
	// An unknown subject yields an empty slice, not an error.
	TopicsForSubject(ctx context.Context, grade int, subjectID string) ([]Topic, error)
}
