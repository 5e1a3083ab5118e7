package plan

import (
	"time"

	"github.com/abhisek/learntrace/internal/catalog"
)

// Status is a study plan's lifecycle state.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in_progress"
)

// ActivityKind is the type of work an activity asks for.
type ActivityKind string

const (
	KindLesson   ActivityKind = "lesson"
	KindPractice ActivityKind = "practice"
	KindQuiz     ActivityKind = "quiz"
	KindProject  ActivityKind = "project"
	KindReview   ActivityKind = "review"
)

// AllKinds returns activity kinds in a fixed order.
func AllKinds() []ActivityKind {
	return []ActivityKind{KindLesson, KindPractice, KindQuiz, KindProject, KindReview}
}

// StudyPlan is one generated plan for a single subject.
type StudyPlan struct {
	ID             string
	LearnerID      string
	SubjectID      string
	Title          string
	Difficulty     catalog.Difficulty
	EstimatedHours int
	Status         Status
	Active         bool
	CreatedAt      time.Time
}

// Activity is one unit of work inside a plan.
type Activity struct {
	ID               string
	PlanID           string
	TopicID          string
	Title            string
	Kind             ActivityKind
	Difficulty       catalog.Difficulty
	EstimatedMinutes int
	Ordinal          int
	Required         bool
}
