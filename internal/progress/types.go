package progress

import "time"

// Status is a progress record's completion state.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Record is one scored attempt at an activity. Retries produce multiple
// records for the same activity; generation stops at the first completion.
type Record struct {
	ID          string
	LearnerID   string
	ActivityID  string
	TopicID     string
	SubjectID   string
	Status      Status
	Score       float64 // 0-100
	TimeSpent   int     // minutes, always > 0
	Attempt     int     // 1-based attempt index
	StartedAt   time.Time
	CompletedAt *time.Time
}
