package awards

import "time"

// Type identifies what earned an achievement.
type Type string

const (
	TypeFirstCompletion Type = "first_completion"
	TypeSubjectExplorer Type = "subject_explorer"
	TypeExcellence      Type = "excellence_achiever"
)

// Points returns the point value for the achievement type.
func (t Type) Points() int {
	switch t {
	case TypeFirstCompletion:
		return 10
	case TypeSubjectExplorer:
		return 25
	case TypeExcellence:
		return 50
	default:
		return 0
	}
}

// Achievement is one earned award, derived from aggregate progress.
type Achievement struct {
	ID          string
	LearnerID   string
	Type        Type
	Title       string
	Description string
	Points      int
	EarnedAt    time.Time
	Metadata    map[string]string
}
