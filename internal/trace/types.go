package trace

import (
	"time"

	"github.com/abhisek/learntrace/internal/pattern"
)

// InteractionKind is how the learner engaged with a piece of content.
type InteractionKind string

const (
	InteractionViewed     InteractionKind = "viewed"
	InteractionPaused     InteractionKind = "paused"
	InteractionReplayed   InteractionKind = "replayed"
	InteractionBookmarked InteractionKind = "bookmarked"
)

// AllInteractionKinds returns interaction kinds in a fixed order.
func AllInteractionKinds() []InteractionKind {
	return []InteractionKind{InteractionViewed, InteractionPaused, InteractionReplayed, InteractionBookmarked}
}

// ContentInteraction is one touch of content within a study session.
type ContentInteraction struct {
	ID              string
	LearnerID       string
	ContentID       string // derived from the owning progress record
	Kind            InteractionKind
	DurationSeconds int
	Completed       bool
	OccurredAt      time.Time
}

// ResourceUsage is one use of a supplementary resource during a session.
type ResourceUsage struct {
	ID              string
	LearnerID       string
	ResourceID      string // derived from topic + resource type
	ResourceType    pattern.ResourceType
	DurationSeconds int
	Completed       bool
	Rating          *int // 3-5 when present
	UsedAt          time.Time
}

// HelpCategory classifies what a help request is about.
type HelpCategory string

const (
	CategoryConcept    HelpCategory = "concept"
	CategoryTechnical  HelpCategory = "technical"
	CategoryNavigation HelpCategory = "navigation"
	CategoryContent    HelpCategory = "content"
)

// AllHelpCategories returns help categories in a fixed order.
func AllHelpCategories() []HelpCategory {
	return []HelpCategory{CategoryConcept, CategoryTechnical, CategoryNavigation, CategoryContent}
}

// Priority is a help request's urgency.
type Priority string

const (
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// HelpRequest is one templated question tied to a progress record.
type HelpRequest struct {
	ID          string
	LearnerID   string
	RecordID    string
	Question    string
	Category    HelpCategory
	Priority    Priority
	Resolved    bool
	RequestedAt time.Time
	ResolvedAt  *time.Time
}
