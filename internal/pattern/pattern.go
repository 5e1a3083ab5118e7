package pattern

import (
	"github.com/abhisek/learntrace/internal/catalog"
)

// ResourceType is a kind of supplementary learning resource.
type ResourceType string

const (
	ResourceVideo       ResourceType = "video"
	ResourceArticle     ResourceType = "article"
	ResourceInteractive ResourceType = "interactive"
	ResourceWorksheet   ResourceType = "worksheet"
)

// AllResourceTypes returns resource types in a fixed order.
func AllResourceTypes() []ResourceType {
	return []ResourceType{ResourceVideo, ResourceArticle, ResourceInteractive, ResourceWorksheet}
}

// TimeOfDay is a coarse daypart bucket for session starts.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

// SubjectEngagement pairs a subject with its derived engagement and target
// difficulty. Kept as an ordered slice (catalog subject order) so weighted
// sampling is deterministic under a fixed random source.
type SubjectEngagement struct {
	SubjectID  string
	Engagement float64
	Difficulty catalog.Difficulty
}

// Weighted is one (key, weight) pair of an ordered weight list.
type Weighted struct {
	Key    string
	Weight float64
}

// HelpPattern describes when and about what the learner asks for help.
type HelpPattern struct {
	// Frequency is the per-record probability of a help request.
	Frequency float64
	// StrugglingSubjects are subjects with engagement below 0.5, the
	// topics help requests skew toward.
	StrugglingSubjects []string
	// SessionTimings are fractions of the session at which help tends
	// to be requested.
	SessionTimings []float64
}

// Pattern is the derived behavioral fingerprint of one learner.
// Immutable once synthesized; one Pattern per generation call.
type Pattern struct {
	Subjects        []SubjectEngagement
	TimeOfDay       []Weighted // keys are TimeOfDay values
	SessionLengths  []Weighted // keys are "short", "medium", "long"
	ResourceWeights []Weighted // keys are ResourceType values
	Help            HelpPattern
}

// Engagement returns the engagement score for a subject, or 0 if the
// subject is not part of the pattern.
func (p *Pattern) Engagement(subjectID string) float64 {
	for _, s := range p.Subjects {
		if s.SubjectID == subjectID {
			return s.Engagement
		}
	}
	return 0
}

// DifficultyFor returns the target difficulty tier for a subject.
func (p *Pattern) DifficultyFor(subjectID string) catalog.Difficulty {
	for _, s := range p.Subjects {
		if s.SubjectID == subjectID {
			return s.Difficulty
		}
	}
	return catalog.DifficultyIntermediate
}
