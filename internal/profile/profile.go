package profile

import (
	"fmt"
)

// Velocity describes how quickly a learner absorbs new material.
type Velocity string

const (
	VelocitySlow    Velocity = "slow"
	VelocityAverage Velocity = "average"
	VelocityFast    Velocity = "fast"
)

// Multiplier returns the base-performance multiplier for the velocity.
func (v Velocity) Multiplier() float64 {
	switch v {
	case VelocitySlow:
		return 0.7
	case VelocityFast:
		return 0.9
	default:
		return 0.8
	}
}

func (v Velocity) Valid() bool {
	return v == VelocitySlow || v == VelocityAverage || v == VelocityFast
}

// DifficultyPreference describes the learner's appetite for harder content.
type DifficultyPreference string

const (
	DifficultyConservative DifficultyPreference = "conservative"
	DifficultyBalanced     DifficultyPreference = "balanced"
	DifficultyChallenging  DifficultyPreference = "challenging"
)

func (d DifficultyPreference) Valid() bool {
	return d == DifficultyConservative || d == DifficultyBalanced || d == DifficultyChallenging
}

// Frequency describes how often the learner sits down to study.
type Frequency string

const (
	FrequencyLow    Frequency = "low"
	FrequencyMedium Frequency = "medium"
	FrequencyHigh   Frequency = "high"
)

// SessionsPerWeek returns the base session count for the frequency.
func (f Frequency) SessionsPerWeek() int {
	switch f {
	case FrequencyLow:
		return 2
	case FrequencyHigh:
		return 6
	default:
		return 4
	}
}

func (f Frequency) Valid() bool {
	return f == FrequencyLow || f == FrequencyMedium || f == FrequencyHigh
}

// Consistency describes how reliably the learner keeps their cadence.
type Consistency string

const (
	ConsistencyInconsistent Consistency = "inconsistent"
	ConsistencyModerate     Consistency = "moderate"
	ConsistencyConsistent   Consistency = "consistent"
)

func (c Consistency) Valid() bool {
	return c == ConsistencyInconsistent || c == ConsistencyModerate || c == ConsistencyConsistent
}

// HelpSeeking describes how readily the learner asks for help.
type HelpSeeking string

const (
	HelpIndependent HelpSeeking = "independent"
	HelpModerate    HelpSeeking = "moderate"
	HelpFrequent    HelpSeeking = "frequent"
)

// Probability returns the per-record chance of a help request.
func (h HelpSeeking) Probability() float64 {
	switch h {
	case HelpIndependent:
		return 0.1
	case HelpFrequent:
		return 0.6
	default:
		return 0.3
	}
}

func (h HelpSeeking) Valid() bool {
	return h == HelpIndependent || h == HelpModerate || h == HelpFrequent
}

// Profile configures one synthetic learner's generated history.
type Profile struct {
	LearnerID            string               `json:"learner_id"`
	TimeRangeMonths      int                  `json:"time_range_months"`
	LearningVelocity     Velocity             `json:"learning_velocity"`
	SubjectPreferences   map[string]float64   `json:"subject_preferences"`
	DifficultyPreference DifficultyPreference `json:"difficulty_preference"`
	SessionFrequency     Frequency            `json:"session_frequency"`
	ConsistencyLevel     Consistency          `json:"consistency_level"`
	HelpSeekingBehavior  HelpSeeking          `json:"help_seeking_behavior"`
}

// Default returns a balanced baseline profile for the learner.
func Default(learnerID string) Profile {
	return Profile{
		LearnerID:            learnerID,
		TimeRangeMonths:      6,
		LearningVelocity:     VelocityAverage,
		SubjectPreferences:   map[string]float64{},
		DifficultyPreference: DifficultyBalanced,
		SessionFrequency:     FrequencyMedium,
		ConsistencyLevel:     ConsistencyModerate,
		HelpSeekingBehavior:  HelpModerate,
	}
}

// Validate checks enum fields and normalizes preference scores to [0,1].
func (p *Profile) Validate() error {
	if p.LearnerID == "" {
		return fmt.Errorf("profile: learner_id is required")
	}
	if p.TimeRangeMonths < 1 {
		return fmt.Errorf("profile: time_range_months must be >= 1, got %d", p.TimeRangeMonths)
	}
	if !p.LearningVelocity.Valid() {
		return fmt.Errorf("profile: invalid learning_velocity %q", p.LearningVelocity)
	}
	if !p.DifficultyPreference.Valid() {
		return fmt.Errorf("profile: invalid difficulty_preference %q", p.DifficultyPreference)
	}
	if !p.SessionFrequency.Valid() {
		return fmt.Errorf("profile: invalid session_frequency %q", p.SessionFrequency)
	}
	if !p.ConsistencyLevel.Valid() {
		return fmt.Errorf("profile: invalid consistency_level %q", p.ConsistencyLevel)
	}
	if !p.HelpSeekingBehavior.Valid() {
		return fmt.Errorf("profile: invalid help_seeking_behavior %q", p.HelpSeekingBehavior)
	}
	for subject, score := range p.SubjectPreferences {
		p.SubjectPreferences[subject] = min(max(score, 0), 1)
	}
	return nil
}
