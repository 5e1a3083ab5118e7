package generate

import (
	"time"

	"github.com/abhisek/learntrace/internal/awards"
	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/plan"
	"github.com/abhisek/learntrace/internal/progress"
	"github.com/abhisek/learntrace/internal/trace"
)

// Bundle is one generation pass's complete output. All references inside a
// bundle resolve within the bundle; callers decide whether to persist it.
type Bundle struct {
	Learner      catalog.Learner            `json:"learner"`
	GeneratedAt  time.Time                  `json:"generated_at"`
	WindowStart  time.Time                  `json:"window_start"`
	Plans        []plan.StudyPlan           `json:"plans"`
	Activities   []plan.Activity            `json:"activities"`
	Records      []progress.Record          `json:"progress_records"`
	Interactions []trace.ContentInteraction `json:"content_interactions"`
	Resources    []trace.ResourceUsage      `json:"resource_usages"`
	HelpRequests []trace.HelpRequest        `json:"help_requests"`
	Achievements []awards.Achievement       `json:"achievements"`
}

// Counts summarizes bundle sizes per collection.
type Counts struct {
	Plans        int `json:"plans"`
	Activities   int `json:"activities"`
	Records      int `json:"progress_records"`
	Interactions int `json:"content_interactions"`
	Resources    int `json:"resource_usages"`
	HelpRequests int `json:"help_requests"`
	Achievements int `json:"achievements"`
}

// Counts returns per-collection sizes.
func (b *Bundle) Counts() Counts {
	return Counts{
		Plans:        len(b.Plans),
		Activities:   len(b.Activities),
		Records:      len(b.Records),
		Interactions: len(b.Interactions),
		Resources:    len(b.Resources),
		HelpRequests: len(b.HelpRequests),
		Achievements: len(b.Achievements),
	}
}
