package generate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/learntrace/internal/awards"
	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/pattern"
	"github.com/abhisek/learntrace/internal/plan"
	"github.com/abhisek/learntrace/internal/profile"
	"github.com/abhisek/learntrace/internal/progress"
	"github.com/abhisek/learntrace/internal/timeline"
	"github.com/abhisek/learntrace/internal/trace"
)

// Generator produces synthetic learning histories against a catalog.
// Safe for concurrent use as long as each Generate call gets its own
// random source.
type Generator struct {
	catalog catalog.Catalog

	// Now overrides the generation reference time. Zero means time.Now.
	Now time.Time
}

// New creates a Generator over the given catalog.
func New(c catalog.Catalog) *Generator {
	return &Generator{catalog: c}
}

// Generate runs one full generation pass for the profile's learner.
// The learner must resolve in the catalog; an unknown learner fails
// immediately with no partial output.
func (g *Generator) Generate(ctx context.Context, prof profile.Profile, rng *rand.Rand) (*Bundle, error) {
	if err := prof.Validate(); err != nil {
		return nil, err
	}

	learner, err := g.catalog.Learner(ctx, prof.LearnerID)
	if err != nil {
		return nil, fmt.Errorf("resolve learner: %w", err)
	}

	subjects, err := g.catalog.SubjectsForGrade(ctx, learner.Grade)
	if err != nil {
		return nil, fmt.Errorf("subjects for grade %d: %w", learner.Grade, err)
	}

	topicsBySubject := make(map[string][]catalog.Topic, len(subjects))
	for _, s := range subjects {
		topics, err := g.catalog.TopicsForSubject(ctx, learner.Grade, s.ID)
		if err != nil {
			return nil, fmt.Errorf("topics for %s: %w", s.ID, err)
		}
		topicsBySubject[s.ID] = topics
	}

	now := g.Now
	if now.IsZero() {
		now = time.Now()
	}
	windowStart := now.AddDate(0, -prof.TimeRangeMonths, 0)

	pat := pattern.Synthesize(prof, subjects, rng)
	sessions := timeline.Generate(now, prof.TimeRangeMonths, prof.SessionFrequency, prof.ConsistencyLevel, rng)
	plans, activities := plan.Build(learner.ID, &pat, topicsBySubject, windowStart, now, rng)
	records := progress.Simulate(learner.ID, plans, activities, &pat, prof.LearningVelocity, sessions, rng)

	titles := make(map[string]string, len(activities))
	for _, a := range activities {
		titles[a.ID] = a.Title
	}

	return &Bundle{
		Learner:      learner,
		GeneratedAt:  now,
		WindowStart:  windowStart,
		Plans:        plans,
		Activities:   activities,
		Records:      records,
		Interactions: trace.ContentInteractions(records, rng),
		Resources:    trace.ResourceUsages(records, pat.ResourceWeights, rng),
		HelpRequests: trace.HelpRequests(records, titles, pat.Help, rng),
		Achievements: awards.Scan(learner.ID, records),
	}, nil
}
