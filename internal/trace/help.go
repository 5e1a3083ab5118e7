package trace

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learntrace/internal/pattern"
	"github.com/abhisek/learntrace/internal/progress"
)

const (
	// Scores at or above this mark the learner competent enough that no
	// help request is generated.
	competenceThreshold = 80
	// Scores below this raise the request priority.
	highPriorityThreshold = 50

	helpResolutionRate = 0.8
)

var questionTemplates = []string{
	"I'm stuck on %q, can someone walk me through it?",
	"How do I approach %q?",
	"I don't understand the steps in %q.",
	"Can I get a hint for %q?",
}

// HelpRequests emits at most one request per progress record: only when
// the learner's help-frequency roll succeeds and the score sits below the
// competence threshold. Struggling subjects skew toward concept questions.
func HelpRequests(records []progress.Record, titles map[string]string, help pattern.HelpPattern, rng *rand.Rand) []HelpRequest {
	categories := AllHelpCategories()

	var out []HelpRequest
	for _, rec := range records {
		if rng.Float64() >= help.Frequency {
			continue
		}
		if rec.Score >= competenceThreshold {
			continue
		}

		title := titles[rec.ActivityID]
		if title == "" {
			title = rec.ActivityID
		}

		category := categories[rng.IntN(len(categories))]
		if slices.Contains(help.StrugglingSubjects, rec.SubjectID) && rng.Float64() < 0.5 {
			category = CategoryConcept
		}

		priority := PriorityMedium
		if rec.Score < highPriorityThreshold {
			priority = PriorityHigh
		}

		// Requests land partway through the session, at one of the
		// pattern's preferred timing fractions.
		fraction := 0.5
		if len(help.SessionTimings) > 0 {
			fraction = help.SessionTimings[rng.IntN(len(help.SessionTimings))]
		}
		requestedAt := rec.StartedAt.Add(time.Duration(fraction * float64(rec.TimeSpent) * float64(time.Minute)))

		req := HelpRequest{
			ID:          uuid.NewString(),
			LearnerID:   rec.LearnerID,
			RecordID:    rec.ID,
			Question:    fmt.Sprintf(questionTemplates[rng.IntN(len(questionTemplates))], title),
			Category:    category,
			Priority:    priority,
			RequestedAt: requestedAt,
		}
		if rng.Float64() < helpResolutionRate {
			req.Resolved = true
			resolvedAt := requestedAt.Add(time.Duration(5+rng.IntN(56)) * time.Minute)
			req.ResolvedAt = &resolvedAt
		}
		out = append(out, req)
	}
	return out
}
