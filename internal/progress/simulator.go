package progress

import (
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learntrace/internal/pattern"
	"github.com/abhisek/learntrace/internal/plan"
	"github.com/abhisek/learntrace/internal/profile"
)

const (
	// Scores at or above this resolve an activity as completed.
	completionThreshold = 70
	// Scores below this leave the activity untouched.
	startedThreshold = 50

	maxAttemptBonus = 20
	scoreNoise      = 10
)

// Simulate walks activities in (plan creation time, ordinal) order and
// produces progress records, consuming one session timestamp per attempt.
// Low-engagement subjects are skipped more often, activities allow 1-3
// attempts, and generation for an activity stops at its first completion
// or when the session timeline runs out.
func Simulate(
	learnerID string,
	plans []plan.StudyPlan,
	activities []plan.Activity,
	pat *pattern.Pattern,
	velocity profile.Velocity,
	sessions []time.Time,
	rng *rand.Rand,
) []Record {
	planByID := make(map[string]plan.StudyPlan, len(plans))
	for _, p := range plans {
		planByID[p.ID] = p
	}

	ordered := make([]plan.Activity, len(activities))
	copy(ordered, activities)
	slices.SortFunc(ordered, func(a, b plan.Activity) int {
		pa, pb := planByID[a.PlanID], planByID[b.PlanID]
		if c := pa.CreatedAt.Compare(pb.CreatedAt); c != 0 {
			return c
		}
		return a.Ordinal - b.Ordinal
	})

	var records []Record
	next := 0 // index of the next unconsumed session

	for _, act := range ordered {
		if next >= len(sessions) {
			break
		}

		subjectID := planByID[act.PlanID].SubjectID
		engagement := pat.Engagement(subjectID)

		// Sparse histories for low-engagement subjects: the learner
		// only sits down for the activity with this probability.
		attemptProb := 0.2 + 0.8*engagement
		if rng.Float64() > attemptProb {
			continue
		}

		allowed := 1 + rng.IntN(3)
		for attempt := 0; attempt < allowed && next < len(sessions); attempt++ {
			startedAt := sessions[next]
			next++

			score := attemptScore(velocity, engagement, attempt, rng)
			timeSpent := int(math.Round(float64(act.EstimatedMinutes) * uniform(rng, 0.7, 1.3)))
			if timeSpent < 1 {
				timeSpent = 1
			}

			rec := Record{
				ID:         uuid.NewString(),
				LearnerID:  learnerID,
				ActivityID: act.ID,
				TopicID:    act.TopicID,
				SubjectID:  subjectID,
				Score:      score,
				TimeSpent:  timeSpent,
				Attempt:    attempt + 1,
				StartedAt:  startedAt,
			}

			final := attempt == allowed-1
			switch {
			case score >= completionThreshold || final:
				rec.Status = StatusCompleted
				completedAt := startedAt.Add(time.Duration(timeSpent) * time.Minute)
				rec.CompletedAt = &completedAt
			case score >= startedThreshold:
				rec.Status = StatusInProgress
			default:
				rec.Status = StatusNotStarted
			}

			records = append(records, rec)
			if rec.Status == StatusCompleted {
				break
			}
		}
	}

	return records
}

// attemptScore computes one attempt's score. Later attempts earn a bonus
// of 10 points each, capped at 20.
func attemptScore(velocity profile.Velocity, engagement float64, attempt int, rng *rand.Rand) float64 {
	base := velocity.Multiplier() * engagement * 100
	base += math.Min(float64(attempt)*10, maxAttemptBonus)
	score := base + uniform(rng, -scoreNoise, scoreNoise)
	return math.Min(math.Max(score, 0), 100)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
