package trace

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learntrace/internal/pattern"
	"github.com/abhisek/learntrace/internal/progress"
)

const (
	minUsageSeconds = 120
	maxUsageSeconds = 720

	usageCompletionRate = 0.7
	usageRatingRate     = 0.5
)

// ResourceUsages emits, per progress record, one usage for each resource
// type whose preference weight beats a uniform roll. Resource ids derive
// from the record's topic and the type.
func ResourceUsages(records []progress.Record, weights []pattern.Weighted, rng *rand.Rand) []ResourceUsage {
	var out []ResourceUsage
	for _, rec := range records {
		sessionEnd := rec.StartedAt.Add(time.Duration(rec.TimeSpent) * time.Minute)

		for _, w := range weights {
			if rng.Float64() >= w.Weight {
				continue
			}

			usage := ResourceUsage{
				ID:              uuid.NewString(),
				LearnerID:       rec.LearnerID,
				ResourceID:      fmt.Sprintf("resource-%s-%s", rec.TopicID, w.Key),
				ResourceType:    pattern.ResourceType(w.Key),
				DurationSeconds: minUsageSeconds + rng.IntN(maxUsageSeconds-minUsageSeconds+1),
				Completed:       rng.Float64() < usageCompletionRate,
				UsedAt:          within(rec.StartedAt, sessionEnd, rng),
			}
			if rng.Float64() < usageRatingRate {
				rating := 3 + rng.IntN(3)
				usage.Rating = &rating
			}
			out = append(out, usage)
		}
	}
	return out
}

// within returns a timestamp in [start, end).
func within(start, end time.Time, rng *rand.Rand) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(rng.Int64N(int64(span))))
}
