package trace

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learntrace/internal/progress"
)

const (
	minInteractions = 1
	maxInteractions = 3

	interactionSpacing = 5 * time.Minute

	minInteractionSeconds = 60
	maxInteractionSeconds = 360

	interactionCompletionRate = 0.8
)

// ContentInteractions emits 1-3 interactions per progress record, spaced
// five minutes apart from the record's start.
func ContentInteractions(records []progress.Record, rng *rand.Rand) []ContentInteraction {
	kinds := AllInteractionKinds()

	var out []ContentInteraction
	for _, rec := range records {
		count := minInteractions + rng.IntN(maxInteractions-minInteractions+1)
		for i := range count {
			out = append(out, ContentInteraction{
				ID:              uuid.NewString(),
				LearnerID:       rec.LearnerID,
				ContentID:       fmt.Sprintf("content-%s", rec.ID),
				Kind:            kinds[rng.IntN(len(kinds))],
				DurationSeconds: minInteractionSeconds + rng.IntN(maxInteractionSeconds-minInteractionSeconds+1),
				Completed:       rng.Float64() < interactionCompletionRate,
				OccurredAt:      rec.StartedAt.Add(time.Duration(i) * interactionSpacing),
			})
		}
	}
	return out
}
