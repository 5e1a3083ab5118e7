package pattern

import (
	"math/rand/v2"

	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/profile"
)

const (
	baselineEngagement = 0.5
	engagementJitter   = 0.15
	minEngagement      = 0.1
	maxEngagement      = 1.0

	// Subjects below this engagement count as struggling and attract
	// help-request topics.
	strugglingThreshold = 0.5
)

// Synthesize derives a Pattern from a profile and the subjects available
// at the learner's grade. Pure except for jitter drawn from rng.
func Synthesize(prof profile.Profile, subjects []catalog.Subject, rng *rand.Rand) Pattern {
	p := Pattern{
		Subjects: make([]SubjectEngagement, 0, len(subjects)),
	}

	for _, s := range subjects {
		score, ok := prof.SubjectPreferences[s.ID]
		if !ok {
			score = baselineEngagement
		}
		score += jitter(rng, engagementJitter)
		score = min(max(score, minEngagement), maxEngagement)

		p.Subjects = append(p.Subjects, SubjectEngagement{
			SubjectID:  s.ID,
			Engagement: score,
			Difficulty: targetDifficulty(prof.DifficultyPreference, score),
		})
	}

	p.TimeOfDay = jitteredWeights(rng, []Weighted{
		{Key: string(TimeMorning), Weight: 0.25},
		{Key: string(TimeAfternoon), Weight: 0.45},
		{Key: string(TimeEvening), Weight: 0.30},
	})
	p.SessionLengths = jitteredWeights(rng, []Weighted{
		{Key: "short", Weight: 0.3},
		{Key: "medium", Weight: 0.5},
		{Key: "long", Weight: 0.2},
	})
	// Resource weights are independent inclusion probabilities, not a
	// distribution, so they are jittered but never normalized.
	p.ResourceWeights = []Weighted{
		{Key: string(ResourceVideo), Weight: clampProb(0.6 + jitter(rng, 0.15))},
		{Key: string(ResourceArticle), Weight: clampProb(0.4 + jitter(rng, 0.15))},
		{Key: string(ResourceInteractive), Weight: clampProb(0.5 + jitter(rng, 0.15))},
		{Key: string(ResourceWorksheet), Weight: clampProb(0.3 + jitter(rng, 0.15))},
	}

	p.Help = HelpPattern{
		Frequency:      prof.HelpSeekingBehavior.Probability(),
		SessionTimings: []float64{0.25, 0.5, 0.75},
	}
	for _, s := range p.Subjects {
		if s.Engagement < strugglingThreshold {
			p.Help.StrugglingSubjects = append(p.Help.StrugglingSubjects, s.SubjectID)
		}
	}

	return p
}

// targetDifficulty applies the tier rule: advanced only for challenging
// learners already engaged with the subject, beginner for conservative
// learners or disengaged subjects, intermediate otherwise.
func targetDifficulty(pref profile.DifficultyPreference, engagement float64) catalog.Difficulty {
	switch {
	case pref == profile.DifficultyChallenging && engagement > 0.7:
		return catalog.DifficultyAdvanced
	case pref == profile.DifficultyConservative || engagement < 0.4:
		return catalog.DifficultyBeginner
	default:
		return catalog.DifficultyIntermediate
	}
}

// clampProb clamps a probability to [0.05, 0.95].
func clampProb(p float64) float64 {
	return min(max(p, 0.05), 0.95)
}

// jitter returns a uniform value in [-spread, spread].
func jitter(rng *rand.Rand, spread float64) float64 {
	return (rng.Float64()*2 - 1) * spread
}

// jitteredWeights perturbs each base weight by up to ±20% of itself and
// normalizes the result to sum to 1. Weights stay strictly positive.
func jitteredWeights(rng *rand.Rand, base []Weighted) []Weighted {
	out := make([]Weighted, len(base))
	var total float64
	for i, w := range base {
		perturbed := w.Weight * (1 + jitter(rng, 0.2))
		out[i] = Weighted{Key: w.Key, Weight: perturbed}
		total += perturbed
	}
	for i := range out {
		out[i].Weight /= total
	}
	return out
}
