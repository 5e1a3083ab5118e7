package plan

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/pattern"
)

const (
	minSubjects = 2
	maxSubjects = 4

	minActivities = 5
	maxActivities = 12

	requiredProbability = 0.8
)

// kindDurations holds the per-kind estimated duration draw ranges, in
// minutes, applied when the topic carries no estimate of its own.
var kindDurations = map[ActivityKind][2]int{
	KindLesson:   {20, 40},
	KindPractice: {15, 30},
	KindQuiz:     {10, 20},
	KindProject:  {45, 90},
	KindReview:   {10, 25},
}

// Build chooses 2-4 subjects by engagement-weighted sampling and creates
// one StudyPlan per subject that has topics, with 5-12 activities drawn
// with repetition from the subject's topic list. Plan creation times are
// spread ascending across [windowStart, now]; only the last plan is left
// in progress and active.
func Build(
	learnerID string,
	pat *pattern.Pattern,
	topicsBySubject map[string][]catalog.Topic,
	windowStart, now time.Time,
	rng *rand.Rand,
) ([]StudyPlan, []Activity) {
	target := minSubjects + rng.IntN(maxSubjects-minSubjects+1)
	if target > len(pat.Subjects) {
		target = len(pat.Subjects)
	}

	pairs := make([]pattern.Weighted, 0, len(pat.Subjects))
	for _, s := range pat.Subjects {
		pairs = append(pairs, pattern.Weighted{Key: s.SubjectID, Weight: s.Engagement})
	}
	picker := NewPicker(pairs)

	var chosen []string
	for range target {
		subjectID, ok := picker.Take(rng)
		if !ok {
			break
		}
		// A chosen subject without topics is dropped entirely.
		if len(topicsBySubject[subjectID]) == 0 {
			continue
		}
		chosen = append(chosen, subjectID)
	}

	if len(chosen) == 0 {
		return nil, nil
	}

	// Spread plan creation evenly across the window, oldest first.
	window := now.Sub(windowStart)
	step := window / time.Duration(len(chosen)+1)

	var plans []StudyPlan
	var activities []Activity
	for i, subjectID := range chosen {
		p := StudyPlan{
			ID:         uuid.NewString(),
			LearnerID:  learnerID,
			SubjectID:  subjectID,
			Title:      fmt.Sprintf("%s study plan", subjectID),
			Difficulty: pat.DifficultyFor(subjectID),
			Status:     StatusCompleted,
			CreatedAt:  windowStart.Add(step * time.Duration(i+1)),
		}
		if i == len(chosen)-1 {
			p.Status = StatusInProgress
			p.Active = true
		}

		acts := buildActivities(&p, topicsBySubject[subjectID], rng)
		var totalMinutes int
		for _, a := range acts {
			totalMinutes += a.EstimatedMinutes
		}
		p.EstimatedHours = (totalMinutes + 59) / 60

		plans = append(plans, p)
		activities = append(activities, acts...)
	}

	return plans, activities
}

// buildActivities draws 5-12 activities with repetition from the plan's
// subject topics. Difficulty is copied from the source topic.
func buildActivities(p *StudyPlan, topics []catalog.Topic, rng *rand.Rand) []Activity {
	count := minActivities + rng.IntN(maxActivities-minActivities+1)
	kinds := AllKinds()

	activities := make([]Activity, 0, count)
	for ordinal := range count {
		topic := topics[rng.IntN(len(topics))]
		kind := kinds[rng.IntN(len(kinds))]

		minutes := topic.EstimatedMinutes
		if minutes <= 0 {
			r := kindDurations[kind]
			minutes = r[0] + rng.IntN(r[1]-r[0]+1)
		}

		activities = append(activities, Activity{
			ID:               uuid.NewString(),
			PlanID:           p.ID,
			TopicID:          topic.ID,
			Title:            fmt.Sprintf("%s: %s", kind, topic.DisplayName),
			Kind:             kind,
			Difficulty:       topic.Difficulty,
			EstimatedMinutes: minutes,
			Ordinal:          ordinal,
			Required:         rng.Float64() < requiredProbability,
		})
	}
	return activities
}
