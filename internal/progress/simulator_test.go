package progress

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/pattern"
	"github.com/abhisek/learntrace/internal/plan"
	"github.com/abhisek/learntrace/internal/profile"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func fixture(engagement float64) ([]plan.StudyPlan, []plan.Activity, *pattern.Pattern) {
	created := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	p := plan.StudyPlan{ID: "plan-1", LearnerID: "demo-maya", SubjectID: "math", CreatedAt: created}

	var acts []plan.Activity
	for i := range 10 {
		acts = append(acts, plan.Activity{
			ID:               "act-" + string(rune('a'+i)),
			PlanID:           "plan-1",
			TopicID:          "t-frac",
			Kind:             plan.KindPractice,
			Difficulty:       catalog.DifficultyIntermediate,
			EstimatedMinutes: 30,
			Ordinal:          i,
		})
	}

	pat := &pattern.Pattern{
		Subjects: []pattern.SubjectEngagement{
			{SubjectID: "math", Engagement: engagement, Difficulty: catalog.DifficultyIntermediate},
		},
	}
	return []plan.StudyPlan{p}, acts, pat
}

func manySessions(n int) []time.Time {
	base := time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = base.Add(time.Duration(i) * 24 * time.Hour)
	}
	return out
}

func TestSimulateScoreAndTimeBounds(t *testing.T) {
	plans, acts, pat := fixture(0.8)

	for seed := uint64(1); seed <= 30; seed++ {
		records := Simulate("demo-maya", plans, acts, pat, profile.VelocityAverage, manySessions(50), testRNG(seed))
		for _, r := range records {
			if r.Score < 0 || r.Score > 100 {
				t.Errorf("seed %d: score %v outside [0,100]", seed, r.Score)
			}
			if r.TimeSpent <= 0 {
				t.Errorf("seed %d: timeSpent %d not positive", seed, r.TimeSpent)
			}
			if r.Attempt < 1 || r.Attempt > 3 {
				t.Errorf("seed %d: attempt %d outside 1-3", seed, r.Attempt)
			}
		}
	}
}

func TestSimulateStopsAfterCompletion(t *testing.T) {
	plans, acts, pat := fixture(0.9)

	for seed := uint64(1); seed <= 30; seed++ {
		records := Simulate("demo-maya", plans, acts, pat, profile.VelocityFast, manySessions(60), testRNG(seed))

		completedSeen := map[string]bool{}
		for _, r := range records {
			if completedSeen[r.ActivityID] {
				t.Fatalf("seed %d: record after completion for activity %s", seed, r.ActivityID)
			}
			if r.Status == StatusCompleted {
				completedSeen[r.ActivityID] = true
			}
		}
	}
}

func TestSimulateCompletedHasTimestamp(t *testing.T) {
	plans, acts, pat := fixture(0.8)
	records := Simulate("demo-maya", plans, acts, pat, profile.VelocityAverage, manySessions(50), testRNG(7))

	if len(records) == 0 {
		t.Fatal("no records generated")
	}
	for _, r := range records {
		if r.Status == StatusCompleted {
			if r.CompletedAt == nil {
				t.Errorf("completed record %s has no completion timestamp", r.ID)
			} else if !r.CompletedAt.After(r.StartedAt) {
				t.Errorf("completion %v not after start %v", r.CompletedAt, r.StartedAt)
			}
		} else if r.CompletedAt != nil {
			t.Errorf("%s record %s has completion timestamp", r.Status, r.ID)
		}
	}
}

func TestSimulateConsumesSessionsInOrder(t *testing.T) {
	plans, acts, pat := fixture(1.0)
	sessions := manySessions(50)
	records := Simulate("demo-maya", plans, acts, pat, profile.VelocityFast, sessions, testRNG(3))

	for i := 1; i < len(records); i++ {
		if records[i].StartedAt.Before(records[i-1].StartedAt) {
			t.Errorf("record %d starts %v before record %d", i, records[i].StartedAt, i-1)
		}
	}
}

func TestSimulateExhaustedTimelineStops(t *testing.T) {
	plans, acts, pat := fixture(1.0)
	records := Simulate("demo-maya", plans, acts, pat, profile.VelocityFast, manySessions(3), testRNG(5))
	if len(records) > 3 {
		t.Errorf("%d records from 3 sessions; each attempt must consume a session", len(records))
	}
}

func TestSimulateLowEngagementIsSparser(t *testing.T) {
	rng := testRNG(11)

	count := func(engagement float64) int {
		total := 0
		for range 50 {
			plans, acts, pat := fixture(engagement)
			recs := Simulate("demo-maya", plans, acts, pat, profile.VelocityAverage, manySessions(60), rng)
			attempted := map[string]bool{}
			for _, r := range recs {
				attempted[r.ActivityID] = true
			}
			total += len(attempted)
		}
		return total
	}

	high := count(0.95)
	low := count(0.15)
	if high <= low {
		t.Errorf("high engagement attempted %d activities vs low %d; want strictly more", high, low)
	}
}

func TestFastVelocityOutscoresSlow(t *testing.T) {
	rng := testRNG(23)

	mean := func(v profile.Velocity) float64 {
		var sum float64
		var n int
		for range 40 {
			plans, acts, pat := fixture(0.7)
			for _, r := range Simulate("demo-maya", plans, acts, pat, v, manySessions(60), rng) {
				sum += r.Score
				n++
			}
		}
		if n == 0 {
			t.Fatal("no records")
		}
		return sum / float64(n)
	}

	fast := mean(profile.VelocityFast)
	slow := mean(profile.VelocitySlow)
	if fast <= slow {
		t.Errorf("fast mean score %.2f not above slow %.2f", fast, slow)
	}
}

func TestAttemptScoreBonusCapped(t *testing.T) {
	// With zero noise bounds the bonus is visible directly; here we just
	// pin the deterministic part of the formula.
	for attempt, wantBonus := range []float64{0, 10, 20, 20, 20} {
		base := profile.VelocityAverage.Multiplier() * 0.5 * 100
		got := attemptScore(profile.VelocityAverage, 0.5, attempt, testRNG(1))
		if got < base+wantBonus-10 || got > base+wantBonus+10 {
			t.Errorf("attempt %d: score %v outside base %v + bonus %v ± 10", attempt, got, base, wantBonus)
		}
	}
}
