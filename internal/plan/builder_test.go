package plan

import (
	"testing"
	"time"

	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/pattern"
)

func testPattern() *pattern.Pattern {
	return &pattern.Pattern{
		Subjects: []pattern.SubjectEngagement{
			{SubjectID: "math", Engagement: 0.9, Difficulty: catalog.DifficultyAdvanced},
			{SubjectID: "science", Engagement: 0.6, Difficulty: catalog.DifficultyIntermediate},
			{SubjectID: "english", Engagement: 0.5, Difficulty: catalog.DifficultyIntermediate},
			{SubjectID: "history", Engagement: 0.2, Difficulty: catalog.DifficultyBeginner},
		},
	}
}

func testTopics() map[string][]catalog.Topic {
	return map[string][]catalog.Topic{
		"math": {
			{ID: "t-frac", SubjectID: "math", DisplayName: "Fractions", Difficulty: catalog.DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "t-dec", SubjectID: "math", DisplayName: "Decimals", Difficulty: catalog.DifficultyBeginner, EstimatedMinutes: 25},
		},
		"science": {
			{ID: "t-energy", SubjectID: "science", DisplayName: "Energy", Difficulty: catalog.DifficultyAdvanced, EstimatedMinutes: 40},
		},
		"english": {
			{ID: "t-essay", SubjectID: "english", DisplayName: "Essays", Difficulty: catalog.DifficultyIntermediate, EstimatedMinutes: 35},
		},
		"history": {}, // no topics: must never produce a plan
	}
}

func window() (time.Time, time.Time) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	return now.AddDate(0, -6, 0), now
}

func TestBuildPlanShape(t *testing.T) {
	start, now := window()

	for seed := uint64(1); seed <= 25; seed++ {
		plans, activities := Build("demo-maya", testPattern(), testTopics(), start, now, testRNG(seed))
		if len(plans) == 0 {
			t.Fatalf("seed %d: no plans", seed)
		}
		if len(plans) > 4 {
			t.Errorf("seed %d: %d plans, want at most 4", seed, len(plans))
		}

		planIDs := map[string]string{}
		for _, p := range plans {
			if p.SubjectID == "history" {
				t.Errorf("seed %d: plan built for topicless subject", seed)
			}
			if p.LearnerID != "demo-maya" {
				t.Errorf("seed %d: plan learner %q", seed, p.LearnerID)
			}
			planIDs[p.ID] = p.SubjectID
		}

		perPlan := map[string]int{}
		for _, a := range activities {
			subject, ok := planIDs[a.PlanID]
			if !ok {
				t.Fatalf("seed %d: activity %s references unknown plan %s", seed, a.ID, a.PlanID)
			}
			if a.EstimatedMinutes <= 0 {
				t.Errorf("seed %d: activity %s has no duration", seed, a.ID)
			}
			if a.Ordinal != perPlan[a.PlanID] {
				t.Errorf("seed %d: plan %s ordinal %d out of sequence", seed, subject, a.Ordinal)
			}
			perPlan[a.PlanID]++
		}
		for id, n := range perPlan {
			if n < 5 || n > 12 {
				t.Errorf("seed %d: plan %s has %d activities, want 5-12", seed, id, n)
			}
		}
	}
}

func TestBuildOnlyLastPlanActive(t *testing.T) {
	start, now := window()

	for seed := uint64(1); seed <= 25; seed++ {
		plans, _ := Build("demo-maya", testPattern(), testTopics(), start, now, testRNG(seed))
		for i, p := range plans {
			last := i == len(plans)-1
			if last {
				if p.Status != StatusInProgress || !p.Active {
					t.Errorf("seed %d: last plan status=%q active=%v", seed, p.Status, p.Active)
				}
			} else if p.Status != StatusCompleted || p.Active {
				t.Errorf("seed %d: plan %d status=%q active=%v", seed, i, p.Status, p.Active)
			}
		}
	}
}

func TestBuildPlansChronological(t *testing.T) {
	start, now := window()
	plans, _ := Build("demo-maya", testPattern(), testTopics(), start, now, testRNG(17))

	for i := 1; i < len(plans); i++ {
		if plans[i].CreatedAt.Before(plans[i-1].CreatedAt) {
			t.Errorf("plan %d created %v before plan %d", i, plans[i].CreatedAt, i-1)
		}
	}
	for _, p := range plans {
		if p.CreatedAt.Before(start) || p.CreatedAt.After(now) {
			t.Errorf("plan created %v outside window", p.CreatedAt)
		}
	}
}

func TestBuildDifficultyCopiedFromTopic(t *testing.T) {
	start, now := window()
	topicDifficulty := map[string]catalog.Difficulty{}
	for _, topics := range testTopics() {
		for _, topic := range topics {
			topicDifficulty[topic.ID] = topic.Difficulty
		}
	}

	_, activities := Build("demo-maya", testPattern(), testTopics(), start, now, testRNG(3))
	for _, a := range activities {
		if a.Difficulty != topicDifficulty[a.TopicID] {
			t.Errorf("activity %s difficulty %q, topic %s has %q",
				a.ID, a.Difficulty, a.TopicID, topicDifficulty[a.TopicID])
		}
	}
}

func TestBuildNoTopicsAnywhere(t *testing.T) {
	start, now := window()
	plans, activities := Build("demo-maya", testPattern(), map[string][]catalog.Topic{}, start, now, testRNG(1))
	if plans != nil || activities != nil {
		t.Errorf("expected no output, got %d plans %d activities", len(plans), len(activities))
	}
}
