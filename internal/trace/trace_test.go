package trace

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/learntrace/internal/pattern"
	"github.com/abhisek/learntrace/internal/progress"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func testRecords(scores ...float64) []progress.Record {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	out := make([]progress.Record, len(scores))
	for i, score := range scores {
		out[i] = progress.Record{
			ID:         "rec-" + string(rune('a'+i)),
			LearnerID:  "demo-maya",
			ActivityID: "act-" + string(rune('a'+i)),
			TopicID:    "t-frac",
			SubjectID:  "math",
			Status:     progress.StatusCompleted,
			Score:      score,
			TimeSpent:  30,
			Attempt:    1,
			StartedAt:  base.Add(time.Duration(i) * 24 * time.Hour),
		}
	}
	return out
}

func TestContentInteractionsPerRecord(t *testing.T) {
	records := testRecords(80, 60, 90)

	for seed := uint64(1); seed <= 20; seed++ {
		interactions := ContentInteractions(records, testRNG(seed))

		perRecord := map[string][]ContentInteraction{}
		for _, ci := range interactions {
			if ci.DurationSeconds < 60 || ci.DurationSeconds > 360 {
				t.Errorf("seed %d: duration %ds outside [60,360]", seed, ci.DurationSeconds)
			}
			perRecord[ci.ContentID] = append(perRecord[ci.ContentID], ci)
		}

		if len(perRecord) != len(records) {
			t.Fatalf("seed %d: interactions for %d records, want %d", seed, len(perRecord), len(records))
		}
		for id, group := range perRecord {
			if len(group) < 1 || len(group) > 3 {
				t.Errorf("seed %d: %s has %d interactions, want 1-3", seed, id, len(group))
			}
			for i, ci := range group {
				wantOffset := time.Duration(i) * 5 * time.Minute
				if got := ci.OccurredAt.Sub(group[0].OccurredAt); got != wantOffset {
					t.Errorf("seed %d: interaction %d offset %v, want %v", seed, i, got, wantOffset)
				}
			}
		}
	}
}

func TestResourceUsagesGatedByWeight(t *testing.T) {
	records := testRecords(80)
	rng := testRNG(5)

	always := []pattern.Weighted{{Key: string(pattern.ResourceVideo), Weight: 1.1}}
	never := []pattern.Weighted{{Key: string(pattern.ResourceArticle), Weight: 0}}

	if got := ResourceUsages(records, never, rng); len(got) != 0 {
		t.Errorf("zero weight emitted %d usages", len(got))
	}
	got := ResourceUsages(records, always, rng)
	if len(got) != 1 {
		t.Fatalf("weight > 1 emitted %d usages, want 1", len(got))
	}

	u := got[0]
	if u.ResourceID != "resource-t-frac-video" {
		t.Errorf("resource id = %q", u.ResourceID)
	}
	if u.DurationSeconds < 120 || u.DurationSeconds > 720 {
		t.Errorf("duration %ds outside [120,720]", u.DurationSeconds)
	}
	if u.Rating != nil && (*u.Rating < 3 || *u.Rating > 5) {
		t.Errorf("rating %d outside [3,5]", *u.Rating)
	}
}

func TestResourceUsageTimestampInSession(t *testing.T) {
	records := testRecords(70)
	weights := []pattern.Weighted{{Key: string(pattern.ResourceVideo), Weight: 1.1}}

	for seed := uint64(1); seed <= 20; seed++ {
		for _, u := range ResourceUsages(records, weights, testRNG(seed)) {
			start := records[0].StartedAt
			end := start.Add(time.Duration(records[0].TimeSpent) * time.Minute)
			if u.UsedAt.Before(start) || !u.UsedAt.Before(end) {
				t.Errorf("seed %d: usage at %v outside session [%v,%v)", seed, u.UsedAt, start, end)
			}
		}
	}
}

func TestHelpRequestsRespectScoreGate(t *testing.T) {
	// Frequency 1.0 so every eligible record emits.
	help := pattern.HelpPattern{Frequency: 1.0, SessionTimings: []float64{0.5}}
	titles := map[string]string{"act-a": "practice: Fractions", "act-b": "quiz: Fractions"}

	records := testRecords(85, 40) // first is competent, second struggling
	reqs := HelpRequests(records, titles, help, testRNG(9))

	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1 (score >= 80 is competent)", len(reqs))
	}
	req := reqs[0]
	if req.RecordID != "rec-b" {
		t.Errorf("request tied to %q, want rec-b", req.RecordID)
	}
	if req.Priority != PriorityHigh {
		t.Errorf("score 40 priority = %q, want high", req.Priority)
	}
	if !strings.Contains(req.Question, "quiz: Fractions") {
		t.Errorf("question %q does not reference activity title", req.Question)
	}
}

func TestHelpRequestsMediumPriority(t *testing.T) {
	help := pattern.HelpPattern{Frequency: 1.0}
	reqs := HelpRequests(testRecords(65), nil, help, testRNG(2))
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	if reqs[0].Priority != PriorityMedium {
		t.Errorf("score 65 priority = %q, want medium", reqs[0].Priority)
	}
}

func TestHelpRequestsZeroFrequency(t *testing.T) {
	help := pattern.HelpPattern{Frequency: 0}
	if reqs := HelpRequests(testRecords(30, 40, 50), nil, help, testRNG(4)); len(reqs) != 0 {
		t.Errorf("zero frequency emitted %d requests", len(reqs))
	}
}

func TestHelpResolutionTimestamps(t *testing.T) {
	help := pattern.HelpPattern{Frequency: 1.0, SessionTimings: []float64{0.25, 0.5, 0.75}}

	for seed := uint64(1); seed <= 20; seed++ {
		for _, req := range HelpRequests(testRecords(45, 55, 60), nil, help, testRNG(seed)) {
			if req.Resolved {
				if req.ResolvedAt == nil {
					t.Fatalf("seed %d: resolved request without timestamp", seed)
				}
				if !req.ResolvedAt.After(req.RequestedAt) {
					t.Errorf("seed %d: resolution %v not after request %v", seed, req.ResolvedAt, req.RequestedAt)
				}
			} else if req.ResolvedAt != nil {
				t.Errorf("seed %d: unresolved request has resolution timestamp", seed)
			}
		}
	}
}
