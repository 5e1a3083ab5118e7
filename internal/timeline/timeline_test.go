package timeline

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/learntrace/internal/profile"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestGenerateSortedWithinWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	months := 6
	start := now.AddDate(0, -months, 0)

	for seed := uint64(1); seed <= 20; seed++ {
		sessions := Generate(now, months, profile.FrequencyMedium, profile.ConsistencyModerate, testRNG(seed))
		if len(sessions) == 0 {
			t.Fatalf("seed %d: no sessions", seed)
		}
		for i, ts := range sessions {
			if ts.Before(start) || ts.After(now) {
				t.Errorf("seed %d: session %d at %v outside [%v, %v]", seed, i, ts, start, now)
			}
			if i > 0 && ts.Before(sessions[i-1]) {
				t.Errorf("seed %d: session %d at %v precedes session %d", seed, i, ts, i-1)
			}
		}
	}
}

func TestGenerateMinimumOneSessionPerWeek(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	months := 3

	for seed := uint64(1); seed <= 30; seed++ {
		sessions := Generate(now, months, profile.FrequencyLow, profile.ConsistencyInconsistent, testRNG(seed))
		weeks := int(now.Sub(now.AddDate(0, -months, 0)).Hours() / (24 * 7))
		if len(sessions) < weeks {
			t.Errorf("seed %d: %d sessions for %d weeks, want at least one per week", seed, len(sessions), weeks)
		}
	}
}

func TestGenerateConsistentFrequencyIsExact(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	months := 2
	weeks := int(math.Ceil(now.Sub(now.AddDate(0, -months, 0)).Hours() / (24 * 7)))

	sessions := Generate(now, months, profile.FrequencyHigh, profile.ConsistencyConsistent, testRNG(5))
	want := weeks * profile.FrequencyHigh.SessionsPerWeek()
	if len(sessions) != want {
		t.Errorf("consistent/high: %d sessions, want exactly %d", len(sessions), want)
	}
}

func TestGenerateHoursWithinWindow(t *testing.T) {
	// The draw window is wall-clock 8 AM - 8 PM regardless of the
	// reference time's own hour.
	references := []time.Time{
		time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 5, 30, 0, 0, time.UTC),
	}

	for _, now := range references {
		for seed := uint64(1); seed <= 10; seed++ {
			sessions := Generate(now, 4, profile.FrequencyHigh, profile.ConsistencyConsistent, testRNG(seed))
			if len(sessions) == 0 {
				t.Fatalf("now=%v seed %d: no sessions", now, seed)
			}
			for _, ts := range sessions {
				if h := ts.Hour(); h < earliestHour || h >= latestHour {
					t.Errorf("now=%v seed %d: session at %v has hour %d outside [%d,%d)",
						now, seed, ts, h, earliestHour, latestHour)
				}
			}
		}
	}
}

func TestGenerateCoversFinalPartialWeek(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	months := 2

	// The window is 59 days; the last 3 days belong to a partial week
	// and must still be reachable.
	reachable := false
	for seed := uint64(1); seed <= 40 && !reachable; seed++ {
		sessions := Generate(now, months, profile.FrequencyHigh, profile.ConsistencyConsistent, testRNG(seed))
		for _, ts := range sessions {
			if now.Sub(ts) < 4*24*time.Hour {
				reachable = true
				break
			}
		}
	}
	if !reachable {
		t.Error("no session within 4 days of now across 40 seeds: final partial week never sampled")
	}
}

func TestGenerateShortWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	sessions := Generate(now, 1, profile.FrequencyLow, profile.ConsistencyInconsistent, testRNG(2))
	if len(sessions) == 0 {
		t.Fatal("one-month window produced no sessions")
	}
}
