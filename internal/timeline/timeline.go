package timeline

import (
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/abhisek/learntrace/internal/profile"
)

// Session start hours are drawn from this window.
const (
	earliestHour = 8
	latestHour   = 20
)

// Generate produces candidate session timestamps covering the historical
// window [now - months, now], sorted ascending. Every week realizes at
// least one session regardless of frequency and consistency.
func Generate(now time.Time, months int, freq profile.Frequency, consistency profile.Consistency, rng *rand.Rand) []time.Time {
	start := now.AddDate(0, -months, 0)
	weeks := int(math.Ceil(now.Sub(start).Hours() / (24 * 7)))
	if weeks < 1 {
		weeks = 1
	}

	base := freq.SessionsPerWeek()
	var sessions []time.Time

	for week := range weeks {
		count := realizedCount(base, consistency, rng)
		weekStart := start.AddDate(0, 0, week*7)

		for range count {
			date := weekStart.AddDate(0, 0, rng.IntN(7))
			hour := earliestHour + rng.IntN(latestHour-earliestHour)
			minute := rng.IntN(60)

			// Anchor the drawn hour on the calendar day; the window
			// bounds inherit now's time of day, so clamping shifts
			// whole days and never the time of day.
			ts := wallClock(date, hour, minute)
			for ts.After(now) {
				ts = ts.AddDate(0, 0, -1)
			}
			for ts.Before(start) {
				ts = ts.AddDate(0, 0, 1)
			}
			if ts.After(now) {
				continue
			}
			sessions = append(sessions, ts)
		}
	}

	slices.SortFunc(sessions, func(a, b time.Time) int { return a.Compare(b) })
	return sessions
}

// wallClock places hour:minute on date's calendar day.
func wallClock(date time.Time, hour, minute int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, date.Location())
}

// realizedCount scales the base weekly session count by the learner's
// consistency, never dropping below one.
func realizedCount(base int, consistency profile.Consistency, rng *rand.Rand) int {
	var factor float64
	switch consistency {
	case profile.ConsistencyInconsistent:
		factor = uniform(rng, 0.3, 1.0)
	case profile.ConsistencyModerate:
		factor = uniform(rng, 0.6, 1.0)
	default:
		factor = 1.0
	}

	count := int(math.Round(float64(base) * factor))
	if count < 1 {
		count = 1
	}
	return count
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
