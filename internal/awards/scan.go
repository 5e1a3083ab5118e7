package awards

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learntrace/internal/progress"
)

const (
	// Completions of one subject needed for a subject-explorer award.
	explorerCompletions = 5
	// High scores (>= excellenceScore) needed for the excellence award.
	excellenceCount = 3
	excellenceScore = 90
)

// Scan derives achievements from completed progress records in one pass.
// At most one first-completion award, one explorer award per qualifying
// subject, and one excellence award are emitted; each award's timestamp is
// taken from the record that triggered it.
func Scan(learnerID string, records []progress.Record) []Achievement {
	var out []Achievement

	first := false
	bySubject := map[string]int{}
	explored := map[string]bool{}
	highScores := 0
	excellence := false

	for _, rec := range records {
		if rec.Status != progress.StatusCompleted {
			continue
		}

		if !first {
			first = true
			out = append(out, Achievement{
				ID:          uuid.NewString(),
				LearnerID:   learnerID,
				Type:        TypeFirstCompletion,
				Title:       "First Steps",
				Description: "Completed a first activity",
				Points:      TypeFirstCompletion.Points(),
				EarnedAt:    earnedAt(rec),
				Metadata:    map[string]string{"record_id": rec.ID},
			})
		}

		bySubject[rec.SubjectID]++
		if bySubject[rec.SubjectID] == explorerCompletions && !explored[rec.SubjectID] {
			explored[rec.SubjectID] = true
			out = append(out, Achievement{
				ID:          uuid.NewString(),
				LearnerID:   learnerID,
				Type:        TypeSubjectExplorer,
				Title:       "Subject Explorer",
				Description: fmt.Sprintf("Completed %d activities in %s", explorerCompletions, rec.SubjectID),
				Points:      TypeSubjectExplorer.Points(),
				EarnedAt:    earnedAt(rec),
				Metadata:    map[string]string{"subject_id": rec.SubjectID},
			})
		}

		if rec.Score >= excellenceScore {
			highScores++
			if highScores == excellenceCount && !excellence {
				excellence = true
				out = append(out, Achievement{
					ID:          uuid.NewString(),
					LearnerID:   learnerID,
					Type:        TypeExcellence,
					Title:       "Excellence Achiever",
					Description: fmt.Sprintf("Scored %d+ on %d activities", excellenceScore, excellenceCount),
					Points:      TypeExcellence.Points(),
					EarnedAt:    earnedAt(rec),
					Metadata:    map[string]string{"record_id": rec.ID},
				})
			}
		}
	}

	return out
}

// earnedAt prefers the record's completion time, falling back to its start.
func earnedAt(rec progress.Record) time.Time {
	if rec.CompletedAt != nil {
		return *rec.CompletedAt
	}
	return rec.StartedAt
}
