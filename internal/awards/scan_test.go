package awards

import (
	"testing"
	"time"

	"github.com/abhisek/learntrace/internal/progress"
)

func completedRecord(i int, subject string, score float64) progress.Record {
	started := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(i) * 24 * time.Hour)
	completed := started.Add(30 * time.Minute)
	return progress.Record{
		ID:          "rec-" + string(rune('a'+i)),
		LearnerID:   "demo-maya",
		SubjectID:   subject,
		Status:      progress.StatusCompleted,
		Score:       score,
		TimeSpent:   30,
		StartedAt:   started,
		CompletedAt: &completed,
	}
}

func byType(achievements []Achievement) map[Type][]Achievement {
	out := map[Type][]Achievement{}
	for _, a := range achievements {
		out[a.Type] = append(out[a.Type], a)
	}
	return out
}

func TestScanFirstCompletionOnce(t *testing.T) {
	records := []progress.Record{
		completedRecord(0, "math", 75),
		completedRecord(1, "math", 80),
	}

	got := byType(Scan("demo-maya", records))
	firsts := got[TypeFirstCompletion]
	if len(firsts) != 1 {
		t.Fatalf("got %d first-completion awards, want 1", len(firsts))
	}
	if !firsts[0].EarnedAt.Equal(*records[0].CompletedAt) {
		t.Errorf("earned at %v, want first record's completion %v", firsts[0].EarnedAt, records[0].CompletedAt)
	}
	if firsts[0].Points != 10 {
		t.Errorf("points = %d, want 10", firsts[0].Points)
	}
}

func TestScanSubjectExplorerAtFifth(t *testing.T) {
	var records []progress.Record
	for i := range 7 {
		records = append(records, completedRecord(i, "science", 72))
	}

	got := byType(Scan("demo-maya", records))
	explorers := got[TypeSubjectExplorer]
	if len(explorers) != 1 {
		t.Fatalf("got %d explorer awards, want 1", len(explorers))
	}
	// Timestamp must come from the 5th qualifying record, not the last.
	if !explorers[0].EarnedAt.Equal(*records[4].CompletedAt) {
		t.Errorf("earned at %v, want 5th completion %v", explorers[0].EarnedAt, records[4].CompletedAt)
	}
	if explorers[0].Metadata["subject_id"] != "science" {
		t.Errorf("metadata subject = %q", explorers[0].Metadata["subject_id"])
	}
}

func TestScanExplorerPerSubject(t *testing.T) {
	var records []progress.Record
	for i := range 5 {
		records = append(records, completedRecord(i, "math", 72))
	}
	for i := 5; i < 10; i++ {
		records = append(records, completedRecord(i, "english", 72))
	}
	for i := 10; i < 13; i++ {
		records = append(records, completedRecord(i, "science", 72))
	}

	got := byType(Scan("demo-maya", records))
	if len(got[TypeSubjectExplorer]) != 2 {
		t.Errorf("got %d explorer awards, want 2 (math, english)", len(got[TypeSubjectExplorer]))
	}
}

func TestScanExcellenceAtThirdHighScore(t *testing.T) {
	records := []progress.Record{
		completedRecord(0, "math", 95),
		completedRecord(1, "math", 88), // below 90, does not count
		completedRecord(2, "math", 92),
		completedRecord(3, "math", 91),
		completedRecord(4, "math", 99),
	}

	got := byType(Scan("demo-maya", records))
	awards := got[TypeExcellence]
	if len(awards) != 1 {
		t.Fatalf("got %d excellence awards, want 1", len(awards))
	}
	// Third qualifying score is the record at index 3.
	if !awards[0].EarnedAt.Equal(*records[3].CompletedAt) {
		t.Errorf("earned at %v, want 3rd high score %v", awards[0].EarnedAt, records[3].CompletedAt)
	}
	if awards[0].Points != 50 {
		t.Errorf("points = %d, want 50", awards[0].Points)
	}
}

func TestScanIgnoresIncompleteRecords(t *testing.T) {
	records := []progress.Record{
		{ID: "r1", SubjectID: "math", Status: progress.StatusInProgress, Score: 95, StartedAt: time.Now()},
		{ID: "r2", SubjectID: "math", Status: progress.StatusNotStarted, Score: 95, StartedAt: time.Now()},
	}
	if got := Scan("demo-maya", records); len(got) != 0 {
		t.Errorf("incomplete records earned %d awards", len(got))
	}
}

func TestScanEmpty(t *testing.T) {
	if got := Scan("demo-maya", nil); len(got) != 0 {
		t.Errorf("no records earned %d awards", len(got))
	}
}
