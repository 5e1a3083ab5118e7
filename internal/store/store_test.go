package store

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/generate"
	"github.com/abhisek/learntrace/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testBundle(t *testing.T, seed uint64) *generate.Bundle {
	t.Helper()
	g := generate.New(catalog.NewSeeded())
	g.Now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	prof := profile.Default("demo-maya")
	prof.TimeRangeMonths = 2

	bundle, err := g.Generate(context.Background(), prof, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		t.Fatalf("generate bundle: %v", err)
	}
	return bundle
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSaveBundleAndStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	bundle := testBundle(t, 7)

	if err := s.SaveBundle(ctx, bundle); err != nil {
		t.Fatalf("SaveBundle: %v", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d learners, want 1", len(stats))
	}

	st := stats[0]
	counts := bundle.Counts()
	if st.LearnerID != "demo-maya" {
		t.Errorf("learner = %q", st.LearnerID)
	}
	if st.Plans != counts.Plans {
		t.Errorf("plans = %d, want %d", st.Plans, counts.Plans)
	}
	if st.Records != counts.Records {
		t.Errorf("records = %d, want %d", st.Records, counts.Records)
	}
	if st.Achievements != counts.Achievements {
		t.Errorf("achievements = %d, want %d", st.Achievements, counts.Achievements)
	}
	if counts.Records > 0 && (st.MeanScore < 0 || st.MeanScore > 100) {
		t.Errorf("mean score %v outside [0,100]", st.MeanScore)
	}
}

func TestSaveBundleTwiceKeepsOneLearner(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveBundle(ctx, testBundle(t, 1)); err != nil {
		t.Fatalf("first SaveBundle: %v", err)
	}
	if err := s.SaveBundle(ctx, testBundle(t, 2)); err != nil {
		t.Fatalf("second SaveBundle: %v", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats) != 1 {
		t.Errorf("got %d learners after two bundles for the same learner", len(stats))
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveBundle(ctx, testBundle(t, 3)); err != nil {
		t.Fatalf("SaveBundle: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("got %d learners after reset, want 0", len(stats))
	}
}
