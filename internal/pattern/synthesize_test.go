package pattern

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/profile"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func gradeSubjects() []catalog.Subject {
	return []catalog.Subject{
		{ID: "math", DisplayName: "Mathematics", Grade: 4},
		{ID: "science", DisplayName: "Science", Grade: 4},
		{ID: "english", DisplayName: "English", Grade: 4},
		{ID: "history", DisplayName: "History", Grade: 4},
	}
}

func TestSynthesizeEngagementBounds(t *testing.T) {
	prof := profile.Default("demo-maya")
	prof.SubjectPreferences = map[string]float64{"math": 1.0, "history": 0.0}

	for seed := uint64(1); seed <= 50; seed++ {
		p := Synthesize(prof, gradeSubjects(), testRNG(seed))
		if len(p.Subjects) != 4 {
			t.Fatalf("seed %d: got %d subjects, want 4", seed, len(p.Subjects))
		}
		for _, s := range p.Subjects {
			if s.Engagement < 0.1 || s.Engagement > 1.0 {
				t.Errorf("seed %d: %s engagement %v outside [0.1,1.0]", seed, s.SubjectID, s.Engagement)
			}
		}
	}
}

func TestSynthesizeUnstatedSubjectGetsBaseline(t *testing.T) {
	prof := profile.Default("demo-maya")
	prof.SubjectPreferences = map[string]float64{}

	p := Synthesize(prof, gradeSubjects(), testRNG(7))
	for _, s := range p.Subjects {
		// Baseline 0.5 jittered by at most ±0.15.
		if s.Engagement < 0.35 || s.Engagement > 0.65 {
			t.Errorf("%s engagement %v outside baseline jitter band", s.SubjectID, s.Engagement)
		}
	}
}

func TestTargetDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		pref       profile.DifficultyPreference
		engagement float64
		want       catalog.Difficulty
	}{
		{"challenging and engaged", profile.DifficultyChallenging, 0.9, catalog.DifficultyAdvanced},
		{"challenging but lukewarm", profile.DifficultyChallenging, 0.6, catalog.DifficultyIntermediate},
		{"challenging but disengaged", profile.DifficultyChallenging, 0.3, catalog.DifficultyBeginner},
		{"conservative always beginner", profile.DifficultyConservative, 0.95, catalog.DifficultyBeginner},
		{"balanced disengaged", profile.DifficultyBalanced, 0.35, catalog.DifficultyBeginner},
		{"balanced engaged", profile.DifficultyBalanced, 0.8, catalog.DifficultyIntermediate},
	}

	for _, tt := range tests {
		if got := targetDifficulty(tt.pref, tt.engagement); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHelpPattern(t *testing.T) {
	prof := profile.Default("demo-maya")
	prof.HelpSeekingBehavior = profile.HelpFrequent
	prof.SubjectPreferences = map[string]float64{"math": 0.9, "history": 0.1}

	p := Synthesize(prof, gradeSubjects(), testRNG(3))
	if p.Help.Frequency != 0.6 {
		t.Errorf("help frequency = %v, want 0.6", p.Help.Frequency)
	}

	// history sits at 0.1 preference; even with max positive jitter its
	// engagement is 0.25 < 0.5, so it must be flagged struggling.
	found := false
	for _, id := range p.Help.StrugglingSubjects {
		if id == "history" {
			found = true
		}
		if p.Engagement(id) >= 0.5 {
			t.Errorf("struggling subject %s has engagement %v >= 0.5", id, p.Engagement(id))
		}
	}
	if !found {
		t.Error("history not flagged as struggling")
	}
}

func TestSynthesizeDeterministicForSeed(t *testing.T) {
	prof := profile.Default("demo-maya")
	prof.SubjectPreferences = map[string]float64{"math": 0.8}

	a := Synthesize(prof, gradeSubjects(), testRNG(42))
	b := Synthesize(prof, gradeSubjects(), testRNG(42))

	for i := range a.Subjects {
		if a.Subjects[i] != b.Subjects[i] {
			t.Fatalf("subject %d differs across identical seeds: %+v vs %+v",
				i, a.Subjects[i], b.Subjects[i])
		}
	}
}

func TestDistributionWeightsNormalized(t *testing.T) {
	prof := profile.Default("demo-maya")
	p := Synthesize(prof, gradeSubjects(), testRNG(11))

	for _, ws := range [][]Weighted{p.TimeOfDay, p.SessionLengths} {
		var sum float64
		for _, w := range ws {
			if w.Weight <= 0 {
				t.Errorf("weight %q not positive: %v", w.Key, w.Weight)
			}
			sum += w.Weight
		}
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("weights sum to %v, want 1", sum)
		}
	}

	for _, w := range p.ResourceWeights {
		if w.Weight < 0.05 || w.Weight > 0.95 {
			t.Errorf("resource weight %q = %v outside [0.05,0.95]", w.Key, w.Weight)
		}
	}
}
