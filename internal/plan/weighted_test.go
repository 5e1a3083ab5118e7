package plan

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/learntrace/internal/pattern"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestPickerHigherWeightWinsMoreOften(t *testing.T) {
	rng := testRNG(1)
	counts := map[string]int{}

	for range 10000 {
		p := NewPicker([]pattern.Weighted{
			{Key: "math", Weight: 0.9},
			{Key: "history", Weight: 0.1},
		})
		key, ok := p.Pick(rng)
		if !ok {
			t.Fatal("pick failed")
		}
		counts[key]++
	}

	if counts["math"] <= counts["history"] {
		t.Errorf("math picked %d times vs history %d; higher weight must win more",
			counts["math"], counts["history"])
	}
	// With a 9:1 ratio, math should take clearly more than half.
	if counts["math"] < 8000 {
		t.Errorf("math picked only %d/10000 with weight 0.9", counts["math"])
	}
}

func TestPickerDeterministicForSeed(t *testing.T) {
	pairs := []pattern.Weighted{
		{Key: "a", Weight: 0.2},
		{Key: "b", Weight: 0.5},
		{Key: "c", Weight: 0.3},
	}

	var first []string
	for run := range 2 {
		rng := testRNG(99)
		p := NewPicker(pairs)
		var picks []string
		for {
			key, ok := p.Take(rng)
			if !ok {
				break
			}
			picks = append(picks, key)
		}
		if run == 0 {
			first = picks
			continue
		}
		if len(picks) != len(first) {
			t.Fatalf("pick counts differ: %v vs %v", picks, first)
		}
		for i := range picks {
			if picks[i] != first[i] {
				t.Fatalf("pick %d differs: %q vs %q", i, picks[i], first[i])
			}
		}
	}
}

func TestTakeExhausts(t *testing.T) {
	p := NewPicker([]pattern.Weighted{
		{Key: "a", Weight: 1},
		{Key: "b", Weight: 1},
	})
	rng := testRNG(4)

	seen := map[string]bool{}
	for {
		key, ok := p.Take(rng)
		if !ok {
			break
		}
		if seen[key] {
			t.Fatalf("key %q taken twice", key)
		}
		seen[key] = true
	}
	if len(seen) != 2 {
		t.Errorf("took %d keys, want 2", len(seen))
	}
}

func TestPickEmptyOrZeroWeight(t *testing.T) {
	if _, ok := NewPicker(nil).Pick(testRNG(1)); ok {
		t.Error("empty picker returned a key")
	}
	p := NewPicker([]pattern.Weighted{{Key: "a", Weight: 0}})
	if _, ok := p.Pick(testRNG(1)); ok {
		t.Error("zero-weight picker returned a key")
	}
}
