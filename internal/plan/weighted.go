package plan

import (
	"math/rand/v2"

	"github.com/abhisek/learntrace/internal/pattern"
)

// Picker selects keys from an explicit ordered weight list. Order matters:
// given a fixed random source, the same pairs in the same order always
// produce the same picks.
type Picker struct {
	pairs []pattern.Weighted
	total float64
}

// NewPicker builds a Picker over the given pairs. Pairs with non-positive
// weight are kept but can never be selected while a positive-weight pair
// remains.
func NewPicker(pairs []pattern.Weighted) *Picker {
	p := &Picker{pairs: make([]pattern.Weighted, len(pairs))}
	copy(p.pairs, pairs)
	for _, w := range p.pairs {
		if w.Weight > 0 {
			p.total += w.Weight
		}
	}
	return p
}

// Len returns the number of remaining pairs.
func (p *Picker) Len() int { return len(p.pairs) }

// Pick draws one key with probability proportional to its weight.
// The final pair absorbs any remainder probability mass, so ties and
// floating-point drift resolve toward later pairs. Returns false when no
// selectable pair remains.
func (p *Picker) Pick(rng *rand.Rand) (string, bool) {
	if p.total <= 0 {
		return "", false
	}

	roll := rng.Float64() * p.total
	var acc float64
	last := ""
	for _, w := range p.pairs {
		if w.Weight <= 0 {
			continue
		}
		acc += w.Weight
		last = w.Key
		if roll < acc {
			return w.Key, true
		}
	}
	return last, last != ""
}

// Take draws one key and removes it, for sampling without replacement.
func (p *Picker) Take(rng *rand.Rand) (string, bool) {
	key, ok := p.Pick(rng)
	if !ok {
		return "", false
	}
	for i, w := range p.pairs {
		if w.Key == key {
			if w.Weight > 0 {
				p.total -= w.Weight
			}
			p.pairs = append(p.pairs[:i], p.pairs[i+1:]...)
			break
		}
	}
	return key, true
}
