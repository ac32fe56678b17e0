package bot

import "math/rand"

// Picker chooses uniformly among equally good columns. Seeded so a
// game can be replayed; the engine itself never owns randomness.
type Picker struct {
	rng *rand.Rand
}

func NewPicker(seed int64) *Picker {
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns one column from moves, or false when the set is empty
// (no legal move left).
func (p *Picker) Pick(moves []int) (int, bool) {
	if len(moves) == 0 {
		return -1, false
	}
	return moves[p.rng.Intn(len(moves))], true
}
