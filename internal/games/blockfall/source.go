package blockfall

import "math/rand"

// PieceSource picks the shape of each spawned piece.
type PieceSource interface {
	// Next returns a shape index in [0, n).
	Next(n int) int
}

// RandSource draws shape indices uniformly from a seeded generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a uniform source. The same seed yields the same sequence.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly distributed index in [0, n).
func (s *RandSource) Next(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// SequenceSource replays a fixed list of shape indices, cycling when exhausted.
type SequenceSource struct {
	seq []int
	pos int
}

// NewSequenceSource creates a source that yields indices in order.
// An empty list always yields 0.
func NewSequenceSource(indices ...int) *SequenceSource {
	return &SequenceSource{seq: append([]int(nil), indices...)}
}

// Next returns the next index of the sequence, reduced into [0, n).
func (s *SequenceSource) Next(n int) int {
	if len(s.seq) == 0 || n <= 0 {
		return 0
	}
	v := s.seq[s.pos%len(s.seq)]
	s.pos++
	return ((v % n) + n) % n
}
