package engine

import "math/rand"

// Randomizer chooses the variant of each newly generated shape.
type Randomizer interface {
	Next() Variant
}

// UniformRandomizer picks every variant with equal probability,
// independent of previous picks. There is no bag guarantee.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer creates a randomizer seeded with seed.
func NewUniformRandomizer(seed int64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen variant.
func (u *UniformRandomizer) Next() Variant {
	return Variants[u.rng.Intn(len(Variants))]
}

// SequenceRandomizer replays a fixed sequence of variants, cycling when it
// runs out. Useful for scripted play and tests.
type SequenceRandomizer struct {
	seq []Variant
	pos int
}

// NewSequenceRandomizer creates a randomizer that yields seq in order.
func NewSequenceRandomizer(seq ...Variant) *SequenceRandomizer {
	if len(seq) == 0 {
		panic("engine: empty variant sequence")
	}
	return &SequenceRandomizer{seq: seq}
}

// Next returns the next variant in the sequence.
func (s *SequenceRandomizer) Next() Variant {
	v := s.seq[s.pos%len(s.seq)]
	s.pos++
	return v
}
