package grid

// rng is a deterministic pseudo-random number generator (xorshift64).
// World generation must be reproducible for a given seed, so we avoid
// math/rand's version-dependent stream.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &rng{state: seed}
}

func (r *rng) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// float returns a random float64 in [0, 1).
func (r *rng) float() float64 {
	return float64(r.next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}
