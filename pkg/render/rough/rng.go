package rough

const (
	rngMul  = 1103515245
	rngInc  = 12345
	rngMask = 1<<31 - 1
)

// RNG is a linear congruential generator with 31 bits of state. One
// instance is threaded through a render pass so output depends only on
// the seed and the draw order, never on shared state.
type RNG struct {
	state int64
}

// NewRNG returns a generator seeded with the low 31 bits of seed.
func NewRNG(seed int64) *RNG {
	return &RNG{state: seed & rngMask}
}

// Next returns the next value in [0, 1).
func (r *RNG) Next() float64 {
	r.state = (r.state*rngMul + rngInc) & rngMask
	return float64(r.state) / float64(rngMask+1)
}
