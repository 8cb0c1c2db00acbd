package placement

import "math/rand"

// PRNG wraps math/rand.Rand the same way pkg/grid/seed.go seeds its
// black-square placement: a single seeded source gives Fisher-Yates
// shuffles and bounded draws that are reproducible across runs.
type PRNG struct {
	r *rand.Rand
}

// NewPRNG creates a PRNG seeded from seed.
func NewPRNG(seed int64) *PRNG {
	return &PRNG{r: rand.New(rand.NewSource(seed))}
}

// Shuffle performs an in-place Fisher-Yates shuffle of n elements.
func (p *PRNG) Shuffle(n int, swap func(i, j int)) {
	p.r.Shuffle(n, swap)
}

// Intn draws a uniform value in [0, n).
func (p *PRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return p.r.Intn(n)
}

// Range draws a uniform value in [min, max).
func (p *PRNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.Intn(max-min)
}
