package moodgen

import "math"

// Rand is the deterministic random source consumed by the noise primitive
// and the scene generators. *math/rand/v2.Rand implements it.
type Rand interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// RandRange returns a uniform value in [lo, hi).
func RandRange(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo)
}

// NoiseCount returns the number of draws AddNoise makes for the given
// density: W×H×density rounded to the nearest integer.
func (b *Buffer) NoiseCount(density float64) int {
	if density <= 0 {
		return 0
	}
	return int(math.Round(float64(b.width*b.height) * density))
}

// AddNoise overwrites NoiseCount(density) uniformly random pixels with c.
// The x coordinate of each draw is taken before y. Repeated coordinates
// simply overwrite. It returns the number of draws.
func (b *Buffer) AddNoise(rng Rand, density float64, c RGB) int {
	n := b.NoiseCount(density)
	for range n {
		x := rng.IntN(b.width)
		y := rng.IntN(b.height)
		b.SetPixel(x, y, c)
	}
	return n
}
