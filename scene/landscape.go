package scene

import "github.com/gogpu/moodgen"

// horizon is the near-white top of the landscape sky.
var horizon = moodgen.RGB{R: 245, G: 250, B: 248}

// Landscape draws a sky, a foliage band over the lower 45%, a pool and a
// deck, then scatters 6+variant shrubs (radius 6 to 17) over the lower 55%
// of the frame. Each shrub consumes three draws from rng: x, y, radius.
func Landscape(p moodgen.Palette, variant int, rng moodgen.Rand) *moodgen.Buffer {
	const w, h = moodgen.Width, moodgen.Height

	buf := moodgen.NewFilledBuffer(w, h, p.Base())
	buf.VerticalGradient(p.Base(), horizon)
	buf.DrawRect(0, frac(h, 0.55), w, frac(h, 0.45), p.Accent())

	// pool
	buf.DrawRect(frac(w, 0.12), frac(h, 0.62), frac(w, 0.5), frac(h, 0.2), p.Deep())
	// deck
	buf.DrawRect(frac(w, 0.65), frac(h, 0.65), frac(w, 0.25), frac(h, 0.18), p.Secondary())

	top := frac(h, 0.45)
	for range 6 + variant {
		cx := rng.IntN(w)
		cy := moodgen.RandRange(rng, top, h)
		r := moodgen.RandRange(rng, 6, 18)
		buf.DrawCircle(cx, cy, r, p.Accent())
	}
	return buf
}
