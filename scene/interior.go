package scene

import "github.com/gogpu/moodgen"

// interiorNoise is the speckle density of interior scenes.
const interiorNoise = 0.002

// Interior draws a warm gradient, a white wall panel, two furniture blocks
// and a light speckle in the deep tone.
func Interior(p moodgen.Palette, _ int, rng moodgen.Rand) *moodgen.Buffer {
	const w, h = moodgen.Width, moodgen.Height

	buf := moodgen.NewFilledBuffer(w, h, p.Base())
	buf.VerticalGradient(p.Base(), p.Secondary())
	buf.DrawRect(frac(w, 0.15), frac(h, 0.2), frac(w, 0.7), frac(h, 0.5), moodgen.White)
	buf.DrawRect(frac(w, 0.18), frac(h, 0.25), frac(w, 0.25), frac(h, 0.3), p.Warm())
	buf.DrawRect(frac(w, 0.5), frac(h, 0.3), frac(w, 0.28), frac(h, 0.25), p.Accent())
	buf.AddNoise(rng, interiorNoise, p.Deep())
	return buf
}
