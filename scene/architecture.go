package scene

import "github.com/gogpu/moodgen"

// Architecture draws a sky fading to white, a ground band over the lower 35%
// and three building blocks standing on a common base line. Block heights
// cycle through three tiers keyed by (variant+i) mod 3, so consecutive
// variants shift the skyline. The random source is not consumed.
func Architecture(p moodgen.Palette, variant int, _ moodgen.Rand) *moodgen.Buffer {
	const w, h = moodgen.Width, moodgen.Height

	buf := moodgen.NewFilledBuffer(w, h, p.Base())
	buf.VerticalGradient(p.Base(), moodgen.White)
	buf.DrawRect(0, frac(h, 0.65), w, frac(h, 0.35), p.Secondary())

	baseY := frac(h, 0.35)
	widths := [3]int{frac(w, 0.25), frac(w, 0.28), frac(w, 0.22)}
	offsets := [3]int{frac(w, 0.1), frac(w, 0.4), frac(w, 0.7)}
	for i, bw := range widths {
		bh := frac(h, 0.25+float64(0.1*float64(mod(variant+i, 3))))
		buf.DrawRect(offsets[i], baseY-bh, bw, bh, p.Accent())

		// window
		buf.DrawRect(
			offsets[i]+frac(bw, 0.2),
			baseY-frac(bh, 0.6),
			frac(bw, 0.6),
			frac(bh, 0.2),
			p.Base(),
		)
	}
	return buf
}
