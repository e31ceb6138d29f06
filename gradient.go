package moodgen

// VerticalGradient overwrites the whole buffer with a top-to-bottom
// gradient. Row y gets Lerp(top, bottom, y/(H-1)), so the first row is
// exactly top and the last row is exactly bottom. A one-row buffer is
// filled with top.
func (b *Buffer) VerticalGradient(top, bottom RGB) {
	if b.height == 1 {
		b.Fill(top)
		return
	}

	stride := b.width * 3
	last := float64(b.height - 1)
	for y := range b.height {
		c := Lerp(top, bottom, float64(y)/last)
		row := b.data[y*stride : (y+1)*stride]
		for i := 0; i < stride; i += 3 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
		}
	}
}
