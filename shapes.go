package moodgen

// DrawRect fills the rectangle with top-left corner (x, y) and size w×h.
// The part outside the buffer is clipped; an empty intersection is a no-op.
func (b *Buffer) DrawRect(x, y, w, h int, c RGB) {
	x0 := max(0, x)
	y0 := max(0, y)
	x1 := min(b.width, x+w)
	y1 := min(b.height, y+h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	stride := b.width * 3
	first := y0*stride + x0*3
	span := (x1 - x0) * 3
	row := b.data[first : first+span]
	for i := 0; i < span; i += 3 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
	}
	for yy := y0 + 1; yy < y1; yy++ {
		copy(b.data[yy*stride+x0*3:], row)
	}
}

// DrawCircle fills every pixel whose squared distance from (cx, cy) is at
// most r². Pixels falling outside the buffer are skipped individually, so
// circles near an edge are clipped.
func (b *Buffer) DrawCircle(cx, cy, r int, c RGB) {
	r2 := r * r
	for y := cy - r; y <= cy+r; y++ {
		dy := y - cy
		for x := cx - r; x <= cx+r; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= r2 {
				b.SetPixel(x, y, c)
			}
		}
	}
}
