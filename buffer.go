package moodgen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// Buffer is a fixed-size RGB8 raster stored row-major, 3 bytes per pixel.
// The backing slice always holds exactly Width*Height*3 bytes and is never
// resized.
//
// Thread safety: a Buffer is not safe for concurrent mutation. Concurrent
// reads are fine once drawing has finished.
type Buffer struct {
	width  int
	height int
	data   []uint8
}

// NewBuffer creates a black buffer with the given dimensions.
// It panics if either dimension is not positive.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("moodgen: invalid buffer size %dx%d", width, height))
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
}

// NewFilledBuffer creates a buffer with every pixel set to c.
func NewFilledBuffer(width, height int, c RGB) *Buffer {
	b := NewBuffer(width, height)
	b.Fill(c)
	return b
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Bytes returns the raw pixel data. Callers must not change its length.
func (b *Buffer) Bytes() []uint8 {
	return b.data
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the buffer are ignored.
func (b *Buffer) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 3
	b.data[i+0] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
}

// Pixel returns the color of a single pixel, or Black outside the buffer.
func (b *Buffer) Pixel(x, y int) RGB {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Black
	}
	i := (y*b.width + x) * 3
	return RGB{R: b.data[i+0], G: b.data[i+1], B: b.data[i+2]}
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c RGB) {
	b.fillRow(0, b.width, c)
	row := b.data[:b.width*3]
	for y := 1; y < b.height; y++ {
		copy(b.data[y*b.width*3:], row)
	}
}

// fillRow writes c into pixels [x0, x1) of the first row, then callers copy
// the row where they need it.
func (b *Buffer) fillRow(x0, x1 int, c RGB) {
	for i := x0 * 3; i < x1*3; i += 3 {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{width: b.width, height: b.height, data: make([]uint8, len(b.data))}
	copy(out.data, b.data)
	return out
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.width == o.width && b.height == o.height && bytes.Equal(b.data, o.data)
}

// ToImage converts the buffer to an image.RGBA.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for src, dst := 0, 0; src < len(b.data); src, dst = src+3, dst+4 {
		img.Pix[dst+0] = b.data[src+0]
		img.Pix[dst+1] = b.data[src+1]
		img.Pix[dst+2] = b.data[src+2]
		img.Pix[dst+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}
