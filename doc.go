// Package moodgen renders procedural placeholder images for moodboards.
//
// # Overview
//
// moodgen deterministically produces a fixed catalog of 600×400 images, one
// per style × section × index. Each image is composed from four primitives
// (flat rectangles, filled circles, vertical gradients and pixel noise)
// using a five-color style palette.
//
// # Quick Start
//
//	buf := moodgen.NewFilledBuffer(600, 400, moodgen.White)
//	buf.VerticalGradient(sky, moodgen.White)
//	buf.DrawRect(0, 260, 600, 140, ground)
//	buf.DrawCircle(300, 300, 12, accent)
//	ppm := moodgen.EncodePPM(buf)
//
// # Architecture
//
// The module is organized into:
//   - moodgen: Buffer, RGB, Palette, primitives, PPM interchange codec, logging
//   - scene: the architecture, landscape, interior and material generators
//   - catalog: style and section tables, entries, seeds, output layout
//   - pipeline: enumerates the catalog and hands buffers to a Converter
//   - convert, store: format conversion and output sinks
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. All
// coordinates are integer pixels. Drawing outside the buffer is clipped
// silently and never reported as an error.
//
// # Determinism
//
// Every primitive is a pure function of its inputs and the random source.
// Given the same palette, variant and seed, a generator produces
// byte-identical output on every platform.
package moodgen

// Default canvas size of catalog images.
const (
	// Width is the width of every catalog image in pixels.
	Width = 600

	// Height is the height of every catalog image in pixels.
	Height = 400
)
