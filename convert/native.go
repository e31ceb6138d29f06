package convert

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/moodgen"
	"github.com/gogpu/moodgen/store"
)

// DefaultQuality is the JPEG quality used when Native.Quality is 0.
const DefaultQuality = 90

// Native converts in-process with the Go image encoders and writes the
// result to Sink. It is safe for concurrent use if Sink is.
type Native struct {
	Format  Format
	Quality int // JPEG quality 1-100; 0 means DefaultQuality
	Sink    store.Sink
}

// NewNative returns a Native converter for format f writing to sink.
func NewNative(f Format, sink store.Sink) *Native {
	return &Native{Format: f, Sink: sink}
}

// Convert decodes ppm, encodes it as n.Format and stores it under dst.
func (n *Native) Convert(ctx context.Context, ppm []byte, dst string) error {
	buf, err := moodgen.DecodePPM(ppm)
	if err != nil {
		return fmt.Errorf("convert: %s: %w", dst, err)
	}

	var out bytes.Buffer
	out.Grow(len(ppm) / 4)
	if err := n.Encode(&out, buf.ToImage()); err != nil {
		return fmt.Errorf("convert: %s: %w", dst, err)
	}

	moodgen.Logger().Debug("convert: encoded", "dst", dst, "format", n.Format.String(), "bytes", out.Len())
	return n.Sink.Put(ctx, dst, out.Bytes())
}

// Encode writes img in n.Format.
func (n *Native) Encode(w io.Writer, img image.Image) error {
	switch n.Format {
	case JPEG:
		q := n.Quality
		if q <= 0 {
			q = DefaultQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: min(q, 100)})
	case PNG:
		enc := png.Encoder{CompressionLevel: png.BestSpeed}
		return enc.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, n.Format)
	}
}
