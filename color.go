package moodgen

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadHex is returned by ParseHex for strings that are not "#rrggbb" or "#rgb".
var ErrBadHex = errors.New("moodgen: malformed hex color")

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// ParseHex parses a "#rrggbb" or "#rgb" color string.
func ParseHex(s string) (RGB, error) {
	if (len(s) != 7 && len(s) != 4) || s[0] != '#' || !isHexDigits(s[1:]) {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %w", ErrBadHex, s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Lerp interpolates channel-wise from a to b. Fractional results are
// truncated, so Lerp(a, b, 0) == a and Lerp(a, b, 1) == b.
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	fa := float64(a)
	// Both endpoints are non-negative, so int() truncation is a floor. The
	// explicit conversion keeps the compiler from fusing the multiply-add.
	return uint8(int(fa + float64((float64(b)-fa)*t)))
}

// Palette is the ordered five-color set of a style. Scene generators address
// colors by position, so the order is part of the contract.
type Palette [5]RGB

// Base returns the light base tone (index 0).
func (p Palette) Base() RGB { return p[0] }

// Secondary returns index 1.
func (p Palette) Secondary() RGB { return p[1] }

// Accent returns index 2.
func (p Palette) Accent() RGB { return p[2] }

// Deep returns the dark tone (index 3).
func (p Palette) Deep() RGB { return p[3] }

// Warm returns the warm tone (index 4).
func (p Palette) Warm() RGB { return p[4] }

// ParsePalette parses exactly five hex colors.
func ParsePalette(hex []string) (Palette, error) {
	var p Palette
	if len(hex) != len(p) {
		return p, fmt.Errorf("moodgen: palette has %d colors, want %d", len(hex), len(p))
	}
	for i, s := range hex {
		c, err := ParseHex(s)
		if err != nil {
			return p, fmt.Errorf("moodgen: palette color %d: %w", i, err)
		}
		p[i] = c
	}
	return p, nil
}
