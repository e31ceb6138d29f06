package moodgen

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#f6efe6", RGB{246, 239, 230}},
		{"#3A9D86", RGB{58, 157, 134}},
		{"#000000", Black},
		{"#ffffff", White},
		{"#fff", White},
		{"#a50", RGB{0xaa, 0x55, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "f6efe6", "#f6efe", "#f6efe6a", "#gggggg", "#12345z", "rgb(1,2,3)"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrBadHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrBadHex", in, err)
		}
	}
}

func TestRGB_Hex(t *testing.T) {
	c := RGB{201, 98, 68}
	if got := c.Hex(); got != "#c96244" {
		t.Errorf("Hex() = %q, want #c96244", got)
	}
	back, err := ParseHex(c.String())
	if err != nil || back != c {
		t.Errorf("ParseHex(String()) = %v, %v", back, err)
	}
}

func TestRGB_Color(t *testing.T) {
	var c color.Color = RGB{255, 0, 128}
	got := color.RGBAModel.Convert(c).(color.RGBA)
	if got != (color.RGBA{R: 255, G: 0, B: 128, A: 255}) {
		t.Errorf("RGBAModel.Convert = %v", got)
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#f6efe6", "#c9a97c", "#3a9d86", "#2f2b23", "#c96244"})
	if err != nil {
		t.Fatalf("ParsePalette() = %v", err)
	}
	if p.Base() != (RGB{246, 239, 230}) {
		t.Errorf("Base() = %v", p.Base())
	}
	if p.Secondary() != (RGB{201, 169, 124}) {
		t.Errorf("Secondary() = %v", p.Secondary())
	}
	if p.Accent() != (RGB{58, 157, 134}) {
		t.Errorf("Accent() = %v", p.Accent())
	}
	if p.Deep() != (RGB{47, 43, 35}) {
		t.Errorf("Deep() = %v", p.Deep())
	}
	if p.Warm() != (RGB{201, 98, 68}) {
		t.Errorf("Warm() = %v", p.Warm())
	}
}

func TestParsePalette_Errors(t *testing.T) {
	if _, err := ParsePalette([]string{"#ffffff", "#000000"}); err == nil {
		t.Error("short palette accepted")
	}
	_, err := ParsePalette([]string{"#ffffff", "#000000", "#111111", "#222222", "nope"})
	if !errors.Is(err, ErrBadHex) {
		t.Errorf("bad color error = %v, want ErrBadHex", err)
	}
}
