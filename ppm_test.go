package moodgen

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodePPM(t *testing.T) {
	b := NewBuffer(2, 1)
	b.SetPixel(0, 0, RGB{1, 2, 3})
	b.SetPixel(1, 0, RGB{4, 5, 6})

	got := EncodePPM(b)
	want := append([]byte("P6\n2 1\n255\n"), 1, 2, 3, 4, 5, 6)
	if !bytes.Equal(got, want) {
		t.Errorf("EncodePPM() = %q, want %q", got, want)
	}
}

func TestWritePPM_MatchesEncode(t *testing.T) {
	b := NewFilledBuffer(Width, Height, RGB{201, 98, 68})
	var w bytes.Buffer
	if err := WritePPM(&w, b); err != nil {
		t.Fatalf("WritePPM() = %v", err)
	}
	if !bytes.Equal(w.Bytes(), EncodePPM(b)) {
		t.Error("WritePPM and EncodePPM disagree")
	}
	if got, want := w.Len(), len("P6\n600 400\n255\n")+Width*Height*3; got != want {
		t.Errorf("encoded length = %d, want %d", got, want)
	}
}

func TestDecodePPM(t *testing.T) {
	src := NewBuffer(5, 4)
	src.VerticalGradient(RGB{10, 20, 30}, RGB{200, 210, 220})
	src.DrawCircle(2, 2, 1, White)

	got, err := DecodePPM(EncodePPM(src))
	if err != nil {
		t.Fatalf("DecodePPM() = %v", err)
	}
	if !got.Equal(src) {
		t.Error("decoded buffer differs from source")
	}
}

func TestDecodePPM_Comments(t *testing.T) {
	data := append([]byte("P6\n# generated\n1 1\n# max\n255\n"), 9, 8, 7)
	b, err := DecodePPM(data)
	if err != nil {
		t.Fatalf("DecodePPM() = %v", err)
	}
	if got := b.Pixel(0, 0); got != (RGB{9, 8, 7}) {
		t.Errorf("Pixel(0,0) = %v", got)
	}
}

func TestDecodePPM_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrPPMHeader},
		{"ascii pixmap", []byte("P3\n1 1\n255\n0 0 0\n"), ErrPPMHeader},
		{"bad width", []byte("P6\nx 1\n255\n"), ErrPPMHeader},
		{"zero height", []byte("P6\n1 0\n255\n"), ErrPPMHeader},
		{"16-bit", []byte("P6\n1 1\n65535\n\x00\x00\x00\x00\x00\x00"), ErrPPMHeader},
		{"truncated", []byte("P6\n2 2\n255\n\x00\x00\x00"), ErrPPMData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePPM(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodePPM() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodePPM_OversizedHeader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"overflowing size", []byte("P6\n4000000000 4000000000\n255\n")},
		{"huge width", []byte("P6\n9223372036854775807 1\n255\n\x00\x00\x00")},
		{"huge height", []byte("P6\n1 9223372036854775807\n255\n\x00\x00\x00")},
		{"one row short", []byte("P6\n2 2\n255\n\x00\x00\x00\x00\x00\x00\x00\x00\x00")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := DecodePPM(tt.data)
			if !errors.Is(err, ErrPPMData) {
				t.Errorf("DecodePPM() = %v, want ErrPPMData", err)
			}
			if b != nil {
				t.Error("DecodePPM() returned a buffer for a short payload")
			}
		})
	}
}

func TestDecodePPM_ExactPayload(t *testing.T) {
	data := append([]byte("P6\n1 2\n255\n"), 9, 8, 7, 6, 5, 4)
	b, err := DecodePPM(data)
	if err != nil {
		t.Fatalf("DecodePPM() = %v", err)
	}
	if got := b.Pixel(0, 1); got != (RGB{6, 5, 4}) {
		t.Errorf("Pixel(0, 1) = %v", got)
	}
}
