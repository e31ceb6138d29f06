package moodgen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// PPM errors.
var (
	// ErrPPMHeader is returned when the interchange header is malformed.
	ErrPPMHeader = errors.New("moodgen: malformed PPM header")

	// ErrPPMData is returned when the pixel payload has the wrong length.
	ErrPPMData = errors.New("moodgen: truncated PPM data")
)

// ppmMagic identifies binary RGB portable pixmaps.
const ppmMagic = "P6"

// EncodePPM returns the interchange encoding of the buffer: a binary PPM
// header "P6\n<W> <H>\n255\n" followed by the raw row-major RGB bytes.
func EncodePPM(b *Buffer) []byte {
	header := ppmHeader(b)
	out := make([]byte, 0, len(header)+len(b.data))
	out = append(out, header...)
	return append(out, b.data...)
}

// WritePPM writes the interchange encoding of the buffer to w.
func WritePPM(w io.Writer, b *Buffer) error {
	if _, err := io.WriteString(w, ppmHeader(b)); err != nil {
		return fmt.Errorf("moodgen: write PPM header: %w", err)
	}
	if _, err := w.Write(b.data); err != nil {
		return fmt.Errorf("moodgen: write PPM data: %w", err)
	}
	return nil
}

func ppmHeader(b *Buffer) string {
	return ppmMagic + "\n" + strconv.Itoa(b.width) + " " + strconv.Itoa(b.height) + "\n255\n"
}

// DecodePPM parses a binary PPM with a maximum channel value of 255.
// Header comments are accepted.
func DecodePPM(data []byte) (*Buffer, error) {
	src := bytes.NewReader(data)
	r := bufio.NewReader(src)

	var fields [4]string
	for i := range fields {
		tok, err := ppmToken(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPPMHeader, err)
		}
		fields[i] = tok
	}
	if fields[0] != ppmMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrPPMHeader, fields[0])
	}
	w, errW := strconv.Atoi(fields[1])
	h, errH := strconv.Atoi(fields[2])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %sx%s", ErrPPMHeader, fields[1], fields[2])
	}
	if fields[3] != "255" {
		return nil, fmt.Errorf("%w: max value %s", ErrPPMHeader, fields[3])
	}

	// The payload must be present before the buffer is allocated, so a
	// forged header cannot request more memory than the input holds.
	if rest := (r.Buffered() + src.Len()) / 3; h > rest || w > rest/h {
		return nil, fmt.Errorf("%w: %dx%d pixels, %d bytes of data", ErrPPMData, w, h, r.Buffered()+src.Len())
	}

	b := NewBuffer(w, h)
	if _, err := io.ReadFull(r, b.data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPPMData, err)
	}
	return b, nil
}

// ppmToken reads one whitespace-delimited header token and consumes the
// single whitespace byte that ends it.
func ppmToken(r *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		switch {
		case c == '#' && len(tok) == 0:
			if _, err := r.ReadString('\n'); err != nil {
				return "", err
			}
		case isPPMSpace(c):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}

func isPPMSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
