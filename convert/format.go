// Package convert turns the PPM interchange encoding produced by the
// pipeline into the final image files.
//
// Native encodes in-process and hands the bytes to a store.Sink. Command
// shells out to an external converter such as macOS sips.
package convert

import (
	"errors"
	"fmt"
	"strings"
)

// Format is an output image format.
type Format uint8

// Supported formats.
const (
	JPEG Format = iota
	PNG
	TIFF
	BMP
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("convert: unknown format")

// ParseFormat parses a format name or file extension, with or without the
// leading dot ("jpg", ".jpeg", "png", "tif", "bmp").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "jpg", "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// String returns the format name as understood by sips -s format.
func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// Extension returns the file extension without dot.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return "jpg"
	case TIFF:
		return "tif"
	default:
		return f.String()
	}
}
