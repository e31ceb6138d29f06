package pipeline

import (
	"errors"
	"fmt"

	"github.com/gogpu/moodgen/catalog"
)

var (
	// ErrAborted marks entries that never started because an earlier entry
	// failed under AbortOnError.
	ErrAborted = errors.New("pipeline: run aborted")

	// ErrUnknownStyle is returned by Generate for entries whose style is not
	// in the catalog.
	ErrUnknownStyle = catalog.ErrUnknownStyle
)

// ConversionError reports a failed hand-off of one entry to the Converter.
// It affects only that entry.
type ConversionError struct {
	Entry    catalog.Entry
	Dst      string
	Attempts int
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("pipeline: convert %s to %s (%d attempts): %v", e.Entry, e.Dst, e.Attempts, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
