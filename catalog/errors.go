package catalog

import (
	"errors"
	"fmt"
)

// Configuration errors. Load wraps them in a *ConfigError.
var (
	// ErrEmptyCatalog is returned when the style or section table is empty.
	ErrEmptyCatalog = errors.New("catalog: empty table")

	// ErrBadSlug is returned for style slugs that are not lowercase a-z, 0-9 and '-'.
	ErrBadSlug = errors.New("catalog: malformed slug")

	// ErrDuplicate is returned when a style or section appears twice.
	ErrDuplicate = errors.New("catalog: duplicate name")

	// ErrPaletteSize is returned when a style does not have exactly five colors.
	ErrPaletteSize = errors.New("catalog: palette must have 5 colors")

	// ErrBadColor is returned for palette colors that are not "#rrggbb" or "#rgb".
	ErrBadColor = errors.New("catalog: malformed palette color")

	// ErrUnknownSection is returned for section names without a generator mapping.
	ErrUnknownSection = errors.New("catalog: unknown section")

	// ErrBadCount is returned for section counts outside [1, MaxCount].
	ErrBadCount = errors.New("catalog: section count out of range")

	// ErrUnknownStyle is returned by Check for entries whose style is not loaded.
	ErrUnknownStyle = errors.New("catalog: unknown style")

	// ErrBadIndex is returned by Check for indices outside [1, Count].
	ErrBadIndex = errors.New("catalog: index out of range")
)

// ConfigError reports an invalid entry of the style or section table, or an
// entry that does not belong to a loaded catalog. Load returns it before any
// image is generated; Check returns it for hand-built entries.
type ConfigError struct {
	Field string // "style", "palette", "section" or "index"
	Value string // offending slug, section name or entry ID
	Err   error  // one of the Err* sentinels, possibly wrapping a cause
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("catalog: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
