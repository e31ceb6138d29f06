package catalog

import (
	"fmt"
	"math/rand/v2"
	"path"
)

// Entry identifies one image of the catalog.
type Entry struct {
	Style   string // style slug
	Section string // section name
	Index   int    // 1-based variant index within the section
}

// ID returns "style/section/NN".
func (e Entry) ID() string {
	return fmt.Sprintf("%s/%s/%02d", e.Style, e.Section, e.Index)
}

// String implements fmt.Stringer.
func (e Entry) String() string {
	return e.ID()
}

// FileName returns the two-digit file name of the entry, e.g. "03.jpg".
// An empty ext yields a name without extension.
func (e Entry) FileName(ext string) string {
	if ext == "" {
		return fmt.Sprintf("%02d", e.Index)
	}
	return fmt.Sprintf("%02d.%s", e.Index, ext)
}

// Key returns the slash-separated location of the entry relative to the
// output root: "style/section/NN.ext".
func (e Entry) Key(ext string) string {
	return path.Join(e.Style, e.Section, e.FileName(ext))
}

// Path returns root + "/" + Key(ext). Paths are slash-separated; local
// sinks convert them with filepath.FromSlash.
func (e Entry) Path(root, ext string) string {
	return path.Join(root, e.Key(ext))
}

// Seed returns the entry's seed, see Seed.
func (e Entry) Seed() uint64 {
	return Seed(e.Style, e.Section, e.Index)
}

// Rand returns a fresh random source initialised from the entry's seed.
func (e Entry) Rand() *rand.Rand {
	return NewRand(e.Seed())
}
