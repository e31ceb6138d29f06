// Package catalog defines the fixed set of images to generate: the style
// table (slug → palette), the section table (name → image count), the
// entries of their Cartesian product, per-entry seeds and the output layout.
//
// A Catalog is validated once by Load and is immutable afterwards, so it can
// be shared freely between goroutines.
package catalog

import (
	"fmt"

	"github.com/gogpu/moodgen"
)

// MaxCount is the largest section count; file names carry two digits.
const MaxCount = 99

// StyleSpec is an unvalidated style table row.
type StyleSpec struct {
	Slug   string   `json:"slug"`
	Colors []string `json:"colors"` // five hex colors: base, secondary, accent, deep, warm
}

// Style is a validated style with its parsed palette.
type Style struct {
	Slug    string
	Palette moodgen.Palette
}

// Section is a row of the section table.
type Section struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Catalog is an immutable, validated pair of style and section tables.
type Catalog struct {
	styles   []Style
	sections []Section
	index    map[string]int
}

// Load validates the tables and returns a catalog preserving their order.
// Every problem is reported as a *ConfigError.
func Load(styles []StyleSpec, sections []Section) (*Catalog, error) {
	if len(styles) == 0 {
		return nil, &ConfigError{Field: "style", Value: "", Err: ErrEmptyCatalog}
	}
	if len(sections) == 0 {
		return nil, &ConfigError{Field: "section", Value: "", Err: ErrEmptyCatalog}
	}

	c := &Catalog{
		styles:   make([]Style, 0, len(styles)),
		sections: make([]Section, 0, len(sections)),
		index:    make(map[string]int, len(styles)),
	}

	for _, spec := range styles {
		if !validSlug(spec.Slug) {
			return nil, &ConfigError{Field: "style", Value: spec.Slug, Err: ErrBadSlug}
		}
		if _, dup := c.index[spec.Slug]; dup {
			return nil, &ConfigError{Field: "style", Value: spec.Slug, Err: ErrDuplicate}
		}
		if len(spec.Colors) != len(moodgen.Palette{}) {
			return nil, &ConfigError{
				Field: "palette",
				Value: spec.Slug,
				Err:   fmt.Errorf("%w: got %d", ErrPaletteSize, len(spec.Colors)),
			}
		}
		p, err := moodgen.ParsePalette(spec.Colors)
		if err != nil {
			return nil, &ConfigError{
				Field: "palette",
				Value: spec.Slug,
				Err:   fmt.Errorf("%w: %w", ErrBadColor, err),
			}
		}
		c.index[spec.Slug] = len(c.styles)
		c.styles = append(c.styles, Style{Slug: spec.Slug, Palette: p})
	}

	seen := make(map[string]bool, len(sections))
	for _, s := range sections {
		if _, ok := KnownSection(s.Name); !ok {
			return nil, &ConfigError{Field: "section", Value: s.Name, Err: ErrUnknownSection}
		}
		if seen[s.Name] {
			return nil, &ConfigError{Field: "section", Value: s.Name, Err: ErrDuplicate}
		}
		if s.Count < 1 || s.Count > MaxCount {
			return nil, &ConfigError{
				Field: "section",
				Value: s.Name,
				Err:   fmt.Errorf("%w: %d", ErrBadCount, s.Count),
			}
		}
		seen[s.Name] = true
		c.sections = append(c.sections, s)
	}

	return c, nil
}

// MustLoad is like Load but panics on error. It is meant for compiled-in
// tables.
func MustLoad(styles []StyleSpec, sections []Section) *Catalog {
	c, err := Load(styles, sections)
	if err != nil {
		panic(err)
	}
	return c
}

// Default loads the compiled-in style and section tables.
func Default() *Catalog {
	return MustLoad(defaultStyles, defaultSections)
}

// Styles returns a copy of the style table.
func (c *Catalog) Styles() []Style {
	return append([]Style(nil), c.styles...)
}

// Sections returns a copy of the section table.
func (c *Catalog) Sections() []Section {
	return append([]Section(nil), c.sections...)
}

// Palette returns the palette of a style.
func (c *Catalog) Palette(slug string) (moodgen.Palette, bool) {
	i, ok := c.index[slug]
	if !ok {
		return moodgen.Palette{}, false
	}
	return c.styles[i].Palette, true
}

// Section returns the loaded section with the given name.
func (c *Catalog) Section(name string) (Section, bool) {
	for _, s := range c.sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Check reports whether e is an entry of the catalog: its style and section
// are loaded and its index lies in [1, Count] of the section. Failures are
// *ConfigError values wrapping ErrUnknownStyle, ErrUnknownSection or
// ErrBadIndex.
func (c *Catalog) Check(e Entry) error {
	if _, ok := c.index[e.Style]; !ok {
		return &ConfigError{Field: "style", Value: e.Style, Err: ErrUnknownStyle}
	}
	sec, ok := c.Section(e.Section)
	if !ok {
		return &ConfigError{Field: "section", Value: e.Section, Err: ErrUnknownSection}
	}
	if e.Index < 1 || e.Index > sec.Count {
		return &ConfigError{
			Field: "index",
			Value: e.ID(),
			Err:   fmt.Errorf("%w: %d not in [1, %d]", ErrBadIndex, e.Index, sec.Count),
		}
	}
	return nil
}

// PerStyle returns the number of entries of each style.
func (c *Catalog) PerStyle() int {
	n := 0
	for _, s := range c.sections {
		n += s.Count
	}
	return n
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	return len(c.styles) * c.PerStyle()
}

// Entries enumerates the catalog in its stable order: styles in table order,
// then sections in table order, then indices ascending from 1.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, c.Len())
	for _, st := range c.styles {
		out = c.appendStyle(out, st.Slug)
	}
	return out
}

// StyleEntries enumerates the entries of one style, or nil for an unknown
// slug.
func (c *Catalog) StyleEntries(slug string) []Entry {
	if _, ok := c.index[slug]; !ok {
		return nil
	}
	return c.appendStyle(make([]Entry, 0, c.PerStyle()), slug)
}

func (c *Catalog) appendStyle(out []Entry, slug string) []Entry {
	for _, sec := range c.sections {
		for i := 1; i <= sec.Count; i++ {
			out = append(out, Entry{Style: slug, Section: sec.Name, Index: i})
		}
	}
	return out
}

func validSlug(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-') {
			return false
		}
	}
	return true
}
