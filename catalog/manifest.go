package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/moodgen"
	"github.com/gogpu/moodgen/scene"
)

// ManifestItem describes one generated image for consumers of the output
// tree, such as the moodboard front end.
type ManifestItem struct {
	ID      string `json:"id"`
	Style   string `json:"style"`
	Section string `json:"section"`
	Index   int    `json:"index"`
	Src     string `json:"src"`
	Title   string `json:"title"`
	Alt     string `json:"alt"`
	Scene   string `json:"scene"`
	Texture string `json:"texture,omitempty"`
	Seed    string `json:"seed"`
}

// Manifest lists every entry of a catalog with its location and captions.
type Manifest struct {
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Format string         `json:"format"`
	Items  []ManifestItem `json:"items"`
}

// Manifest builds the manifest for images stored under root with the given
// file extension.
func (c *Catalog) Manifest(root, ext string) *Manifest {
	caser := cases.Title(language.English)
	m := &Manifest{
		Width:  moodgen.Width,
		Height: moodgen.Height,
		Format: ext,
		Items:  make([]ManifestItem, 0, c.Len()),
	}
	for _, e := range c.Entries() {
		m.Items = append(m.Items, newManifestItem(caser, e, root, ext))
	}
	return m
}

func newManifestItem(caser cases.Caser, e Entry, root, ext string) ManifestItem {
	kind := scene.KindForSection(e.Section)
	style := humanize(caser, e.Style)
	section := humanize(caser, e.Section)

	item := ManifestItem{
		ID:      e.ID(),
		Style:   e.Style,
		Section: e.Section,
		Index:   e.Index,
		Src:     e.Path(root, ext),
		Title:   fmt.Sprintf("%s · %s %02d", style, section, e.Index),
		Scene:   kind.String(),
		Seed:    fmt.Sprintf("%016x", e.Seed()),
	}
	if kind == scene.KindMaterial {
		tex := scene.TextureFor(e.Index)
		item.Texture = tex.String()
		item.Alt = fmt.Sprintf("%s material swatch for the %s style", humanize(caser, tex.String()), style)
	} else {
		item.Alt = fmt.Sprintf("Placeholder %s reference for the %s style", kind, style)
	}
	return item
}

// humanize turns a slug such as "mid-century-tropical" into
// "Mid Century Tropical".
func humanize(caser cases.Caser, slug string) string {
	return caser.String(strings.ReplaceAll(slug, "-", " "))
}

// Encode writes the manifest as indented JSON.
func (m *Manifest) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("catalog: encode manifest: %w", err)
	}
	return nil
}
