package catalog

import (
	"maps"
	"slices"

	"github.com/gogpu/moodgen/scene"
)

// defaultStyles is the compiled-in style table, in catalog order.
var defaultStyles = []StyleSpec{
	{Slug: "tropical-modern", Colors: []string{"#f6efe6", "#c9a97c", "#3a9d86", "#2f2b23", "#c96244"}},
	{Slug: "contemporary-thai", Colors: []string{"#f1e8dd", "#6b4b2a", "#2a2a2a", "#4b6b57", "#bfa57a"}},
	{Slug: "resort-minimal", Colors: []string{"#f4f1eb", "#d9d1c3", "#b4a996", "#7f7569", "#4e4a45"}},
	{Slug: "rustic-minimal", Colors: []string{"#f3efe8", "#d2c6b4", "#8b7f73", "#5f544c", "#a67c52"}},
	{Slug: "mid-century-tropical", Colors: []string{"#f2e8d8", "#d6b38e", "#8c5f3c", "#5a6b5f", "#c56b4e"}},
	{Slug: "eco-modern", Colors: []string{"#eef2e8", "#c7d0bf", "#8b9a86", "#4b5a4c", "#a89b7a"}},
}

// defaultSections is the compiled-in section table, in catalog order.
var defaultSections = []Section{
	{Name: scene.SectionArchitecture, Count: 8},
	{Name: scene.SectionMaterials, Count: 12},
	{Name: scene.SectionLandscape, Count: 8},
	{Name: scene.SectionInterior, Count: 8},
}

// knownSections maps every section name Load accepts to its scene kind.
var knownSections = map[string]scene.Kind{
	scene.SectionArchitecture: scene.KindArchitecture,
	scene.SectionMaterials:    scene.KindMaterial,
	scene.SectionLandscape:    scene.KindLandscape,
	scene.SectionInterior:     scene.KindInterior,
}

// DefaultStyles returns a copy of the compiled-in style table.
func DefaultStyles() []StyleSpec {
	out := make([]StyleSpec, len(defaultStyles))
	for i, s := range defaultStyles {
		out[i] = StyleSpec{Slug: s.Slug, Colors: slices.Clone(s.Colors)}
	}
	return out
}

// DefaultSections returns a copy of the compiled-in section table.
func DefaultSections() []Section {
	return slices.Clone(defaultSections)
}

// KnownSection reports the scene kind of a section name Load accepts.
func KnownSection(name string) (scene.Kind, bool) {
	k, ok := knownSections[name]
	return k, ok
}

// KnownSectionNames returns the accepted section names in sorted order.
func KnownSectionNames() []string {
	return slices.Sorted(maps.Keys(knownSections))
}
