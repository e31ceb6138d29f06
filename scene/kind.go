// Package scene composes catalog images from the moodgen primitives.
//
// Every generator has the Generator signature and is deterministic: the same
// palette, variant and random source state always yield byte-identical
// buffers of moodgen.Width × moodgen.Height pixels. Generators start from a
// buffer filled with the palette's base tone and only ever call the
// primitives of package moodgen.
package scene

import "github.com/gogpu/moodgen"

// Generator produces a finished image for one palette, variant and random
// source.
type Generator func(p moodgen.Palette, variant int, rng moodgen.Rand) *moodgen.Buffer

// Section names of the catalog that select a dedicated generator.
const (
	SectionArchitecture = "architecture"
	SectionMaterials    = "materials-texture"
	SectionLandscape    = "landscape-outdoor-living"
	SectionInterior     = "interior-mood-details"
)

// Kind identifies one of the four scene generators.
type Kind uint8

// Kind constants.
const (
	KindArchitecture Kind = iota
	KindLandscape
	KindInterior
	KindMaterial
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindArchitecture:
		return "architecture"
	case KindLandscape:
		return "landscape"
	case KindInterior:
		return "interior"
	case KindMaterial:
		return "material"
	default:
		return "unknown"
	}
}

// Generator returns the generator function of the kind. Unknown kinds get
// Material.
func (k Kind) Generator() Generator {
	switch k {
	case KindArchitecture:
		return Architecture
	case KindLandscape:
		return Landscape
	case KindInterior:
		return Interior
	default:
		return Material
	}
}

// KindForSection selects the generator kind for a section name.
// Any name other than the architecture, landscape and interior sections
// maps to KindMaterial.
func KindForSection(section string) Kind {
	switch section {
	case SectionArchitecture:
		return KindArchitecture
	case SectionLandscape:
		return KindLandscape
	case SectionInterior:
		return KindInterior
	default:
		return KindMaterial
	}
}

// frac returns int(n*f), truncating toward zero. All proportional layout
// goes through it so positions match across implementations bit for bit.
func frac(n int, f float64) int {
	return int(float64(n) * f)
}

// mod returns a modulo n in [0, n) for any sign of a.
func mod(a, n int) int {
	return ((a % n) + n) % n
}
