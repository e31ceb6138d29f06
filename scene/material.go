package scene

import "github.com/gogpu/moodgen"

// Texture identifies one of the material swatch patterns. The numeric value
// of each texture equals the catalog variant that selects it.
type Texture uint8

// Texture constants, in variant order.
const (
	TextureTeakSlats Texture = iota + 1
	TextureLimestone
	TextureRattanWeave
	TexturePlaster
	TextureLinenWeave
	TextureTerrazzo
	TextureBronzeHardware
	TextureBasaltStone
	TextureCharredTimber
	TextureTravertine
	TextureClayTile
	TextureCanePanels
)

// String returns the slug of the texture.
func (t Texture) String() string {
	switch t {
	case TextureTeakSlats:
		return "teak-slats"
	case TextureLimestone:
		return "limestone"
	case TextureRattanWeave:
		return "rattan-weave"
	case TexturePlaster:
		return "plaster"
	case TextureLinenWeave:
		return "linen-weave"
	case TextureTerrazzo:
		return "terrazzo"
	case TextureBronzeHardware:
		return "bronze-hardware"
	case TextureBasaltStone:
		return "basalt-stone"
	case TextureCharredTimber:
		return "charred-timber"
	case TextureTravertine:
		return "travertine"
	case TextureClayTile:
		return "clay-tile"
	case TextureCanePanels:
		return "cane-panels"
	default:
		return "unknown"
	}
}

// TextureFor maps a material variant to its texture. Variants 1 to 11 select
// their own texture; every other value, including 12, falls back to cane
// panels.
func TextureFor(variant int) Texture {
	if variant >= int(TextureTeakSlats) && variant <= int(TextureClayTile) {
		return Texture(variant)
	}
	return TextureCanePanels
}

// painter draws a texture onto a buffer pre-filled with the base tone.
type painter func(buf *moodgen.Buffer, p moodgen.Palette, rng moodgen.Rand)

var painters = map[Texture]painter{
	TextureTeakSlats:      teakSlats,
	TextureLimestone:      limestone,
	TextureRattanWeave:    rattanWeave,
	TexturePlaster:        plaster,
	TextureLinenWeave:     linenWeave,
	TextureTerrazzo:       terrazzo,
	TextureBronzeHardware: bronzeHardware,
	TextureBasaltStone:    basaltStone,
	TextureCharredTimber:  charredTimber,
	TextureTravertine:     travertine,
	TextureClayTile:       clayTile,
	TextureCanePanels:     canePanels,
}

// Material draws the swatch selected by TextureFor(variant).
func Material(p moodgen.Palette, variant int, rng moodgen.Rand) *moodgen.Buffer {
	return MaterialTexture(p, TextureFor(variant), rng)
}

// MaterialTexture draws texture t. Values outside the Texture constants draw
// cane panels.
func MaterialTexture(p moodgen.Palette, t Texture, rng moodgen.Rand) *moodgen.Buffer {
	paint, ok := painters[t]
	if !ok {
		paint = canePanels
	}
	buf := moodgen.NewFilledBuffer(moodgen.Width, moodgen.Height, p.Base())
	paint(buf, p, rng)
	return buf
}

// columns fills a vertical stripe of width sw every step pixels.
func columns(buf *moodgen.Buffer, step, sw int, c moodgen.RGB) {
	for x := 0; x < buf.Width(); x += step {
		buf.DrawRect(x, 0, sw, buf.Height(), c)
	}
}

// rows fills a horizontal band of height sh every step pixels.
func rows(buf *moodgen.Buffer, step, sh int, c moodgen.RGB) {
	for y := 0; y < buf.Height(); y += step {
		buf.DrawRect(0, y, buf.Width(), sh, c)
	}
}

func flood(buf *moodgen.Buffer, c moodgen.RGB) {
	buf.DrawRect(0, 0, buf.Width(), buf.Height(), c)
}

func teakSlats(buf *moodgen.Buffer, p moodgen.Palette, rng moodgen.Rand) {
	columns(buf, 18, 10, p.Warm())
	buf.AddNoise(rng, 0.01, p.Secondary())
}

func limestone(buf *moodgen.Buffer, p moodgen.Palette, rng moodgen.Rand) {
	buf.VerticalGradient(p.Base(), p.Secondary())
	buf.AddNoise(rng, 0.02, p.Accent())
}

func rattanWeave(buf *moodgen.Buffer, p moodgen.Palette, _ moodgen.Rand) {
	columns(buf, 22, 6, p.Secondary())
	rows(buf, 22, 6, p.Accent())
}

func plaster(buf *moodgen.Buffer, p moodgen.Palette, rng moodgen.Rand) {
	buf.VerticalGradient(p.Base(), p.Warm())
	buf.AddNoise(rng, 0.03, p.Secondary())
}

func linenWeave(buf *moodgen.Buffer, p moodgen.Palette, _ moodgen.Rand) {
	columns(buf, 14, 2, p.Secondary())
	rows(buf, 14, 2, p.Secondary())
}

// terrazzoChips is the number of flecks scattered over the terrazzo noise.
const terrazzoChips = 900

func terrazzo(buf *moodgen.Buffer, p moodgen.Palette, rng moodgen.Rand) {
	buf.AddNoise(rng, 0.05, p.Accent())
	for range terrazzoChips {
		cx := rng.IntN(buf.Width())
		cy := rng.IntN(buf.Height())
		r := moodgen.RandRange(rng, 2, 6)
		buf.DrawCircle(cx, cy, r, p.Warm())
	}
}

func bronzeHardware(buf *moodgen.Buffer, p moodgen.Palette, rng moodgen.Rand) {
	flood(buf, p.Deep())
	columns(buf, 26, 4, p.Warm())
	buf.AddNoise(rng, 0.01, p.Secondary())
}

func basaltStone(buf *moodgen.Buffer, p moodgen.Palette, rng moodgen.Rand) {
	flood(buf, p.Deep())
	buf.AddNoise(rng, 0.04, p.Secondary())
}

func charredTimber(buf *moodgen.Buffer, p moodgen.Palette, _ moodgen.Rand) {
	flood(buf, p.Deep())
	columns(buf, 16, 8, p.Accent())
}

// Travertine bands are 12px tall every 24px; the band tone alternates
// between the base tone and the midpoint towards the secondary tone.
func travertine(buf *moodgen.Buffer, p moodgen.Palette, _ moodgen.Rand) {
	for y := 0; y < buf.Height(); y += 24 {
		tone := moodgen.Lerp(p.Base(), p.Secondary(), float64(y%48)/48)
		buf.DrawRect(0, y, buf.Width(), 12, tone)
	}
}

func clayTile(buf *moodgen.Buffer, p moodgen.Palette, rng moodgen.Rand) {
	for y := 0; y < buf.Height(); y += 36 {
		for x := 0; x < buf.Width(); x += 36 {
			buf.DrawRect(x, y, 30, 30, p.Warm())
		}
	}
	buf.AddNoise(rng, 0.01, p.Secondary())
}

// Cane panel cells are 12px squares on a 20px grid; odd rows shift right by
// 6px.
func canePanels(buf *moodgen.Buffer, p moodgen.Palette, rng moodgen.Rand) {
	for y := 0; y < buf.Height(); y += 20 {
		shift := (y / 20 % 2) * 6
		for x := 0; x < buf.Width(); x += 20 {
			buf.DrawRect(x+shift, y, 12, 12, p.Accent())
		}
	}
	buf.AddNoise(rng, 0.008, p.Secondary())
}
