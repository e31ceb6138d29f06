package scene

import (
	"testing"

	"github.com/gogpu/moodgen"
)

func TestTextureFor(t *testing.T) {
	tests := []struct {
		variant int
		want    Texture
	}{
		{1, TextureTeakSlats},
		{2, TextureLimestone},
		{3, TextureRattanWeave},
		{4, TexturePlaster},
		{5, TextureLinenWeave},
		{6, TextureTerrazzo},
		{7, TextureBronzeHardware},
		{8, TextureBasaltStone},
		{9, TextureCharredTimber},
		{10, TextureTravertine},
		{11, TextureClayTile},
		{12, TextureCanePanels},
		{13, TextureCanePanels},
		{0, TextureCanePanels},
		{-3, TextureCanePanels},
		{1000, TextureCanePanels},
	}
	for _, tt := range tests {
		if got := TextureFor(tt.variant); got != tt.want {
			t.Errorf("TextureFor(%d) = %v, want %v", tt.variant, got, tt.want)
		}
	}
}

func TestTexture_String(t *testing.T) {
	seen := map[string]bool{}
	for tex := TextureTeakSlats; tex <= TextureCanePanels; tex++ {
		s := tex.String()
		if s == "unknown" || seen[s] {
			t.Errorf("Texture(%d).String() = %q", tex, s)
		}
		seen[s] = true
	}
	if got := Texture(0).String(); got != "unknown" {
		t.Errorf("Texture(0).String() = %q", got)
	}
}

// TestMaterial_OutOfRangeFallsBackToCane checks that variants beyond the
// explicit textures draw cane panels instead of failing.
func TestMaterial_OutOfRangeFallsBackToCane(t *testing.T) {
	want := Material(tropical, 12, newRand(5))
	for _, variant := range []int{13, 0, -1, 99} {
		got := Material(tropical, variant, newRand(5))
		if !got.Equal(want) {
			t.Errorf("Material(variant=%d) differs from cane panels", variant)
		}
	}
	if got := MaterialTexture(tropical, Texture(77), newRand(5)); !got.Equal(want) {
		t.Error("MaterialTexture(77) differs from cane panels")
	}
}

func TestMaterial_VariantsDistinct(t *testing.T) {
	bufs := make([]*moodgen.Buffer, 0, 12)
	for variant := 1; variant <= 12; variant++ {
		bufs = append(bufs, Material(tropical, variant, newRand(8)))
	}
	for i := range bufs {
		for j := i + 1; j < len(bufs); j++ {
			if bufs[i].Equal(bufs[j]) {
				t.Errorf("variants %d and %d are identical", i+1, j+1)
			}
		}
	}
}

func TestMaterial_Patterns(t *testing.T) {
	p := tropical
	half := moodgen.Lerp(p.Base(), p.Secondary(), 0.5)

	tests := []struct {
		name    string
		texture Texture
		x, y    int
		want    moodgen.RGB
	}{
		{"teak slat", TextureTeakSlats, 5, 200, p.Warm()},
		{"teak gap", TextureTeakSlats, 12, 200, p.Base()},
		{"teak next slat", TextureTeakSlats, 20, 200, p.Warm()},
		{"rattan column", TextureRattanWeave, 2, 10, p.Secondary()},
		{"rattan row", TextureRattanWeave, 10, 2, p.Accent()},
		{"rattan crossing", TextureRattanWeave, 2, 2, p.Accent()},
		{"rattan gap", TextureRattanWeave, 10, 10, p.Base()},
		{"linen thread", TextureLinenWeave, 15, 100, p.Secondary()},
		{"linen gap", TextureLinenWeave, 7, 7, p.Base()},
		{"bronze base", TextureBronzeHardware, 10, 10, p.Deep()},
		{"bronze stripe", TextureBronzeHardware, 27, 10, p.Warm()},
		{"basalt", TextureBasaltStone, 300, 300, p.Deep()},
		{"charred stripe", TextureCharredTimber, 3, 10, p.Accent()},
		{"charred gap", TextureCharredTimber, 10, 10, p.Deep()},
		{"travertine first band", TextureTravertine, 100, 0, p.Base()},
		{"travertine second band", TextureTravertine, 100, 24, half},
		{"travertine third band", TextureTravertine, 100, 59, p.Base()},
		{"travertine gap", TextureTravertine, 100, 14, p.Base()},
		{"clay tile", TextureClayTile, 40, 40, p.Warm()},
		{"clay grout", TextureClayTile, 32, 10, p.Base()},
		{"cane even row", TextureCanePanels, 0, 10, p.Accent()},
		{"cane odd row gap", TextureCanePanels, 0, 25, p.Base()},
		{"cane odd row cell", TextureCanePanels, 8, 25, p.Accent()},
		{"limestone top", TextureLimestone, 300, 0, p.Base()},
		{"plaster bottom", TexturePlaster, 300, 399, p.Warm()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// All noise lands on (599, 399) with this source.
			buf := MaterialTexture(p, tt.texture, fixedRand(1<<20))
			if got := buf.Pixel(tt.x, tt.y); got != tt.want {
				t.Errorf("Pixel(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMaterial_NoiseUsesSecondary(t *testing.T) {
	buf := MaterialTexture(tropical, TextureBasaltStone, fixedRand(1<<20))
	if got := buf.Pixel(599, 399); got != tropical.Secondary() {
		t.Errorf("noise pixel = %v, want secondary", got)
	}
}
