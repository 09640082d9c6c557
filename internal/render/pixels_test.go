package render

import (
	"image/color"
	"testing"

	"infohud/internal/world"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	cells := []uint8{0, 1, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, expected %d", i, buf[i], want[i])
		}
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d after empty palette", i, b)
		}
	}
}

func TestBiomePaletteCoversBiomes(t *testing.T) {
	if len(BiomePalette()) != len(world.Biomes) {
		t.Fatalf("palette has %d colors for %d biomes", len(BiomePalette()), len(world.Biomes))
	}
}
