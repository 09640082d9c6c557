package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf)
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// BiomePalette returns the tile colors for world.Biomes, in the same order.
func BiomePalette() []color.RGBA {
	return []color.RGBA{
		{R: 120, G: 178, B: 80, A: 255},  // plains
		{R: 60, G: 120, B: 50, A: 255},   // forest
		{R: 219, G: 207, B: 142, A: 255}, // desert
		{R: 225, G: 235, B: 245, A: 255}, // frozen peaks
		{R: 40, G: 80, B: 35, A: 255},    // dark forest
		{R: 60, G: 150, B: 200, A: 255},  // warm ocean
		{R: 230, G: 170, B: 200, A: 255}, // cherry grove
		{R: 90, G: 60, B: 55, A: 255},    // volcanic peaks
	}
}
