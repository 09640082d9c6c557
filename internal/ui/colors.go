package ui

import "image/color"

// shadowColor darkens c to a quarter of its brightness, keeping alpha.
func shadowColor(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 4, G: c.G / 4, B: c.B / 4, A: c.A}
}

// Panel colors for host screens.
var (
	screenDim   = color.RGBA{A: 0x80}
	chatBox     = color.RGBA{A: 0x60}
	debugText   = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	promptColor = color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
)
