//go:build ebiten

package ui

import (
	"image/color"

	"infohud/internal/overlay"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ overlay.Target = (*Canvas)(nil)

// Canvas draws overlay text and fills onto an ebiten image.
type Canvas struct {
	dst    *ebiten.Image
	face   font.Face
	ascent int
	height int
}

// NewCanvas returns a canvas using face, or basicfont.Face7x13 when face is
// nil.
func NewCanvas(face font.Face) *Canvas {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	return &Canvas{face: face, ascent: m.Ascent.Ceil(), height: m.Height.Ceil()}
}

// Bind points the canvas at the image drawn this frame.
func (c *Canvas) Bind(dst *ebiten.Image) { c.dst = dst }

// TextWidth returns the advance width of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.face, s).Ceil()
}

// LineHeight returns the font line height in pixels.
func (c *Canvas) LineHeight() int { return c.height }

// Fill paints the rectangle [x0,x1) x [y0,y1).
func (c *Canvas) Fill(x0, y0, x1, y1 int, col color.RGBA) {
	if c.dst == nil || x1 <= x0 || y1 <= y0 || col.A == 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), col, false)
}

// DrawText draws s with its top-left corner at (x, y). The shadow is the
// same text at a quarter brightness, one pixel down and right.
func (c *Canvas) DrawText(s string, x, y int, col color.RGBA, shadow bool) {
	if c.dst == nil || s == "" {
		return
	}
	if shadow {
		text.Draw(c.dst, s, c.face, x+overlay.ShadowOffset, y+c.ascent+overlay.ShadowOffset, shadowColor(col))
	}
	text.Draw(c.dst, s, c.face, x, y+c.ascent, col)
}
