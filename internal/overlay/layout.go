package overlay

import (
	"image"
	"image/color"
	"math"
)

// Layout constants in screen pixels.
const (
	TextPadding  = 5
	Padding      = 3
	ShadowOffset = 1
)

// TextColor is the foreground of every overlay line.
var TextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Measurer reports font metrics of the active font.
type Measurer interface {
	TextWidth(s string) int
	LineHeight() int
}

// Target is the host surface the overlay draws on.
type Target interface {
	Measurer
	// Fill paints the rectangle [x0,x1) x [y0,y1).
	Fill(x0, y0, x1, y1 int, c color.RGBA)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y int, c color.RGBA, shadow bool)
}

// Side is the screen edge a panel is anchored to.
type Side int

const (
	Start Side = iota
	End
)

func (s Side) String() string {
	if s == End {
		return "end"
	}
	return "start"
}

// Panel is one laid out group of lines.
type Panel struct {
	Side  Side
	Lines []string

	// X, Y is the top-left corner of the first line's box.
	X, Y          int
	Width, Height int
	LineHeight    int

	Background      image.Rectangle
	BackgroundColor color.RGBA
}

// Plan holds the panels to draw for one frame. A suppressed frame has no
// panels.
type Plan struct {
	Panels []Panel
}

// Empty reports whether nothing is drawn.
func (p Plan) Empty() bool { return len(p.Panels) == 0 }

// Panel returns the panel anchored to side.
func (p Plan) Panel(side Side) (Panel, bool) {
	for _, panel := range p.Panels {
		if panel.Side == side {
			return panel, true
		}
	}
	return Panel{}, false
}

// Draw emits the background and text of every panel.
func (p Plan) Draw(t Target) {
	for _, panel := range p.Panels {
		bg := panel.Background
		t.Fill(bg.Min.X, bg.Min.Y, bg.Max.X, bg.Max.Y, panel.BackgroundColor)
		y := panel.Y
		for _, line := range panel.Lines {
			t.DrawText(line, panel.X+TextPadding, y, TextColor, true)
			y += panel.LineHeight
		}
	}
}

// BackgroundAlpha converts the host's text background opacity (0..1) into
// the alpha of the panel backing.
func BackgroundAlpha(opacity float64) uint8 {
	if opacity < 0 || math.IsNaN(opacity) {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(math.Floor(opacity * 0.9 * 255))
}

func layout(lines Lines, frame Frame, m Measurer) Plan {
	var plan Plan
	if p, ok := layoutPanel(lines.Left, Start, frame, m); ok {
		plan.Panels = append(plan.Panels, p)
	}
	if p, ok := layoutPanel(lines.Right, End, frame, m); ok {
		plan.Panels = append(plan.Panels, p)
	}
	return plan
}

func layoutPanel(lines []string, side Side, frame Frame, m Measurer) (Panel, bool) {
	if len(lines) == 0 {
		return Panel{}, false
	}
	lh := m.LineHeight()
	w := 0
	for _, line := range lines {
		if lw := m.TextWidth(line); lw > w {
			w = lw
		}
	}
	h := len(lines)*lh + Padding*2

	x := 0
	if side == End {
		x = frame.Width - w - TextPadding*2
	}
	y := frame.Height / 10

	return Panel{
		Side:       side,
		Lines:      lines,
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
		LineHeight: lh,
		Background: image.Rect(x, y-Padding, x+w+TextPadding*2, y+h-Padding-ShadowOffset),
		BackgroundColor: color.RGBA{
			A: BackgroundAlpha(frame.BackgroundOpacity),
		},
	}, true
}
