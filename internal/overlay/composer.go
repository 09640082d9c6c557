package overlay

// Player is the read-only view of the active player for one frame.
type Player struct {
	X, Y, Z float64
	Yaw     float64
}

// World exposes the world data the overlay reads.
type World interface {
	TimeOfDay() int64
	BiomeAt(pos BlockPos) string
}

// Screen is an open host screen.
type Screen interface {
	IsChat() bool
}

// Frame is the host state sampled for one rendered frame. Nil Player, World
// or Screen mean the host has none.
type Frame struct {
	Player       *Player
	World        World
	Screen       Screen
	DebugOverlay bool

	FPS               int
	BackgroundOpacity float64

	Width, Height int
}

// Suppressed reports whether the overlay must stay hidden this frame.
func (f Frame) Suppressed() bool {
	if f.Player == nil || f.World == nil {
		return true
	}
	if f.DebugOverlay {
		return true
	}
	if f.Screen != nil && !f.Screen.IsChat() {
		return true
	}
	return false
}

// Composer owns the overlay state and turns host frames into draw calls.
type Composer struct {
	state     State
	bindings  *Bindings
	translate Translate
}

// NewComposer builds a composer with default visibility. bindings may be nil
// when no keyboard is attached.
func NewComposer(bindings *Bindings, tr Translate) *Composer {
	if tr == nil {
		tr = func(key string, _ ...any) string { return key }
	}
	return &Composer{state: DefaultState(), bindings: bindings, translate: tr}
}

// State returns the current visibility flags.
func (c *Composer) State() State { return c.state }

// SetState replaces the visibility flags.
func (c *Composer) SetState(s State) { c.state = s }

// Compose decides what the overlay shows this frame. The returned plan is
// empty when the frame is suppressed.
func (c *Composer) Compose(frame Frame, m Measurer) Plan {
	if frame.Suppressed() {
		return Plan{}
	}
	c.dispatchToggles()
	lines := deriveLines(c.state, frame.Player, frame.World, frame.FPS, c.translate)
	return layout(lines, frame, m)
}

// Render composes the frame and draws it onto target.
func (c *Composer) Render(frame Frame, target Target) {
	plan := c.Compose(frame, target)
	plan.Draw(target)
}

// Hook returns Render as a function value for the host's render hook list.
func (c *Composer) Hook(sample func() Frame) func(Target) {
	return func(t Target) {
		c.Render(sample(), t)
	}
}

func (c *Composer) dispatchToggles() {
	for _, f := range Flags {
		if c.bindings.WasPressed(f) {
			c.state.Toggle(f)
		}
	}
}
