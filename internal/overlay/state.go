package overlay

// Flag identifies one toggleable HUD line.
type Flag int

const (
	// Coordinates shows the floored player position.
	Coordinates Flag = iota
	// Facing shows the cardinal direction the player looks at.
	Facing
	// Biome shows the biome at the player's block position.
	Biome
	// DayCount shows the number of elapsed in-game days.
	DayCount
	// FPS shows the measured frame rate on the right panel.
	FPS

	flagCount
)

// Flags lists every flag in dispatch order.
var Flags = [flagCount]Flag{Coordinates, Facing, Biome, DayCount, FPS}

func (f Flag) String() string {
	switch f {
	case Coordinates:
		return "coordinates"
	case Facing:
		return "facing"
	case Biome:
		return "biome"
	case DayCount:
		return "day"
	case FPS:
		return "fps"
	default:
		return "unknown"
	}
}

func (f Flag) valid() bool { return f >= 0 && f < flagCount }

// State holds the visibility of every HUD line.
type State struct {
	enabled [flagCount]bool
}

// DefaultState returns the startup visibility: everything but the frame
// rate is shown.
func DefaultState() State {
	var s State
	s.enabled[Coordinates] = true
	s.enabled[Facing] = true
	s.enabled[Biome] = true
	s.enabled[DayCount] = true
	return s
}

// Toggle flips the named flag.
func (s *State) Toggle(f Flag) {
	if !f.valid() {
		return
	}
	s.enabled[f] = !s.enabled[f]
}

// Enabled reports whether the line for f is shown.
func (s State) Enabled(f Flag) bool {
	if !f.valid() {
		return false
	}
	return s.enabled[f]
}

// Set forces a flag to the provided value.
func (s *State) Set(f Flag, on bool) {
	if !f.valid() {
		return
	}
	s.enabled[f] = on
}
