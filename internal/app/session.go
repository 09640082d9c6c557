package app

import (
	"errors"
	"fmt"
	"math"

	"infohud/internal/overlay"
	"infohud/internal/world"
)

// ScreenKind identifies an open host screen.
type ScreenKind int

const (
	ScreenNone ScreenKind = iota
	ScreenChat
	ScreenPause
)

type openScreen struct{ kind ScreenKind }

func (s openScreen) IsChat() bool { return s.kind == ScreenChat }

// Session is the host state shared by input handling and drawing.
type Session struct {
	World        *world.World
	DebugOverlay bool
	Opacity      float64

	screen    ScreenKind
	chatInput []rune
}

// Screen returns the open screen, or ScreenNone.
func (s *Session) Screen() ScreenKind { return s.screen }

// Open shows a screen, replacing any open one.
func (s *Session) Open(kind ScreenKind) {
	s.screen = kind
	if kind == ScreenChat {
		s.chatInput = s.chatInput[:0]
	}
}

// Close hides the open screen.
func (s *Session) Close() { s.screen = ScreenNone }

// HasFocus reports whether a screen receives keyboard input instead of the
// game.
func (s *Session) HasFocus() bool { return s.screen != ScreenNone }

// Paused reports whether world ticks are halted.
func (s *Session) Paused() bool { return s.screen == ScreenPause }

// TypeChat appends typed runes to the chat line.
func (s *Session) TypeChat(rs []rune) {
	if s.screen != ScreenChat {
		return
	}
	s.chatInput = append(s.chatInput, rs...)
}

// Backspace removes the last typed rune.
func (s *Session) Backspace() {
	if n := len(s.chatInput); n > 0 {
		s.chatInput = s.chatInput[:n-1]
	}
}

// ChatInput returns the chat line being typed.
func (s *Session) ChatInput() string { return string(s.chatInput) }

// SubmitChat closes the chat screen and returns the typed line.
func (s *Session) SubmitChat() string {
	msg := string(s.chatInput)
	s.chatInput = s.chatInput[:0]
	s.Close()
	return msg
}

// Frame samples the host state for one overlay frame.
func (s *Session) Frame(fps float64, width, height int) overlay.Frame {
	f := overlay.Frame{
		DebugOverlay:      s.DebugOverlay,
		FPS:               int(math.Round(fps)),
		BackgroundOpacity: s.Opacity,
		Width:             width,
		Height:            height,
	}
	if s.screen != ScreenNone {
		f.Screen = openScreen{kind: s.screen}
	}
	if s.World != nil {
		p := s.World.Player()
		f.Player = &p
		f.World = s.World
	}
	return f
}

// DebugLines is the content of the host's own debug overlay.
func (s *Session) DebugLines(fps float64) []string {
	lines := []string{fmt.Sprintf("infohud (%.0f fps)", fps)}
	if s.World == nil {
		return append(lines, "no world")
	}
	p := s.World.Player()
	pos := overlay.BlockPosOf(p.X, p.Y, p.Z)
	return append(lines,
		fmt.Sprintf("XYZ: %.3f / %.5f / %.3f", p.X, p.Y, p.Z),
		fmt.Sprintf("Block: %d %d %d", pos.X, pos.Y, pos.Z),
		fmt.Sprintf("Facing: %s (%.1f)", overlay.FacingOf(p.Yaw), overlay.NormalizeYaw(p.Yaw)),
		fmt.Sprintf("Biome: %s", s.World.BiomeAt(pos)),
		fmt.Sprintf("Time: %d (day %d)", s.World.TimeOfDay(), overlay.DaysElapsed(s.World.TimeOfDay())),
		fmt.Sprintf("Seed: %d", s.World.Seed()),
	)
}

// ErrDuplicateHook is returned when a render hook name is registered twice.
var ErrDuplicateHook = errors.New("app: duplicate render hook")

// HookList runs named render hooks in registration order.
type HookList struct {
	names []string
	hooks []func(overlay.Target)
}

// Add registers fn under name.
func (l *HookList) Add(name string, fn func(overlay.Target)) error {
	if fn == nil {
		return fmt.Errorf("hook %q: nil function", name)
	}
	for _, n := range l.names {
		if n == name {
			return fmt.Errorf("hook %q: %w", name, ErrDuplicateHook)
		}
	}
	l.names = append(l.names, name)
	l.hooks = append(l.hooks, fn)
	return nil
}

// Names lists the registered hooks in run order.
func (l *HookList) Names() []string { return append([]string(nil), l.names...) }

// Run calls every hook with t.
func (l *HookList) Run(t overlay.Target) {
	for _, fn := range l.hooks {
		fn(t)
	}
}
