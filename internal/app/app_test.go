package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"infohud/internal/overlay"
)

type heldKeys map[overlay.Key]bool

func (k heldKeys) IsKeyPressed(key overlay.Key) bool { return k[key] }

// monospace measures every byte as 6px on a 9px line.
type monospace struct{}

func (monospace) TextWidth(s string) int { return 6 * len(s) }
func (monospace) LineHeight() int        { return 9 }

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestConfigDefaultsValid(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestConfigValidateCollectsErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.BackgroundOpacity = 1.5
	cfg.Scale = 0
	cfg.LogLevel = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"opacity", "scale", "log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %s", err, want)
		}
	}
}

func TestMergeFileFlagsWin(t *testing.T) {
	path := writeFile(t, "infohud.yaml", `
seed: 99
background_opacity: 0.25
language: de_de
keys:
  key.infohud.toggle_fps: F6
`)
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-seed", "7"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.MergeFile(fs); err != nil {
		t.Fatalf("MergeFile: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("seed = %d, command line must win", cfg.Seed)
	}
	if cfg.BackgroundOpacity != 0.25 || cfg.Language != "de_de" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Keys["key.infohud.toggle_fps"] != "F6" {
		t.Fatalf("keys = %v", cfg.Keys)
	}
	if cfg.File != path {
		t.Fatalf("File = %q", cfg.File)
	}
}

func TestMergeFileErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.File = filepath.Join(t.TempDir(), "missing.yaml")
	if err := cfg.MergeFile(nil); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	cfg.File = writeFile(t, "bad.yaml", "seed: [1, 2")
	if err := cfg.MergeFile(nil); err == nil {
		t.Fatal("expected yaml error")
	}
	cfg.File = ""
	if err := cfg.MergeFile(nil); err != nil {
		t.Fatalf("blank file must be a no-op, got %v", err)
	}
}

func TestNewOverlayAppliesKeyOverrides(t *testing.T) {
	cfg := NewConfig()
	cfg.Keys = map[string]string{"key.infohud.toggle_fps": "F6"}
	hud, err := NewOverlay(cfg, nil)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	hud.Bindings.Update(heldKeys{"F6": true})
	if !hud.Bindings.WasPressed(overlay.FPS) {
		t.Fatal("override key did not register")
	}

	cfg.Keys = map[string]string{"key.infohud.toggle_nothing": "F6"}
	if _, err := NewOverlay(cfg, nil); !errors.Is(err, overlay.ErrUnknownBinding) {
		t.Fatalf("expected ErrUnknownBinding, got %v", err)
	}
}

func TestNewOverlayLanguageFile(t *testing.T) {
	cfg := NewConfig()
	cfg.Language = "fr_fr"
	cfg.LanguageFile = writeFile(t, "fr_fr.yaml", "hud.infohud.day: \"Jour %d\"\n")
	hud, err := NewOverlay(cfg, nil)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	if got := hud.Translator.Translate(overlay.KeyDay, 3); got != "Jour 3" {
		t.Fatalf("day = %q", got)
	}
}

func TestSessionFrame(t *testing.T) {
	cfg := NewConfig()
	s := NewSession(cfg)
	f := s.Frame(59.6, 320, 240)
	if f.Suppressed() {
		t.Fatal("fresh session must show the overlay")
	}
	if f.FPS != 60 || f.Width != 320 || f.Height != 240 || f.BackgroundOpacity != cfg.BackgroundOpacity {
		t.Fatalf("frame = %+v", f)
	}

	s.Open(ScreenChat)
	if s.Frame(60, 320, 240).Suppressed() {
		t.Fatal("chat screen must not suppress the overlay")
	}
	s.Open(ScreenPause)
	if !s.Frame(60, 320, 240).Suppressed() {
		t.Fatal("pause screen must suppress the overlay")
	}
	s.Close()
	s.DebugOverlay = true
	if !s.Frame(60, 320, 240).Suppressed() {
		t.Fatal("debug overlay must suppress the overlay")
	}

	empty := &Session{}
	if f := empty.Frame(60, 320, 240); f.World != nil || f.Player != nil || !f.Suppressed() {
		t.Fatalf("session without world produced %+v", f)
	}
}

func TestSessionChat(t *testing.T) {
	s := &Session{}
	s.TypeChat([]rune("ignored"))
	if s.ChatInput() != "" {
		t.Fatal("typing without chat open must be ignored")
	}
	s.Open(ScreenChat)
	s.TypeChat([]rune("hellp"))
	s.Backspace()
	s.TypeChat([]rune("o"))
	if got := s.SubmitChat(); got != "hello" {
		t.Fatalf("submitted %q", got)
	}
	if s.HasFocus() {
		t.Fatal("submitting must close the chat screen")
	}
}

func TestDebugLines(t *testing.T) {
	s := NewSession(NewConfig())
	s.World.Teleport(12.7, 64, -3.2)
	lines := s.DebugLines(60)
	if len(lines) != 7 {
		t.Fatalf("lines = %q", lines)
	}
	if lines[2] != "Block: 12 64 -4" {
		t.Fatalf("block line = %q", lines[2])
	}
	if got := (&Session{}).DebugLines(60); len(got) != 2 || got[1] != "no world" {
		t.Fatalf("empty session lines = %q", got)
	}
}

func TestHookList(t *testing.T) {
	var l HookList
	var order []string
	if err := l.Add("a", func(overlay.Target) { order = append(order, "a") }); err != nil {
		t.Fatalf("Add a: %v", err)
	}
	if err := l.Add("b", func(overlay.Target) { order = append(order, "b") }); err != nil {
		t.Fatalf("Add b: %v", err)
	}
	if err := l.Add("a", func(overlay.Target) {}); !errors.Is(err, ErrDuplicateHook) {
		t.Fatalf("expected ErrDuplicateHook, got %v", err)
	}
	if err := l.Add("c", nil); err == nil {
		t.Fatal("expected nil hook error")
	}
	l.Run(nil)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v", order)
	}
}

func TestOverlayEndToEnd(t *testing.T) {
	cfg := NewConfig()
	hud, err := NewOverlay(cfg, nil)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	s := NewSession(cfg)
	s.World.Teleport(12.7, 64, -3.2)
	s.World.Turn(200 - s.World.Player().Yaw)

	state := overlay.State{}
	state.Set(overlay.Coordinates, true)
	state.Set(overlay.Facing, true)
	hud.Composer.SetState(state)

	plan := hud.Composer.Compose(s.Frame(60, 320, 240), monospace{})
	left, ok := plan.Panel(overlay.Start)
	if !ok || len(left.Lines) != 2 {
		t.Fatalf("plan = %+v", plan)
	}
	if left.Lines[0] != "XYZ: 12 / 64 / -4" || left.Lines[1] != "Facing: North" {
		t.Fatalf("lines = %q", left.Lines)
	}
	if _, ok := plan.Panel(overlay.End); ok {
		t.Fatal("fps panel must be absent")
	}
}
