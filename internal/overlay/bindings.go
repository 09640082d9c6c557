package overlay

import (
	"errors"
	"fmt"
)

// Category groups the overlay bindings in the host's controls listing.
const Category = "key.categories.infohud"

var (
	// ErrDuplicateBinding is returned when two bindings share an identifier
	// or a flag.
	ErrDuplicateBinding = errors.New("overlay: duplicate key binding")
	// ErrUnboundKey is returned when a binding has no physical key.
	ErrUnboundKey = errors.New("overlay: key binding has no key")
	// ErrUnknownBinding is returned by Rebind for identifiers that were never
	// registered.
	ErrUnknownBinding = errors.New("overlay: unknown key binding")
)

// Key names a physical key, e.g. "K" or "F3".
type Key string

// KeyState reports the current level (held or not) of a physical key.
type KeyState interface {
	IsKeyPressed(k Key) bool
}

// Binding describes one toggle key registered with the host.
type Binding struct {
	Flag     Flag
	ID       string
	Key      Key
	Category string
}

// DefaultBindings returns the startup key layout.
func DefaultBindings() []Binding {
	return []Binding{
		{Flag: Coordinates, ID: "key.infohud.toggle_coordinates", Key: "K", Category: Category},
		{Flag: Facing, ID: "key.infohud.toggle_facing", Key: "V", Category: Category},
		{Flag: Biome, ID: "key.infohud.toggle_biome", Key: "B", Category: Category},
		{Flag: DayCount, ID: "key.infohud.toggle_day", Key: "N", Category: Category},
		{Flag: FPS, ID: "key.infohud.toggle_fps", Key: "O", Category: Category},
	}
}

type boundKey struct {
	spec    Binding
	down    bool
	pressed int
}

// Bindings turns level-triggered key samples into one press per physical
// press for each registered binding.
type Bindings struct {
	keys   []boundKey
	byFlag [flagCount]int
}

// NewBindings registers the provided bindings.
func NewBindings(specs []Binding) (*Bindings, error) {
	b := &Bindings{keys: make([]boundKey, 0, len(specs))}
	for i := range b.byFlag {
		b.byFlag[i] = -1
	}
	ids := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if !spec.Flag.valid() {
			return nil, fmt.Errorf("binding %q: flag %d out of range", spec.ID, spec.Flag)
		}
		if spec.Key == "" {
			return nil, fmt.Errorf("binding %q: %w", spec.ID, ErrUnboundKey)
		}
		if _, dup := ids[spec.ID]; dup {
			return nil, fmt.Errorf("binding %q: %w", spec.ID, ErrDuplicateBinding)
		}
		if b.byFlag[spec.Flag] >= 0 {
			return nil, fmt.Errorf("binding %q for %s: %w", spec.ID, spec.Flag, ErrDuplicateBinding)
		}
		ids[spec.ID] = struct{}{}
		b.byFlag[spec.Flag] = len(b.keys)
		b.keys = append(b.keys, boundKey{spec: spec})
	}
	return b, nil
}

// Specs returns a copy of the registered bindings.
func (b *Bindings) Specs() []Binding {
	out := make([]Binding, len(b.keys))
	for i, k := range b.keys {
		out[i] = k.spec
	}
	return out
}

// Rebind swaps the physical key of the binding with the given identifier.
func (b *Bindings) Rebind(id string, key Key) error {
	if key == "" {
		return fmt.Errorf("binding %q: %w", id, ErrUnboundKey)
	}
	for i := range b.keys {
		if b.keys[i].spec.ID != id {
			continue
		}
		b.keys[i].spec.Key = key
		b.keys[i].down = false
		return nil
	}
	return fmt.Errorf("binding %q: %w", id, ErrUnknownBinding)
}

// Update samples every bound key once and records a press on each
// released-to-held transition.
func (b *Bindings) Update(keys KeyState) {
	if b == nil || keys == nil {
		return
	}
	for i := range b.keys {
		k := &b.keys[i]
		down := keys.IsKeyPressed(k.spec.Key)
		if down && !k.down {
			k.pressed++
		}
		k.down = down
	}
}

// WasPressed consumes one recorded press for the binding of f.
func (b *Bindings) WasPressed(f Flag) bool {
	if b == nil || !f.valid() {
		return false
	}
	idx := b.byFlag[f]
	if idx < 0 {
		return false
	}
	k := &b.keys[idx]
	if k.pressed == 0 {
		return false
	}
	k.pressed--
	return true
}
