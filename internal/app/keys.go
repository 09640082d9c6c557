//go:build ebiten

package app

import (
	"fmt"

	"infohud/internal/overlay"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyboard reports ebiten key levels for overlay key names.
type keyboard struct {
	keys map[overlay.Key]ebiten.Key
}

// newKeyboard resolves the key names of every binding up front so that a
// typo in the config fails at startup instead of silently never firing.
func newKeyboard(specs []overlay.Binding) (*keyboard, error) {
	kb := &keyboard{keys: make(map[overlay.Key]ebiten.Key, len(specs))}
	for _, spec := range specs {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(spec.Key)); err != nil {
			return nil, fmt.Errorf("binding %s: %w", spec.ID, err)
		}
		kb.keys[spec.Key] = k
	}
	return kb, nil
}

func (kb *keyboard) IsKeyPressed(k overlay.Key) bool {
	key, ok := kb.keys[k]
	return ok && ebiten.IsKeyPressed(key)
}
