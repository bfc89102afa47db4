// Package input polls the keyboard, mouse and first gamepad and maps named
// bindings onto key-sets.
package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Source is polled once per tick. Implementations never queue events.
type Source interface {
	IsPressed(key ebiten.Key) bool
	IsPointerButtonPressed(button ebiten.MouseButton) bool
	IsGamepadButtonPressed(button ebiten.StandardGamepadButton) bool
}

// EbitenSource reads live device state from ebiten.
type EbitenSource struct{}

func NewEbitenSource() EbitenSource {
	return EbitenSource{}
}

func (EbitenSource) IsPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenSource) IsPointerButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (EbitenSource) IsGamepadButtonPressed(button ebiten.StandardGamepadButton) bool {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(ids[0], button)
}

// KeySet is one intent's bindings. It fires when any member is held.
type KeySet struct {
	Keys    []ebiten.Key
	Buttons []ebiten.MouseButton
	Pad     []ebiten.StandardGamepadButton
}

func (k KeySet) Empty() bool {
	return len(k.Keys) == 0 && len(k.Buttons) == 0 && len(k.Pad) == 0
}

// Pressed reports whether any bound key or button is held on src.
func (k KeySet) Pressed(src Source) bool {
	if src == nil {
		return false
	}
	for _, key := range k.Keys {
		if src.IsPressed(key) {
			return true
		}
	}
	for _, b := range k.Buttons {
		if src.IsPointerButtonPressed(b) {
			return true
		}
	}
	for _, b := range k.Pad {
		if src.IsGamepadButtonPressed(b) {
			return true
		}
	}
	return false
}

var mouseButtons = map[string]ebiten.MouseButton{
	"left":   ebiten.MouseButtonLeft,
	"right":  ebiten.MouseButtonRight,
	"middle": ebiten.MouseButtonMiddle,
}

var padButtons = map[string]ebiten.StandardGamepadButton{
	"south":      ebiten.StandardGamepadButtonRightBottom,
	"east":       ebiten.StandardGamepadButtonRightRight,
	"west":       ebiten.StandardGamepadButtonRightLeft,
	"north":      ebiten.StandardGamepadButtonRightTop,
	"lb":         ebiten.StandardGamepadButtonFrontTopLeft,
	"rb":         ebiten.StandardGamepadButtonFrontTopRight,
	"lt":         ebiten.StandardGamepadButtonFrontBottomLeft,
	"rt":         ebiten.StandardGamepadButtonFrontBottomRight,
	"dpad_up":    ebiten.StandardGamepadButtonLeftTop,
	"dpad_down":  ebiten.StandardGamepadButtonLeftBottom,
	"dpad_left":  ebiten.StandardGamepadButtonLeftLeft,
	"dpad_right": ebiten.StandardGamepadButtonLeftRight,
}

// ParseKeySet converts binding names into a KeySet. Plain names are ebiten
// key names ("Space", "ArrowLeft", "A", "Digit1"); "mouse:left" and
// "pad:south" select pointer and gamepad buttons.
func ParseKeySet(names []string) (KeySet, error) {
	var set KeySet
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(name, "mouse:"):
			b, ok := mouseButtons[strings.ToLower(strings.TrimPrefix(name, "mouse:"))]
			if !ok {
				return KeySet{}, fmt.Errorf("input: unknown mouse button %q", name)
			}
			set.Buttons = append(set.Buttons, b)
		case strings.HasPrefix(name, "pad:"):
			b, ok := padButtons[strings.ToLower(strings.TrimPrefix(name, "pad:"))]
			if !ok {
				return KeySet{}, fmt.Errorf("input: unknown gamepad button %q", name)
			}
			set.Pad = append(set.Pad, b)
		default:
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return KeySet{}, fmt.Errorf("input: unknown key %q: %w", name, err)
			}
			set.Keys = append(set.Keys, key)
		}
	}
	return set, nil
}

// Keys builds a keyboard-only KeySet.
func Keys(keys ...ebiten.Key) KeySet {
	return KeySet{Keys: keys}
}

// Static is a Source backed by fixed sets, used for replays and tests.
type Static struct {
	Keys    map[ebiten.Key]bool
	Buttons map[ebiten.MouseButton]bool
	Pad     map[ebiten.StandardGamepadButton]bool
}

func NewStatic(keys ...ebiten.Key) *Static {
	s := &Static{Keys: map[ebiten.Key]bool{}, Buttons: map[ebiten.MouseButton]bool{}, Pad: map[ebiten.StandardGamepadButton]bool{}}
	for _, k := range keys {
		s.Keys[k] = true
	}
	return s
}

func (s *Static) Press(keys ...ebiten.Key) {
	for _, k := range keys {
		s.Keys[k] = true
	}
}

func (s *Static) Release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(s.Keys, k)
	}
}

func (s *Static) IsPressed(key ebiten.Key) bool {
	return s != nil && s.Keys[key]
}

func (s *Static) IsPointerButtonPressed(button ebiten.MouseButton) bool {
	return s != nil && s.Buttons[button]
}

func (s *Static) IsGamepadButtonPressed(button ebiten.StandardGamepadButton) bool {
	return s != nil && s.Pad[button]
}
