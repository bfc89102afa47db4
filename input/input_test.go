package input

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseKeySet(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		keys    []ebiten.Key
		buttons []ebiten.MouseButton
		pad     []ebiten.StandardGamepadButton
		wantErr bool
	}{
		{name: "keys", in: []string{"Space", "ArrowUp"}, keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp}},
		{name: "mouse", in: []string{"E", "mouse:left"}, keys: []ebiten.Key{ebiten.KeyE}, buttons: []ebiten.MouseButton{ebiten.MouseButtonLeft}},
		{name: "pad", in: []string{"pad:south"}, pad: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
		{name: "unknown_key", in: []string{"NotAKey"}, wantErr: true},
		{name: "unknown_mouse", in: []string{"mouse:fourth"}, wantErr: true},
		{name: "unknown_pad", in: []string{"pad:select"}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, err := ParseKeySet(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if !slices.Equal(set.Keys, tc.keys) || !slices.Equal(set.Buttons, tc.buttons) || !slices.Equal(set.Pad, tc.pad) {
				t.Fatalf("got %+v", set)
			}
		})
	}
}

func TestKeySetPressed(t *testing.T) {
	src := NewStatic(ebiten.KeyD)
	if !Keys(ebiten.KeyArrowRight, ebiten.KeyD).Pressed(src) {
		t.Fatalf("any bound key should fire the set")
	}
	if Keys(ebiten.KeyA).Pressed(src) {
		t.Fatalf("unbound key fired")
	}
	src.Buttons[ebiten.MouseButtonLeft] = true
	if !(KeySet{Buttons: []ebiten.MouseButton{ebiten.MouseButtonLeft}}).Pressed(src) {
		t.Fatalf("mouse button should fire the set")
	}
	src.Release(ebiten.KeyD)
	if Keys(ebiten.KeyD).Pressed(src) {
		t.Fatalf("released key still pressed")
	}
	if (KeySet{}).Pressed(nil) {
		t.Fatalf("nil source should never fire")
	}
	if !(KeySet{}).Empty() || Keys(ebiten.KeyA).Empty() {
		t.Fatalf("Empty mismatch")
	}
}
