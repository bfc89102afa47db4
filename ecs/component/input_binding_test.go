package component

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/common"
)

func colourNames() map[colour.Colour][]string {
	return map[colour.Colour][]string{
		colour.Red:    {"Digit1"},
		colour.Green:  {"Digit2"},
		colour.Blue:   {"Digit3"},
		colour.Yellow: {"Digit4"},
	}
}

func TestNewInputBinding(t *testing.T) {
	b, err := NewInputBinding([]string{"Space"}, []string{"A"}, []string{"D"}, []string{"E", "mouse:left"}, []string{"W"}, colourNames())
	if err != nil {
		t.Fatalf("binding: %v", err)
	}
	if b.Jump.Keys[0] != ebiten.KeySpace || b.Colours[2].Keys[0] != ebiten.KeyDigit3 {
		t.Fatalf("unexpected binding %+v", b)
	}

	tests := []struct {
		name    string
		jump    []string
		colours map[colour.Colour][]string
		field   string
	}{
		{"empty_jump", nil, colourNames(), "jump"},
		{"missing_colour", []string{"Space"}, map[colour.Colour][]string{colour.Red: {"Digit1"}}, "green"},
		{"bad_key", []string{"Spaceship"}, colourNames(), "jump"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInputBinding(tc.jump, []string{"A"}, []string{"D"}, []string{"E"}, []string{"W"}, tc.colours)
			var cfgErr *common.ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tc.field {
				t.Fatalf("expected ConfigError on %s, got %v", tc.field, err)
			}
		})
	}
}
