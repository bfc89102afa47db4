// Package colour holds the small set of game colours shared by platforms,
// the player and the flashlight.
package colour

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"
)

// Colour is one of the discrete game colours. The zero value is Red.
type Colour uint8

const (
	Red Colour = iota
	Green
	Blue
	Yellow
	Black
)

// Playable lists the colours a player can switch to and a platform can be
// assigned, in key scan order.
var Playable = [...]Colour{Red, Green, Blue, Yellow}

func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("colour(%d)", uint8(c))
	}
}

// Parse maps a colour name to a Colour.
func Parse(name string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	case "yellow":
		return Yellow, nil
	case "black":
		return Black, nil
	}
	return Red, fmt.Errorf("colour: unknown colour %q", name)
}

// UnmarshalText lets colours be written by name in yaml files.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// RGBA returns the draw colour with the given alpha.
func (c Colour) RGBA(alpha float32) [4]float32 {
	switch c {
	case Red:
		return [4]float32{1, 0, 0, alpha}
	case Green:
		return [4]float32{0, 0.8, 0, alpha}
	case Blue:
		return [4]float32{0, 0, 1, alpha}
	case Yellow:
		return [4]float32{1, 1, 0, alpha}
	default:
		return [4]float32{0, 0, 0, alpha}
	}
}

// NRGBA is the 8-bit form of RGBA(1), used when filling images.
func (c Colour) NRGBA() color.NRGBA {
	f := c.RGBA(1)
	return color.NRGBA{R: uint8(f[0] * 255), G: uint8(f[1] * 255), B: uint8(f[2] * 255), A: 255}
}

// Picker chooses platform colours. A seeded picker replays the same sequence,
// which keeps level loads reproducible in tests.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a picker seeded with seed.
func NewPicker(seed uint64) *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns a uniformly chosen playable colour.
func (p *Picker) Next() Colour {
	if p == nil || p.rng == nil {
		return Playable[rand.IntN(len(Playable))]
	}
	return Playable[p.rng.IntN(len(Playable))]
}

// Choose returns a uniformly chosen colour from allowed. An empty allowed
// set falls back to Next.
func (p *Picker) Choose(allowed []Colour) Colour {
	if len(allowed) == 0 {
		return p.Next()
	}
	if p == nil || p.rng == nil {
		return allowed[rand.IntN(len(allowed))]
	}
	return allowed[p.rng.IntN(len(allowed))]
}
