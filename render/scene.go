package render

import (
	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/level"
)

// View maps y-up world space onto the y-down screen. X and Y are the world
// point shown at the screen centre.
type View struct {
	X, Y          float64
	Zoom          float64
	Width, Height float64
}

func (v View) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(x, y float64) (float64, float64) {
	z := v.zoom()
	return (x-v.X)*z + v.Width/2, v.Height/2 - (y-v.Y)*z
}

// Rect converts the world box with bottom-left (x, y) to a screen rectangle
// given by its top-left corner and size.
func (v View) Rect(x, y, w, h float64) (sx, sy, sw, sh float64) {
	z := v.zoom()
	sx, sy = v.ToScreen(x, y+h)
	return sx, sy, w * z, h * z
}

// Visible reports whether the world box overlaps the screen.
func (v View) Visible(x, y, w, h float64) bool {
	sx, sy, sw, sh := v.Rect(x, y, w, h)
	return sx+sw >= 0 && sy+sh >= 0 && sx <= v.Width && sy <= v.Height
}

// Light is a world-space light.
type Light struct {
	X, Y, Radius float64
}

// Sprite is an entity image with its world-space bottom-left corner.
type Sprite struct {
	Region Region
	X, Y   float64
	W, H   float64
	Colour colour.Colour
	Tinted bool
}

// Scene is everything a pass needs for one frame.
type Scene struct {
	Level   *level.Level
	Tiles   Tileset
	View    View
	Lights  []Light
	Sprites []Sprite
}

// lightUniforms converts up to component.MaxLights lights to screen-space
// triples. The shaders' light arrays have the same size.
func (s *Scene) lightUniforms() ([]float32, int) {
	out := make([]float32, component.MaxLights*3)
	n := min(len(s.Lights), component.MaxLights)
	for i, l := range s.Lights[:n] {
		x, y := s.View.ToScreen(l.X, l.Y)
		out[i*3] = float32(x)
		out[i*3+1] = float32(y)
		out[i*3+2] = float32(l.Radius * s.View.zoom())
	}
	return out, n
}
