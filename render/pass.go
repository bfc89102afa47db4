package render

import (
	"math"

	"github.com/milk9111/colourblind/level"
)

// Pass draws a Scene. Both implementations draw the unconditional layers
// with no shader first and the platform layer with the reveal shader after.
type Pass interface {
	Name() string
	Draw(t Target, s *Scene)
}

func drawLayer(t Target, s *Scene, layer level.LayerID, region Region) {
	lvl := s.Level
	for row := 0; row < lvl.Height; row++ {
		for col := 0; col < lvl.Width; col++ {
			if !lvl.Occupied(layer, col, row) {
				continue
			}
			x, y := float64(col)*lvl.TileWidth, float64(row)*lvl.TileHeight
			if !s.View.Visible(x, y, lvl.TileWidth, lvl.TileHeight) {
				continue
			}
			drawWorld(t, region, s.View, x, y, lvl.TileWidth, lvl.TileHeight)
		}
	}
}

// drawWorld draws region over the world box with bottom-left (x, y),
// snapped to whole screen pixels.
func drawWorld(t Target, region Region, v View, x, y, w, h float64) {
	sx, sy, sw, sh := v.Rect(x, y, w, h)
	t.Draw(region, math.Floor(sx), math.Floor(sy), sw, sh)
}

// drawStatic draws the level and door layers with no shader bound.
func drawStatic(t Target, s *Scene) {
	t.SetShader(nil)
	if s.Level == nil {
		return
	}
	drawLayer(t, s, level.LayerLevel, s.Tiles.Solid)
	drawLayer(t, s, level.LayerDoor, s.Tiles.Door)
}

func setLights(t Target, s *Scene) {
	lights, n := s.lightUniforms()
	t.SetUniformVec3Array(UniformLights, lights)
	t.SetUniformFloat(UniformLightsOn, float32(n))
	if n == 0 {
		t.SetUniformFloat(UniformFlashLight, 0)
		t.SetUniformFloat(UniformFlashLightSize, 0)
		t.SetUniformVec2(UniformLightCoord, 0, 0)
		return
	}
	t.SetUniformFloat(UniformFlashLight, 1)
	t.SetUniformFloat(UniformFlashLightSize, lights[2])
	t.SetUniformVec2(UniformLightCoord, lights[0], lights[1])
}

// drawPlatforms draws every platform run with reveal bound, one inputColour
// per run.
func drawPlatforms(t Target, s *Scene, reveal *Shader) {
	if s.Level == nil {
		return
	}
	t.SetShader(reveal)
	setLights(t, s)
	t.SetUniformFloat(UniformPlatform, 1)
	lvl := s.Level
	for _, p := range lvl.Platforms() {
		x0 := float64(p.Col) * lvl.TileWidth
		y := float64(p.Row) * lvl.TileHeight
		if !s.View.Visible(x0, y, float64(p.Width)*lvl.TileWidth, lvl.TileHeight) {
			continue
		}
		t.SetUniformColor(UniformInputColour, p.Colour.RGBA(1))
		for i := 0; i < p.Width; i++ {
			x := x0 + float64(i)*lvl.TileWidth
			drawWorld(t, s.Tiles.PlatformPiece(i, p.Width), s.View, x, y, lvl.TileWidth, lvl.TileHeight)
		}
	}
}

// drawSprites tints sprites with their colour. platform is cleared so the
// shader never greys a sprite.
func drawSprites(t Target, s *Scene, reveal *Shader) {
	if len(s.Sprites) == 0 {
		return
	}
	t.SetShader(reveal)
	t.SetUniformFloat(UniformPlatform, 0)
	for _, sp := range s.Sprites {
		rgba := [4]float32{1, 1, 1, 1}
		if sp.Tinted {
			rgba = sp.Colour.RGBA(1)
		}
		t.SetUniformColor(UniformInputColour, rgba)
		drawWorld(t, sp.Region, s.View, sp.X, sp.Y, sp.W, sp.H)
	}
}

// DirectRevealPass draws straight to the target and reveals platform
// colours inside each light.
type DirectRevealPass struct {
	Reveal *Shader
}

func NewDirectRevealPass(reveal *Shader) *DirectRevealPass {
	return &DirectRevealPass{Reveal: reveal}
}

func (p *DirectRevealPass) Name() string { return "direct" }

func (p *DirectRevealPass) Draw(t Target, s *Scene) {
	if t == nil || s == nil {
		return
	}
	t.Begin()
	drawStatic(t, s)
	drawPlatforms(t, s, p.Reveal)
	drawSprites(t, s, p.Reveal)
	t.End()
}

// DefaultAmbient is the mask brightness away from every light.
const DefaultAmbient = 0.35

// FramebufferPass draws the scene off-screen and composites it through a
// light mask, so everything outside the lights is darkened.
type FramebufferPass struct {
	Reveal  *Shader
	Mask    *Shader
	Ambient float32
}

func NewFramebufferPass(reveal, mask *Shader) *FramebufferPass {
	return &FramebufferPass{Reveal: reveal, Mask: mask, Ambient: DefaultAmbient}
}

func (p *FramebufferPass) Name() string { return "framebuffer" }

func (p *FramebufferPass) Draw(t Target, s *Scene) {
	if t == nil || s == nil {
		return
	}
	fb := t.Framebuffer()
	fb.Begin()
	drawStatic(fb, s)
	drawPlatforms(fb, s, p.Reveal)
	drawSprites(fb, s, p.Reveal)
	fb.End()

	t.Begin()
	t.SetShader(p.Mask)
	lights, n := s.lightUniforms()
	t.SetUniformVec3Array(UniformLights, lights)
	t.SetUniformFloat(UniformLightsOn, float32(n))
	t.SetUniformFloat(UniformAmbient, p.Ambient)
	t.DrawTarget(fb)
	t.End()
}
