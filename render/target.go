// Package render draws a Scene through a Target. Passes only write named
// uniforms and issue draws; they never inspect shader internals.
package render

import "github.com/hajimehoshi/ebiten/v2"

// Uniform names written by the passes.
const (
	UniformFlashLightSize = "flashLightSize"
	UniformFlashLight     = "flashLight"
	UniformLightCoord     = "lightCoord"
	UniformLights         = "lights"
	UniformLightsOn       = "lightsOn"
	UniformInputColour    = "inputColour"
	UniformPlatform       = "platform"
)

// Region is a drawable texture area.
type Region struct {
	Name  string
	Image *ebiten.Image
	FlipX bool
}

// Shader is a compiled shader and the name used in logs and tests.
type Shader struct {
	Name   string
	shader *ebiten.Shader
}

// Target is a draw batch. Draw calls between Begin and End use the active
// shader and the uniforms set so far; SetShader(nil) selects plain drawing.
type Target interface {
	Begin()
	End()
	SetShader(s *Shader)
	SetUniformFloat(name string, v float32)
	SetUniformVec2(name string, x, y float32)
	SetUniformVec3Array(name string, v []float32)
	SetUniformColor(name string, rgba [4]float32)
	// Draw places region in the screen rectangle with top-left (x, y).
	Draw(region Region, x, y, w, h float64)
	Size() (w, h int)
	// Framebuffer returns an off-screen target of the same size.
	Framebuffer() Target
	// DrawTarget composites src over this target with the active shader.
	DrawTarget(src Target)
}
