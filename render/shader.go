package render

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed reveal.kage
var revealSrc []byte

//go:embed mask.kage
var maskSrc []byte

// UniformAmbient is the light level outside every light in the framebuffer
// pass.
const UniformAmbient = "ambient"

func compile(name string, src []byte) (*Shader, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("render: compile %s shader: %w", name, err)
	}
	return &Shader{Name: name, shader: s}, nil
}

// NewRevealShader compiles the shader that greys platforms outside lights
// and tints sprites with inputColour.
func NewRevealShader() (*Shader, error) {
	return compile("reveal", revealSrc)
}

// NewMaskShader compiles the framebuffer light mask.
func NewMaskShader() (*Shader, error) {
	return compile("mask", maskSrc)
}
