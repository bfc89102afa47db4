package render

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenTarget draws onto an ebiten image. Uniform names are mapped to the
// exported Kage form ("flashLight" becomes "FlashLight").
type EbitenTarget struct {
	dst      *ebiten.Image
	shader   *Shader
	uniforms map[string]any
	fb       *EbitenTarget
	draws    int
}

func NewEbitenTarget(dst *ebiten.Image) *EbitenTarget {
	return &EbitenTarget{dst: dst, uniforms: map[string]any{}}
}

// SetDestination retargets the batch, typically to each frame's screen.
func (t *EbitenTarget) SetDestination(dst *ebiten.Image) {
	t.dst = dst
}

func (t *EbitenTarget) Image() *ebiten.Image {
	return t.dst
}

// Draws is the number of draw calls since the last Begin.
func (t *EbitenTarget) Draws() int {
	return t.draws
}

func (t *EbitenTarget) Begin() {
	t.shader = nil
	t.draws = 0
	clear(t.uniforms)
}

func (t *EbitenTarget) End() {
	t.shader = nil
}

func (t *EbitenTarget) SetShader(s *Shader) {
	t.shader = s
}

func kageName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func (t *EbitenTarget) SetUniformFloat(name string, v float32) {
	t.uniforms[kageName(name)] = v
}

func (t *EbitenTarget) SetUniformVec2(name string, x, y float32) {
	t.uniforms[kageName(name)] = []float32{x, y}
}

func (t *EbitenTarget) SetUniformVec3Array(name string, v []float32) {
	t.uniforms[kageName(name)] = append([]float32(nil), v...)
}

func (t *EbitenTarget) SetUniformColor(name string, rgba [4]float32) {
	t.uniforms[kageName(name)] = rgba[:]
}

func (t *EbitenTarget) Size() (int, int) {
	if t.dst == nil {
		return 0, 0
	}
	b := t.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (t *EbitenTarget) Draw(region Region, x, y, w, h float64) {
	if t.dst == nil || region.Image == nil {
		return
	}
	b := region.Image.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw == 0 || sh == 0 {
		return
	}
	t.draws++

	var geo ebiten.GeoM
	if region.FlipX {
		geo.Scale(-1, 1)
		geo.Translate(sw, 0)
	}
	geo.Scale(w/sw, h/sh)
	geo.Translate(x, y)

	if t.shader == nil || t.shader.shader == nil {
		op := &ebiten.DrawImageOptions{GeoM: geo}
		op.Filter = ebiten.FilterNearest
		t.dst.DrawImage(region.Image, op)
		return
	}
	op := &ebiten.DrawRectShaderOptions{GeoM: geo, Uniforms: t.uniforms}
	op.Images[0] = region.Image
	t.dst.DrawRectShader(b.Dx(), b.Dy(), t.shader.shader, op)
}

func (t *EbitenTarget) Framebuffer() Target {
	w, h := t.Size()
	if t.fb == nil || t.fb.dst == nil {
		t.fb = NewEbitenTarget(ebiten.NewImage(max(w, 1), max(h, 1)))
	} else if fw, fh := t.fb.Size(); fw != w || fh != h {
		t.fb.dst.Deallocate()
		t.fb.dst = ebiten.NewImage(max(w, 1), max(h, 1))
	}
	t.fb.dst.Clear()
	return t.fb
}

func (t *EbitenTarget) DrawTarget(src Target) {
	s, ok := src.(*EbitenTarget)
	if !ok || s.dst == nil || t.dst == nil {
		return
	}
	w, h := s.Size()
	t.Draw(Region{Name: "framebuffer", Image: s.dst}, 0, 0, float64(w), float64(h))
}
