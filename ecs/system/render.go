package system

import (
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/render"
)

// RenderSystem builds a render.Scene from the world and hands it to the
// active pass. It only reads the world, so it runs on zero-delta ticks too.
type RenderSystem struct {
	pass  render.Pass
	tiles render.Tileset
	scene render.Scene
}

func NewRenderSystem(pass render.Pass, tiles render.Tileset) *RenderSystem {
	return &RenderSystem{pass: pass, tiles: tiles}
}

// SetPass switches between render pass implementations.
func (r *RenderSystem) SetPass(pass render.Pass) {
	r.pass = pass
}

func (r *RenderSystem) Pass() render.Pass {
	return r.pass
}

// SetTiles replaces the tileset, e.g. when a level's tile size differs.
func (r *RenderSystem) SetTiles(tiles render.Tileset) {
	r.tiles = tiles
}

// Scene returns the scene assembled by the last Draw.
func (r *RenderSystem) Scene() *render.Scene {
	return &r.scene
}

func (r *RenderSystem) Draw(w *ecs.World, t render.Target) {
	if r == nil || w == nil || t == nil || r.pass == nil {
		return
	}
	r.build(w, t)
	r.pass.Draw(t, &r.scene)
}

func (r *RenderSystem) build(w *ecs.World, t render.Target) {
	s := &r.scene
	s.Level = nil
	s.Tiles = r.tiles
	s.Lights = s.Lights[:0]
	s.Sprites = s.Sprites[:0]

	sw, sh := t.Size()
	s.View = render.View{Zoom: 1, Width: float64(sw), Height: float64(sh)}

	if e, ok := w.First(component.LevelGeometryComponent.Kind()); ok {
		if geom, _ := ecs.Get(w, e, component.LevelGeometryComponent.Kind()); geom != nil {
			s.Level = geom.Level
		}
	}
	if e, ok := w.First(component.LightListComponent.Kind()); ok {
		lights, _ := ecs.Get(w, e, component.LightListComponent.Kind())
		for _, l := range lights.Active() {
			s.Lights = append(s.Lights, render.Light{X: l.X, Y: l.Y, Radius: l.Radius})
		}
	}

	if e, ok := w.First(component.CameraComponent.Kind()); ok {
		cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
		if pos, ok := ecs.Get(w, e, component.PositionComponent.Kind()); ok {
			s.View.X, s.View.Y = pos.X, pos.Y
		}
		if cam != nil && cam.Zoom > 0 {
			s.View.Zoom = cam.Zoom
		}
	}

	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, sp *component.Sprite, pos *component.Position) {
		img := sp.Frame()
		if img == nil {
			return
		}
		b := img.Bounds()
		x := pos.X
		if box, ok := ecs.Get(w, e, component.CollidableComponent.Kind()); ok {
			// Centre the frame on the collision box.
			x += (box.Width - float64(b.Dx())) / 2
		}
		out := render.Sprite{
			Region: render.Region{Name: "sprite", Image: img, FlipX: sp.FacingLeft},
			X:      x,
			Y:      pos.Y,
			W:      float64(b.Dx()),
			H:      float64(b.Dy()),
			Tinted: sp.Tinted,
		}
		if c, ok := ecs.Get(w, e, component.ColouredComponent.Kind()); ok {
			out.Colour = c.Colour
		}
		s.Sprites = append(s.Sprites, out)
	})
}
