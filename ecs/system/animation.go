package system

import (
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
)

// AnimationSystem picks stand, run or jump from movement state, advances
// the frame timer and points the sprite at the current frame.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// HumanoidState maps movement state to an animation name.
func HumanoidState(grounded bool, vx float64) string {
	switch {
	case !grounded:
		return component.AnimJump
	case vx != 0:
		return component.AnimRun
	default:
		return component.AnimStand
	}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		col, hasCol := ecs.Get(w, e, component.CollidableComponent.Kind())
		vel, hasVel := ecs.Get(w, e, component.VelocityComponent.Kind())
		if hasCol && hasVel {
			anim.Play(HumanoidState(col.Grounded, vel.X))
		}

		anim.Advance(dt)

		if f, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
			sprite.FacingLeft = f.Left
		}

		def, ok := anim.Defs[anim.Current]
		if !ok {
			return
		}
		sprite.Image = anim.Sheet
		sprite.Source = def.Rect(anim.Frame)
		sprite.UseSource = true
	})
}
