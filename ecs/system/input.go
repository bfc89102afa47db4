package system

import (
	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/input"
	"github.com/milk9111/colourblind/logger"
	"go.uber.org/zap"
)

// InputSystem polls src once per tick for every entity with an InputBinding
// and applies the intents of every pressed key-set.
type InputSystem struct {
	src input.Source
	log *zap.Logger
}

func NewInputSystem(src input.Source) *InputSystem {
	return &InputSystem{src: src, log: logger.Named("input")}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.src == nil {
		return
	}

	ecs.ForEach2(w, component.InputBindingComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, b *component.InputBinding, vel *component.Velocity) {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())

		if b.Jump.Pressed(s.src) && player != nil {
			if col, ok := ecs.Get(w, e, component.CollidableComponent.Kind()); ok && col.Grounded {
				vel.Y += player.JumpSpeed
				col.Grounded = false
			}
		}

		if b.Left.Pressed(s.src) && player != nil {
			vel.X = -player.RunSpeed
			setFacing(w, e, true)
		}
		if b.Right.Pressed(s.src) && player != nil {
			vel.X = player.RunSpeed
			setFacing(w, e, false)
		}

		if b.Flashlight.Pressed(s.src) {
			if fl, ok := ecs.Get(w, e, component.FlashlightComponent.Kind()); ok {
				fl.RequestStart()
			}
		}

		if b.Interact.Pressed(s.src) {
			s.interact(w, e)
		}

		// Scan order is colour.Playable; a later held key overrides an
		// earlier one.
		if c, ok := ecs.Get(w, e, component.ColouredComponent.Kind()); ok {
			for i, set := range b.Colours {
				if set.Pressed(s.src) {
					c.Colour = colour.Playable[i]
				}
			}
		}
	})
}

func setFacing(w *ecs.World, e ecs.Entity, left bool) {
	if f, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
		f.Left = left
	}
}

// interact raises a LevelChangeRequest when the entity's box lies entirely
// inside the door.
func (s *InputSystem) interact(w *ecs.World, e ecs.Entity) {
	geomEnt, ok := w.First(component.LevelGeometryComponent.Kind())
	if !ok {
		return
	}
	geom, _ := ecs.Get(w, geomEnt, component.LevelGeometryComponent.Kind())
	if geom == nil || geom.Level == nil {
		return
	}
	door, ok := geom.Level.DoorBounds()
	if !ok {
		return
	}
	pos, okPos := ecs.Get(w, e, component.PositionComponent.Kind())
	col, okCol := ecs.Get(w, e, component.CollidableComponent.Kind())
	if !okPos || !okCol {
		return
	}
	if !door.Contains(col.Bounds(pos.Vector)) {
		return
	}
	if ecs.Has(w, e, component.LevelChangeRequestComponent.Kind()) {
		return
	}
	s.log.Info("door opened", zap.String("level", geom.Level.Name), zap.Stringer("entity", e))
	_ = ecs.Add(w, e, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{
		FromLevel: geom.Index,
		Frame:     w.Frame(),
	})
}
