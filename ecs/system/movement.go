package system

import (
	"math"

	"github.com/milk9111/colourblind/config"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
)

// MovementSystem integrates velocity only. Position is committed by the
// CollisionSystem once the velocity has been corrected.
type MovementSystem struct {
	physics config.Physics
}

func NewMovementSystem(p config.Physics) *MovementSystem {
	return &MovementSystem{physics: p}
}

// SetPhysics swaps the tunables, e.g. after a config reload.
func (s *MovementSystem) SetPhysics(p config.Physics) {
	s.physics = p
}

func (s *MovementSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	p := s.physics

	ecs.ForEach2(w, component.PositionComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, _ *component.Position, vel *component.Velocity) {
		if weight, ok := ecs.Get(w, e, component.WeightComponent.Kind()); ok {
			vel.Y -= weight.Factor * p.Gravity
			if p.TerminalVelocity > 0 && math.Abs(vel.Y) > p.TerminalVelocity {
				vel.Y = math.Copysign(p.TerminalVelocity, vel.Y)
			}
		}

		if vel.X != 0 {
			setFacing(w, e, vel.X < 0)
		}

		vel.X *= p.Damping

		if math.Abs(vel.X) < p.SnapEpsilon {
			vel.X = 0
		}
		if math.Abs(vel.Y) < p.SnapEpsilon {
			vel.Y = 0
		}
	})
}
