package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/colourblind/config"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
)

func testPhysics() config.Physics {
	return config.Physics{Gravity: 1, Damping: 0.75, SnapEpsilon: 0.25, TerminalVelocity: 24}
}

func TestMovementIntegrate(t *testing.T) {
	tests := []struct {
		name   string
		vel    cp.Vector
		weight *component.Weight
		want   cp.Vector
		left   bool
	}{
		{"gravity_scaled_by_weight", cp.Vector{}, &component.Weight{Factor: 2}, cp.Vector{Y: -2}, false},
		{"weightless_ignores_gravity", cp.Vector{Y: 3}, nil, cp.Vector{Y: 3}, false},
		{"terminal_velocity", cp.Vector{Y: -30}, &component.Weight{Factor: 1}, cp.Vector{Y: -24}, false},
		{"damping", cp.Vector{X: 8}, nil, cp.Vector{X: 6}, false},
		{"snap_small_x", cp.Vector{X: -0.3}, nil, cp.Vector{}, true},
		{"facing_left", cp.Vector{X: -4}, nil, cp.Vector{X: -3}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := spawn(t, w, body{vel: component.Velocity{Vector: tc.vel}, weight: tc.weight})
			NewMovementSystem(testPhysics()).Update(w)

			vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			if vel.Vector != tc.want {
				t.Fatalf("velocity = %v, want %v", vel.Vector, tc.want)
			}
			facing, _ := ecs.Get(w, e, component.FacingComponent.Kind())
			if facing.Left != tc.left {
				t.Fatalf("facing left = %v, want %v", facing.Left, tc.left)
			}
			pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
			if pos.Vector != (cp.Vector{}) {
				t.Fatalf("movement must not move the entity, got %v", pos.Vector)
			}
		})
	}
}

func TestMovementSetPhysics(t *testing.T) {
	w := ecs.NewWorld()
	e := spawn(t, w, body{weight: &component.Weight{Factor: 1}})
	sys := NewMovementSystem(testPhysics())
	p := testPhysics()
	p.Gravity = 3
	sys.SetPhysics(p)
	sys.Update(w)
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if vel.Y != -3 {
		t.Fatalf("vy = %v, want -3", vel.Y)
	}
}
