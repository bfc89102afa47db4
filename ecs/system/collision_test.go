package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
)

// Row 0 is solid, and a green platform covers cols 2-3 of row 1.
var ledgeLayers = map[string][]string{
	"level":     {"......", "......", "......", "OOOOOO"},
	"platforms": {"......", "......", "..OO..", "......"},
	"door":      {"......", "......", "......", "......"},
}

func TestResolvePlatformTint(t *testing.T) {
	lvl := mustLevel(t, colour.Green, ledgeLayers)
	box := component.Collidable{Width: 24, Height: 48}
	pos := cp.Vector{X: 64, Y: 70}
	vel := cp.Vector{Y: -8}

	tests := []struct {
		name       string
		tint       *colour.Colour
		wantHit    bool
		wantOffset float64
	}{
		{"matching_colour_blocks", tintOf(colour.Green), true, -6},
		{"other_colour_passes", tintOf(colour.Red), false, 0},
		{"no_colour_passes", nil, false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Resolve(lvl, pos, vel, box, tc.tint)
			if c.HitY != tc.wantHit {
				t.Fatalf("HitY = %v, want %v", c.HitY, tc.wantHit)
			}
			if c.Grounded != tc.wantHit {
				t.Fatalf("Grounded = %v, want %v", c.Grounded, tc.wantHit)
			}
			if c.Offset.Y != tc.wantOffset {
				t.Fatalf("Offset.Y = %v, want %v", c.Offset.Y, tc.wantOffset)
			}
			wantVY := vel.Y
			if tc.wantHit {
				wantVY = 0
			}
			if c.Velocity.Y != wantVY {
				t.Fatalf("Velocity.Y = %v, want %v", c.Velocity.Y, wantVY)
			}
		})
	}
}

func TestResolveLevelLayerAlwaysBlocks(t *testing.T) {
	lvl := mustLevel(t, colour.Green, ledgeLayers)
	box := component.Collidable{Width: 24, Height: 48}
	for _, tint := range []*colour.Colour{nil, tintOf(colour.Red), tintOf(colour.Green)} {
		c := Resolve(lvl, cp.Vector{X: 128, Y: 36}, cp.Vector{Y: -8}, box, tint)
		if !c.HitY || !c.Grounded || c.Velocity.Y != 0 {
			t.Fatalf("tint %v: expected grounded stop on the floor, got %+v", tint, c)
		}
		if c.Offset.Y != -4 {
			t.Fatalf("tint %v: Offset.Y = %v, want -4", tint, c.Offset.Y)
		}
	}
}

func TestResolveZeroVelocityKeepsGrounded(t *testing.T) {
	lvl := mustLevel(t, colour.Green, ledgeLayers)
	for _, grounded := range []bool{true, false} {
		box := component.Collidable{Width: 24, Height: 48, Grounded: grounded}
		c := Resolve(lvl, cp.Vector{X: 128, Y: 32}, cp.Vector{}, box, nil)
		if c.Grounded != grounded || c.HitX || c.HitY || c.Offset != (cp.Vector{}) {
			t.Fatalf("grounded=%v: unexpected contact %+v", grounded, c)
		}
	}
}

func TestResolveHorizontalWall(t *testing.T) {
	lvl := mustLevel(t, colour.Green, map[string][]string{
		"level":     {"......", ".O....", "OOOOOO"},
		"platforms": {"......", "......", "......"},
		"door":      {"......", "......", "......"},
	})
	box := component.Collidable{Width: 24, Height: 48, Grounded: true}

	c := Resolve(lvl, cp.Vector{X: 0, Y: 32}, cp.Vector{X: 8}, box, nil)
	if !c.HitX || c.Velocity.X != 0 || c.Offset.X != 8 {
		t.Fatalf("expected flush stop against the wall, got %+v", c)
	}
	if !c.Grounded {
		t.Fatalf("horizontal motion must not clear grounded")
	}

	// Already overlapping the wall: velocity stops, position is not pulled.
	c = Resolve(lvl, cp.Vector{X: 12, Y: 32}, cp.Vector{X: 8}, box, nil)
	if !c.HitX || c.Offset.X != 0 {
		t.Fatalf("expected stop without correction, got %+v", c)
	}
}

func TestResolveFallingOffLedgeClearsGrounded(t *testing.T) {
	lvl := mustLevel(t, colour.Green, ledgeLayers)
	box := component.Collidable{Width: 24, Height: 48, Grounded: true}
	c := Resolve(lvl, cp.Vector{X: 0, Y: 100}, cp.Vector{Y: -4}, box, nil)
	if c.Grounded || c.HitY {
		t.Fatalf("expected free fall, got %+v", c)
	}
}

func TestCollisionSystemCommitsPosition(t *testing.T) {
	lvl := mustLevel(t, colour.Green, ledgeLayers)
	tests := []struct {
		name  string
		tint  colour.Colour
		wantY float64
	}{
		{"lands_on_matching_platform", colour.Green, 64},
		{"falls_through_other_colour", colour.Blue, 62},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addLevel(t, w, lvl, -64)
			e := spawn(t, w, body{
				pos:  component.Position{Vector: cp.Vector{X: 64, Y: 70}},
				vel:  component.Velocity{Vector: cp.Vector{Y: -8}},
				box:  &component.Collidable{Width: 24, Height: 48},
				tint: tintOf(tc.tint),
			})

			NewCollisionSystem().Update(w)

			pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
			if pos.Y != tc.wantY {
				t.Fatalf("Y = %v, want %v", pos.Y, tc.wantY)
			}
		})
	}
}

func TestCollisionSystemKillPlane(t *testing.T) {
	lvl := mustLevel(t, colour.Green, map[string][]string{
		"level":     {"....", "...."},
		"platforms": {"....", "...."},
		"door":      {"....", "...."},
	})
	w := ecs.NewWorld()
	addLevel(t, w, lvl, -64)
	geomEnt, _ := w.First(component.LevelGeometryComponent.Kind())
	geom, _ := ecs.Get(w, geomEnt, component.LevelGeometryComponent.Kind())
	geom.Spawn = cp.Vector{X: 32, Y: 32}

	e := spawn(t, w, body{
		pos: component.Position{Vector: cp.Vector{X: 10, Y: -60}},
		vel: component.Velocity{Vector: cp.Vector{X: 1, Y: -8}},
		box: &component.Collidable{Width: 24, Height: 48},
	})
	sys := NewCollisionSystem()
	sys.Update(w)

	pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if pos.Vector != geom.Spawn {
		t.Fatalf("expected respawn at %v, got %v", geom.Spawn, pos.Vector)
	}
	if vel.Vector != (cp.Vector{}) {
		t.Fatalf("expected zero velocity, got %v", vel.Vector)
	}
	if sys.Respawns() != 1 {
		t.Fatalf("Respawns = %d, want 1", sys.Respawns())
	}
}
