package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/level"
	"github.com/milk9111/colourblind/logger"
	"go.uber.org/zap"
)

// Contact is the outcome of resolving one entity against the level.
type Contact struct {
	Velocity cp.Vector
	// Offset moves the entity flush against what it hit.
	Offset   cp.Vector
	Grounded bool
	HitX     bool
	HitY     bool
}

// Resolve tests the single tile each axis would lead into, Y first. A tile
// on the level layer always blocks; a platform tile blocks only when tint is
// set and equals the platform's colour. A zero velocity on an axis skips the
// test, and a zero vertical velocity leaves grounded unchanged.
func Resolve(lvl *level.Level, pos, vel cp.Vector, box component.Collidable, tint *colour.Colour) Contact {
	c := Contact{Velocity: vel, Grounded: box.Grounded}
	if lvl == nil {
		return c
	}

	if vel.Y != 0 {
		probeY := math.Max(pos.Y+vel.Y, 0)
		if vel.Y > 0 {
			probeY += box.Height
		}
		col, row := tileOf(lvl, math.Max(pos.X+box.Width/2, 0), probeY)
		if blocks(lvl, col, row, tint) {
			c.HitY = true
			if vel.Y < 0 {
				c.Offset.Y = flush(float64(row+1)*lvl.TileHeight-pos.Y, vel.Y)
			} else {
				c.Offset.Y = flush(float64(row)*lvl.TileHeight-box.Height-pos.Y, vel.Y)
			}
			c.Grounded = vel.Y < 0
			c.Velocity.Y = 0
		} else {
			c.Grounded = false
		}
	}

	if vel.X != 0 {
		y := pos.Y + c.Offset.Y
		probeX := math.Max(pos.X+vel.X, 0)
		if vel.X > 0 {
			probeX += box.Width
		}
		col, row := tileOf(lvl, probeX, math.Max(y+box.Height/2, 0))
		if blocks(lvl, col, row, tint) {
			c.HitX = true
			if vel.X < 0 {
				c.Offset.X = flush(float64(col+1)*lvl.TileWidth-pos.X, vel.X)
			} else {
				c.Offset.X = flush(float64(col)*lvl.TileWidth-box.Width-pos.X, vel.X)
			}
			c.Velocity.X = 0
		}
	}
	return c
}

func tileOf(lvl *level.Level, x, y float64) (int, int) {
	return int(x / lvl.TileWidth), int(y / lvl.TileHeight)
}

func blocks(lvl *level.Level, col, row int, tint *colour.Colour) bool {
	if lvl.Occupied(level.LayerLevel, col, row) {
		return true
	}
	if tint == nil {
		return false
	}
	pc, ok := lvl.PlatformColour(col, row)
	return ok && pc == *tint
}

// flush keeps a contact correction only when it moves the entity toward the
// obstacle by no more than it was travelling. Anything else means the entity
// already overlaps the tile, and it is left where it is.
func flush(d, v float64) float64 {
	if d == 0 || math.Signbit(d) != math.Signbit(v) || math.Abs(d) > math.Abs(v) {
		return 0
	}
	return d
}

// CollisionSystem corrects velocities against the current level, commits
// position += velocity for every moving entity, and respawns entities that
// fall below the kill plane.
type CollisionSystem struct {
	log      *zap.Logger
	respawns int
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{log: logger.Named("collision")}
}

// Respawns counts kill-plane respawns since the system was created.
func (s *CollisionSystem) Respawns() int {
	if s == nil {
		return 0
	}
	return s.respawns
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var geom *component.LevelGeometry
	if e, ok := w.First(component.LevelGeometryComponent.Kind()); ok {
		geom, _ = ecs.Get(w, e, component.LevelGeometryComponent.Kind())
	}
	var lvl *level.Level
	if geom != nil {
		lvl = geom.Level
	}

	ecs.ForEach2(w, component.PositionComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, pos *component.Position, vel *component.Velocity) {
		if box, ok := ecs.Get(w, e, component.CollidableComponent.Kind()); ok && lvl != nil {
			var tint *colour.Colour
			if c, ok := ecs.Get(w, e, component.ColouredComponent.Kind()); ok {
				tint = &c.Colour
			}
			contact := Resolve(lvl, pos.Vector, vel.Vector, *box, tint)
			vel.Vector = contact.Velocity
			pos.Vector = pos.Vector.Add(contact.Offset)
			box.Grounded = contact.Grounded
		}

		pos.Vector = pos.Vector.Add(vel.Vector)

		if geom != nil && lvl != nil && pos.Y < geom.KillY {
			s.respawns++
			s.log.Info("respawn", zap.Stringer("entity", e), zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
			pos.Vector = geom.Spawn
			vel.Vector = cp.Vector{}
		}
	})
}
