package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/input"
	"github.com/milk9111/colourblind/logger"
	"go.uber.org/zap"
)

// DebugSystem handles developer keys for the player: one puts the player
// back at the spawn point, the other logs its coordinates.
type DebugSystem struct {
	src    input.Source
	reset  input.KeySet
	coords input.KeySet
	log    *zap.Logger
}

func NewDebugSystem(src input.Source, reset, coords input.KeySet) *DebugSystem {
	return &DebugSystem{src: src, reset: reset, coords: coords, log: logger.Named("debug")}
}

func (d *DebugSystem) Update(w *ecs.World) {
	if d == nil || w == nil || d.src == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pos, okPos := ecs.Get(w, player, component.PositionComponent.Kind())
	vel, okVel := ecs.Get(w, player, component.VelocityComponent.Kind())
	if !okPos || !okVel {
		return
	}

	if d.reset.Pressed(d.src) {
		if e, ok := w.First(component.LevelGeometryComponent.Kind()); ok {
			if geom, _ := ecs.Get(w, e, component.LevelGeometryComponent.Kind()); geom != nil {
				pos.Vector = geom.Spawn
				vel.Vector = cp.Vector{}
			}
		}
	}
	if d.coords.Pressed(d.src) {
		d.log.Debug("player coords", zap.Float64("x", pos.X), zap.Float64("y", pos.Y), zap.Float64("vx", vel.X), zap.Float64("vy", vel.Y))
	}
}
