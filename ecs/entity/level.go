package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/level"
	"github.com/milk9111/colourblind/prefabs"
)

// SpawnPoint converts a tile coordinate to the world position of that
// tile's bottom-left corner.
func SpawnPoint(lvl *level.Level, tile prefabs.TileSpec) cp.Vector {
	return cp.Vector{X: float64(tile.Col) * lvl.TileWidth, Y: float64(tile.Row) * lvl.TileHeight}
}

// NewLevel creates the singleton level entity carrying the geometry and the
// per-tick light list, then moves every player to the spawn point.
func NewLevel(w *ecs.World, lvl *level.Level, index int, spawn prefabs.TileSpec, killY float64) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("level: nil level")
	}
	if _, ok := w.First(component.LevelGeometryComponent.Kind()); ok {
		return 0, fmt.Errorf("level: level entity already exists")
	}
	e := ecs.CreateEntity(w)
	geom := &component.LevelGeometry{Level: lvl, Index: index, Spawn: SpawnPoint(lvl, spawn), KillY: killY}
	if err := ecs.Add(w, e, component.LevelGeometryComponent.Kind(), geom); err != nil {
		return 0, fmt.Errorf("level: add geometry: %w", err)
	}
	if err := ecs.Add(w, e, component.LightListComponent.Kind(), &component.LightList{}); err != nil {
		return 0, fmt.Errorf("level: add light list: %w", err)
	}
	respawnPlayers(w, geom.Spawn)
	return e, nil
}

// ReplaceLevel swaps in the next level. The player entity persists: it is
// moved to the new spawn with zero velocity and an idle flashlight.
func ReplaceLevel(w *ecs.World, lvl *level.Level, index int, spawn prefabs.TileSpec) error {
	if lvl == nil {
		return fmt.Errorf("level: nil level")
	}
	e, ok := w.First(component.LevelGeometryComponent.Kind())
	if !ok {
		return fmt.Errorf("level: no level entity")
	}
	geom, _ := ecs.Get(w, e, component.LevelGeometryComponent.Kind())
	geom.Level = lvl
	geom.Index = index
	geom.Spawn = SpawnPoint(lvl, spawn)
	if lights, ok := ecs.Get(w, e, component.LightListComponent.Kind()); ok {
		lights.Clear()
	}
	respawnPlayers(w, geom.Spawn)
	return nil
}

func respawnPlayers(w *ecs.World, spawn cp.Vector) {
	for _, p := range w.Query(component.PlayerTagComponent.Kind()) {
		if pos, ok := ecs.Get(w, p, component.PositionComponent.Kind()); ok {
			pos.Vector = spawn
		}
		if vel, ok := ecs.Get(w, p, component.VelocityComponent.Kind()); ok {
			vel.Vector = cp.Vector{}
		}
		if f, ok := ecs.Get(w, p, component.FlashlightComponent.Kind()); ok {
			f.Reset()
		}
		if col, ok := ecs.Get(w, p, component.CollidableComponent.Kind()); ok {
			col.Grounded = false
		}
		ecs.Remove(w, p, component.LevelChangeRequestComponent.Kind())
	}
}

// TakeLevelChangeRequest removes and returns the first pending request.
func TakeLevelChangeRequest(w *ecs.World) (component.LevelChangeRequest, bool) {
	for _, e := range w.Query(component.LevelChangeRequestComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.LevelChangeRequestComponent.Kind())
		if !ok {
			continue
		}
		out := *req
		ecs.Remove(w, e, component.LevelChangeRequestComponent.Kind())
		return out, true
	}
	return component.LevelChangeRequest{}, false
}
