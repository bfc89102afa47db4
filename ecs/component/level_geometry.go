package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/colourblind/level"
)

// LevelGeometry is the singleton holding the loaded level.
type LevelGeometry struct {
	Level *level.Level
	Index int
	Spawn cp.Vector
	// KillY is the height below which entities respawn.
	KillY float64
}

var LevelGeometryComponent = NewComponent[LevelGeometry]()
