package component

import "github.com/jakecoffman/cp"

// Position is the world-space bottom-left corner of an entity. World space
// is y-up.
type Position struct {
	cp.Vector
}

var PositionComponent = NewComponent[Position]()

// Velocity is a per-tick displacement in world units.
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()

// Weight scales gravity. Entities without it float.
type Weight struct {
	Factor float64
}

var WeightComponent = NewComponent[Weight]()

type Facing struct {
	Left bool
}

var FacingComponent = NewComponent[Facing]()
