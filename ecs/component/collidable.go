package component

import "github.com/jakecoffman/cp"

// Collidable is an axis-aligned box anchored at the entity's Position.
type Collidable struct {
	Width    float64
	Height   float64
	Grounded bool
}

var CollidableComponent = NewComponent[Collidable]()

// Bounds returns the world-space box for an entity at pos.
func (c Collidable) Bounds(pos cp.Vector) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: pos.X + c.Width/2, Y: pos.Y + c.Height/2}, c.Width/2, c.Height/2)
}
