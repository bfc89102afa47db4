package component

import "github.com/milk9111/colourblind/colour"

// Coloured holds an entity's active colour. Platforms of the same colour are
// solid for it.
type Coloured struct {
	Colour colour.Colour
}

var ColouredComponent = NewComponent[Coloured]()
