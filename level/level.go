// Package level turns a tile-map document into the static description the
// collision and render systems read every frame: the unconditional "level"
// layer, the colour-keyed "platforms" layer and the "door" exit region.
package level

import (
	"fmt"
	"math"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/logger"
	"go.uber.org/zap"
)

// LayerID identifies one of the required layers.
type LayerID int

const (
	LayerLevel LayerID = iota
	LayerPlatforms
	LayerDoor

	layerCount
)

// RequiredLayers are the layer names every level document must contain, in
// LayerID order.
var RequiredLayers = [layerCount]string{"level", "platforms", "door"}

func (id LayerID) String() string {
	if id < 0 || id >= layerCount {
		return fmt.Sprintf("layer(%d)", int(id))
	}
	return RequiredLayers[id]
}

// Coord is a tile coordinate. Row 0 is the bottom row of the map.
type Coord struct {
	Col int
	Row int
}

// Platform is a maximal horizontal run of occupied platform cells.
type Platform struct {
	Row    int
	Col    int
	Width  int
	Colour colour.Colour
}

// Level is the loaded, read-only description of one map. World space is
// y-up: tile (col, row) covers [col*TileWidth, (col+1)*TileWidth) on x and
// [row*TileHeight, (row+1)*TileHeight) on y.
type Level struct {
	Name       string
	Width      int
	Height     int
	TileWidth  float64
	TileHeight float64

	layers    [layerCount][]Cell
	colours   []colour.Colour
	platforms []Platform
	door      cp.BB
	hasDoor   bool
}

// ColourSource picks the colour of each new platform run.
type ColourSource interface {
	Next() colour.Colour
}

// Load validates doc and builds a Level, colouring platform runs with picker.
// A nil picker draws from an unseeded source. Every failure is a *LoadError;
// a missing layer wraps *MissingLayerError.
func Load(doc Document, picker ColourSource) (*Level, error) {
	if picker == nil {
		picker = (*colour.Picker)(nil)
	}
	var missing []string
	for _, name := range RequiredLayers {
		if doc.layer(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &LoadError{Path: doc.Name, Err: &MissingLayerError{Path: doc.Name, Layers: missing}}
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, &LoadError{Path: doc.Name, Err: fmt.Errorf("%w: size %dx%d", ErrMalformedTiles, doc.Width, doc.Height)}
	}
	if doc.TileWidth <= 0 || doc.TileHeight <= 0 {
		return nil, &LoadError{Path: doc.Name, Err: fmt.Errorf("%w: tile size %vx%v", ErrMalformedTiles, doc.TileWidth, doc.TileHeight)}
	}

	lvl := &Level{
		Name:       doc.Name,
		Width:      doc.Width,
		Height:     doc.Height,
		TileWidth:  doc.TileWidth,
		TileHeight: doc.TileHeight,
	}

	size := doc.Width * doc.Height
	for id, name := range RequiredLayers {
		src := doc.layer(name)
		if len(src.Cells) != size {
			return nil, &LoadError{Path: doc.Name, Err: fmt.Errorf("%w: layer %q has %d cells, want %d", ErrMalformedTiles, name, len(src.Cells), size)}
		}
		cells := make([]Cell, size)
		for docRow := 0; docRow < doc.Height; docRow++ {
			row := doc.Height - 1 - docRow
			copy(cells[row*doc.Width:(row+1)*doc.Width], src.Cells[docRow*doc.Width:(docRow+1)*doc.Width])
		}
		lvl.layers[id] = cells
	}

	lvl.colourPlatforms(picker)
	lvl.findDoor()

	log := logger.Named("level")
	log.Debug("level loaded",
		zap.String("name", lvl.Name),
		zap.Int("width", lvl.Width),
		zap.Int("height", lvl.Height),
		zap.Float64("tile_width", lvl.TileWidth),
		zap.Float64("tile_height", lvl.TileHeight),
		zap.Int("platforms", len(lvl.platforms)),
	)
	if lvl.hasDoor {
		log.Debug("door region", zap.String("name", lvl.Name), zap.Float64("l", lvl.door.L), zap.Float64("b", lvl.door.B), zap.Float64("r", lvl.door.R), zap.Float64("t", lvl.door.T))
	} else {
		log.Warn("level has no door cells", zap.String("name", lvl.Name))
	}
	return lvl, nil
}

// colourPlatforms scans the platform layer top row first, left to right, and
// gives every run of contiguous occupied cells one freshly picked colour.
// Runs never continue across rows, so vertically stacked runs are coloured
// independently. Within a row a run avoids every colour already used there;
// once all are used it only avoids the colour of the run before it.
func (l *Level) colourPlatforms(picker ColourSource) {
	cells := l.layers[LayerPlatforms]
	l.colours = make([]colour.Colour, len(cells))
	l.platforms = l.platforms[:0]

	for row := l.Height - 1; row >= 0; row-- {
		inRun := false
		var current colour.Colour
		var used []colour.Colour
		for col := 0; col < l.Width; col++ {
			idx := l.index(col, row)
			if !cells[idx].Occupied {
				inRun = false
				continue
			}
			if !inRun {
				inRun = true
				current = pickRunColour(picker, used)
				used = append(used, current)
				l.platforms = append(l.platforms, Platform{Row: row, Col: col, Colour: current})
			}
			l.platforms[len(l.platforms)-1].Width++
			l.colours[idx] = current
		}
	}
}

// colourChooser is a ColourSource that can draw from a restricted set.
type colourChooser interface {
	Choose(allowed []colour.Colour) colour.Colour
}

// maxDraws bounds redraws from a source that cannot restrict its choice.
const maxDraws = 16

// pickRunColour picks a colour for a new run given the colours already used
// in its row, in order.
func pickRunColour(picker ColourSource, used []colour.Colour) colour.Colour {
	allowed := allowedColours(used)
	if c, ok := picker.(colourChooser); ok {
		return c.Choose(allowed)
	}
	for range maxDraws {
		c := picker.Next()
		if slices.Contains(allowed, c) {
			return c
		}
	}
	return allowed[0]
}

func allowedColours(used []colour.Colour) []colour.Colour {
	var allowed []colour.Colour
	for _, c := range colour.Playable {
		if !slices.Contains(used, c) {
			allowed = append(allowed, c)
		}
	}
	if len(allowed) > 0 {
		return allowed
	}
	prev := used[len(used)-1]
	for _, c := range colour.Playable {
		if c != prev {
			allowed = append(allowed, c)
		}
	}
	return allowed
}

// findDoor takes the first occupied door cell in scan order as the start
// corner and the last occupied cell of the final run as the end corner.
// Only single rectangular doors are described correctly.
func (l *Level) findDoor() {
	cells := l.layers[LayerDoor]
	var start, end Coord
	found := false

	for row := l.Height - 1; row >= 0; row-- {
		inRun := false
		for col := 0; col < l.Width; col++ {
			occupied := cells[l.index(col, row)].Occupied
			switch {
			case occupied && !found:
				start = Coord{Col: col, Row: row}
				end = start
				found = true
				inRun = true
			case occupied:
				inRun = true
			case inRun:
				end = Coord{Col: col - 1, Row: row}
				inRun = false
			}
		}
		if inRun {
			end = Coord{Col: l.Width - 1, Row: row}
		}
	}
	if !found {
		return
	}
	l.hasDoor = true
	l.door = cp.BB{
		L: float64(min(start.Col, end.Col)),
		B: float64(min(start.Row, end.Row)),
		R: float64(max(start.Col, end.Col) + 1),
		T: float64(max(start.Row, end.Row) + 1),
	}
}

func (l *Level) index(col, row int) int {
	return row*l.Width + col
}

// InBounds reports whether (col, row) lies inside the map.
func (l *Level) InBounds(col, row int) bool {
	return l != nil && col >= 0 && row >= 0 && col < l.Width && row < l.Height
}

// CellAt returns the cell of layer at (col, row). Out-of-bounds coordinates
// are reported as unoccupied. An unknown layer id is a programming error.
func (l *Level) CellAt(layer LayerID, col, row int) (Cell, bool) {
	if layer < 0 || layer >= layerCount {
		panic(fmt.Sprintf("level: unknown layer %d", int(layer)))
	}
	if !l.InBounds(col, row) {
		return Cell{}, false
	}
	c := l.layers[layer][l.index(col, row)]
	return c, c.Occupied
}

// Occupied reports whether layer has a tile at (col, row).
func (l *Level) Occupied(layer LayerID, col, row int) bool {
	_, ok := l.CellAt(layer, col, row)
	return ok
}

// PlatformColour returns the colour assigned to the platform cell at
// (col, row), or false if there is no platform there.
func (l *Level) PlatformColour(col, row int) (colour.Colour, bool) {
	if !l.Occupied(LayerPlatforms, col, row) {
		return 0, false
	}
	return l.colours[l.index(col, row)], true
}

// Platforms returns the coloured runs in scan order.
func (l *Level) Platforms() []Platform {
	out := make([]Platform, len(l.platforms))
	copy(out, l.platforms)
	return out
}

// DoorRegion returns the exit rectangle in tile coordinates.
func (l *Level) DoorRegion() (cp.BB, bool) {
	return l.door, l.hasDoor
}

// DoorBounds returns the exit rectangle in world units.
func (l *Level) DoorBounds() (cp.BB, bool) {
	if !l.hasDoor {
		return cp.BB{}, false
	}
	return cp.BB{
		L: l.door.L * l.TileWidth,
		B: l.door.B * l.TileHeight,
		R: l.door.R * l.TileWidth,
		T: l.door.T * l.TileHeight,
	}, true
}

// TileAt converts a world position to the tile containing it.
func (l *Level) TileAt(x, y float64) (col, row int) {
	return int(math.Floor(x / l.TileWidth)), int(math.Floor(y / l.TileHeight))
}

// PixelWidth is the map width in world units.
func (l *Level) PixelWidth() float64 {
	return float64(l.Width) * l.TileWidth
}

// PixelHeight is the map height in world units.
func (l *Level) PixelHeight() float64 {
	return float64(l.Height) * l.TileHeight
}
