package level

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTiles is returned when a layer's cell count does not match the
// map dimensions or the dimensions are not positive.
var ErrMalformedTiles = errors.New("level: malformed tile data")

// ErrNoLevels is returned by discovery when not even level1 exists.
var ErrNoLevels = errors.New("level: no levels found")

// LoadError wraps every failure to turn a tile-map document into a Level.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("level: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingLayerError names every required layer absent from a document.
type MissingLayerError struct {
	Path   string
	Layers []string
}

func (e *MissingLayerError) Error() string {
	quoted := make([]string, len(e.Layers))
	for i, l := range e.Layers {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	return fmt.Sprintf("missing required layer(s) %s in %s", strings.Join(quoted, ", "), e.Path)
}
