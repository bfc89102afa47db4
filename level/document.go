package level

import (
	"fmt"
	"slices"
)

// Cell is a single tile slot in a layer. Unoccupied cells are the zero value.
type Cell struct {
	Occupied bool
	TileID   uint32
	FlipH    bool
	FlipV    bool
	FlipD    bool
}

// DocumentLayer is one named layer of a tile-map document. Cells are
// row-major with the top row first, the order tile editors write them in.
type DocumentLayer struct {
	Name  string
	Cells []Cell
}

// Document is the format-independent form of a tile map. LoadTMX produces
// one from a Tiled file; tests build them with ParseRows.
type Document struct {
	Name       string
	Width      int
	Height     int
	TileWidth  float64
	TileHeight float64
	Layers     []DocumentLayer
}

func (d *Document) layer(name string) *DocumentLayer {
	for i := range d.Layers {
		if d.Layers[i].Name == name {
			return &d.Layers[i]
		}
	}
	return nil
}

// ParseRows builds a layer from text rows, top row first. Any rune other than
// '.' or ' ' is an occupied cell.
func ParseRows(name string, rows ...string) (DocumentLayer, error) {
	layer := DocumentLayer{Name: name}
	width := -1
	for i, row := range rows {
		runes := []rune(row)
		if width >= 0 && len(runes) != width {
			return DocumentLayer{}, fmt.Errorf("%w: layer %q row %d has %d cells, want %d", ErrMalformedTiles, name, i, len(runes), width)
		}
		width = len(runes)
		for _, r := range runes {
			if r == '.' || r == ' ' {
				layer.Cells = append(layer.Cells, Cell{})
				continue
			}
			layer.Cells = append(layer.Cells, Cell{Occupied: true, TileID: 1})
		}
	}
	return layer, nil
}

// MustParseRows is ParseRows for fixtures known to be well formed.
func MustParseRows(name string, rows ...string) DocumentLayer {
	layer, err := ParseRows(name, rows...)
	if err != nil {
		panic(err)
	}
	return layer
}

// NewDocumentRows builds a document whose layers are all given as text rows.
// Every layer must have the same number of rows and columns.
func NewDocumentRows(name string, tileSize float64, layers map[string][]string) (Document, error) {
	doc := Document{Name: name, TileWidth: tileSize, TileHeight: tileSize}
	for _, layerName := range sortedKeys(layers) {
		rows := layers[layerName]
		layer, err := ParseRows(layerName, rows...)
		if err != nil {
			return Document{}, err
		}
		height := len(rows)
		width := 0
		if height > 0 {
			width = len([]rune(rows[0]))
		}
		if doc.Width == 0 && doc.Height == 0 {
			doc.Width, doc.Height = width, height
		} else if width != doc.Width || height != doc.Height {
			return Document{}, fmt.Errorf("%w: layer %q is %dx%d, want %dx%d", ErrMalformedTiles, layerName, width, height, doc.Width, doc.Height)
		}
		doc.Layers = append(doc.Layers, layer)
	}
	return doc, nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
