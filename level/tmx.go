package level

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadTMX reads a Tiled map from disk and builds a Level from it.
func LoadTMX(path string, picker ColourSource) (*Level, error) {
	m, err := tiled.LoadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read tmx: %w", err)}
	}
	return Load(documentFromMap(path, m), picker)
}

// LoadFS reads a Tiled map named name from fsys.
func LoadFS(fsys fs.FS, name string, picker ColourSource) (*Level, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("read tmx: %w", err)}
	}
	return Load(documentFromMap(name, m), picker)
}

func documentFromMap(name string, m *tiled.Map) Document {
	doc := Document{
		Name:       name,
		Width:      m.Width,
		Height:     m.Height,
		TileWidth:  float64(m.TileWidth),
		TileHeight: float64(m.TileHeight),
	}
	for _, layer := range m.Layers {
		if layer == nil {
			continue
		}
		dl := DocumentLayer{Name: layer.Name, Cells: make([]Cell, len(layer.Tiles))}
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() {
				continue
			}
			dl.Cells[i] = Cell{
				Occupied: true,
				TileID:   tile.ID,
				FlipH:    tile.HorizontalFlip,
				FlipV:    tile.VerticalFlip,
				FlipD:    tile.DiagonalFlip,
			}
		}
		doc.Layers = append(doc.Layers, dl)
	}
	return doc
}

// Discover probes fsys for level1.tmx, level2.tmx, ... and returns the names
// found before the first gap.
func Discover(fsys fs.FS) ([]string, error) {
	var names []string
	for i := 1; ; i++ {
		name := fmt.Sprintf("level%d.tmx", i)
		if _, err := fs.Stat(fsys, name); err != nil {
			break
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, &LoadError{Path: ".", Err: ErrNoLevels}
	}
	return names, nil
}
