package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/colourblind/level"
)

var (
	imagesMu sync.Mutex
	images   = map[string]*ebiten.Image{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	imagesMu.Lock()
	defer imagesMu.Unlock()
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	imagesMu.Lock()
	defer imagesMu.Unlock()
	return images[key]
}

// LoadImage decodes path from fsys, or from disk when fsys is nil, and
// caches it by path. Read and decode failures are *level.LoadError.
func LoadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("render: empty image path")
	}
	if img := GetImage(path); img != nil {
		return img, nil
	}
	var (
		data []byte
		err  error
	)
	if fsys != nil {
		data, err = fs.ReadFile(fsys, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &level.LoadError{Path: path, Err: fmt.Errorf("read image: %w", err)}
	}
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &level.LoadError{Path: path, Err: fmt.Errorf("decode image: %w", err)}
	}
	img := ebiten.NewImageFromImage(im)
	RegisterImage(path, img)
	return img, nil
}
