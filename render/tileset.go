package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tileset holds the textures for each layer. Platform runs use the start,
// middle and end pieces; a single-cell run uses Single.
type Tileset struct {
	Solid          Region
	Door           Region
	PlatformStart  Region
	PlatformMiddle Region
	PlatformEnd    Region
	PlatformSingle Region
}

// PlatformPiece picks the texture for the i-th cell of a run of width n.
func (t Tileset) PlatformPiece(i, n int) Region {
	switch {
	case n == 1:
		return t.PlatformSingle
	case i == 0:
		return t.PlatformStart
	case i == n-1:
		return t.PlatformEnd
	default:
		return t.PlatformMiddle
	}
}

// NewTileset draws simple textures of the given size. Platform textures are
// white so the reveal shader can tint them.
func NewTileset(w, h int) Tileset {
	solid := tile(w, h, color.NRGBA{0x5a, 0x5a, 0x66, 0xff}, color.NRGBA{0x3c, 0x3c, 0x44, 0xff}, true, true)
	door := tile(w, h, color.NRGBA{0x7a, 0x4e, 0x2c, 0xff}, color.NRGBA{0x4a, 0x2e, 0x1a, 0xff}, true, true)
	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	edge := color.NRGBA{0xb0, 0xb0, 0xb0, 0xff}
	return Tileset{
		Solid:          Region{Name: "solid", Image: solid},
		Door:           Region{Name: "door", Image: door},
		PlatformStart:  Region{Name: "platform_start", Image: tile(w, h, white, edge, true, false)},
		PlatformMiddle: Region{Name: "platform_middle", Image: tile(w, h, white, edge, false, false)},
		PlatformEnd:    Region{Name: "platform_end", Image: tile(w, h, white, edge, false, true)},
		PlatformSingle: Region{Name: "platform_single", Image: tile(w, h, white, edge, true, true)},
	}
}

func tile(w, h int, fill, border color.NRGBA, left, right bool) *ebiten.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fill
			if y < 2 || y >= h-2 || (left && x < 2) || (right && x >= w-2) {
				c = border
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return ebiten.NewImageFromImage(img)
}

// PlaceholderSheet draws a white humanoid sheet with frames columns, used
// when a prefab names no sheet image.
func PlaceholderSheet(frameW, frameH, frames int) *ebiten.Image {
	img := image.NewNRGBA(image.Rect(0, 0, frameW*frames, frameH))
	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	for f := 0; f < frames; f++ {
		ox := f * frameW
		// Legs spread on odd frames.
		spread := (f % 2) * frameW / 8
		for y := 0; y < frameH; y++ {
			for x := frameW / 4; x < frameW*3/4; x++ {
				body := y < frameH*2/3
				leg := !body && (x < frameW/2-frameW/16-spread || x > frameW/2+frameW/16+spread)
				if body || leg {
					img.SetNRGBA(ox+x, y, white)
				}
			}
		}
	}
	return ebiten.NewImageFromImage(img)
}
