package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is the image drawn at an entity's position. When UseSource is set
// only Source is drawn, which is how animation frames index a sheet.
type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	FacingLeft bool
	// Tinted sprites are multiplied by the entity's Coloured colour.
	Tinted bool
}

var SpriteComponent = NewComponent[Sprite]()

// Frame returns the image region to draw, or nil when there is none.
func (s *Sprite) Frame() *ebiten.Image {
	if s.Image == nil {
		return nil
	}
	if !s.UseSource {
		return s.Image
	}
	sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image)
	if !ok {
		return nil
	}
	return sub
}
