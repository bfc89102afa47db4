package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/colourblind/colour"
	"golang.org/x/image/font/basicfont"
)

// Status is the player-facing state shown in the corner of the screen.
type Status struct {
	Level      string
	Index      int
	Total      int
	Colour     colour.Colour
	Flashlight FlashlightStatus
	Remaining  float64
	Respawns   int
}

type FlashlightStatus int

const (
	FlashlightReady FlashlightStatus = iota
	FlashlightOn
	FlashlightCooling
)

func (s Status) Lines() []string {
	light := "ready"
	switch s.Flashlight {
	case FlashlightOn:
		light = fmt.Sprintf("on %.1fs", s.Remaining)
	case FlashlightCooling:
		light = fmt.Sprintf("cooling %.1fs", s.Remaining)
	}
	lines := []string{
		fmt.Sprintf("level %d/%d  %s", s.Index+1, s.Total, s.Level),
		fmt.Sprintf("colour %s  light %s", s.Colour, light),
	}
	if s.Respawns > 0 {
		lines = append(lines, fmt.Sprintf("respawns %d", s.Respawns))
	}
	return lines
}

// HUD draws status text with the 7x13 bitmap font.
type HUD struct {
	face *text.GoXFace
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(dst *ebiten.Image, s Status) {
	if h == nil || dst == nil {
		return
	}
	for i, line := range s.Lines() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*16))
		c := color.Color(color.White)
		if i == 1 {
			c = s.Colour.NRGBA()
		}
		op.ColorScale.ScaleWithColor(c)
		text.Draw(dst, line, h.face, op)
	}
}
