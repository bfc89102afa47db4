package component

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/colourblind/common"
)

// Humanoid animation names picked by AnimationSystem.
const (
	AnimStand = "stand"
	AnimRun   = "run"
	AnimJump  = "jump"
)

type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int // start column (frame 0)
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
	PingPong   bool
}

// Rect returns the sheet rectangle of frame.
func (d AnimationDef) Rect(frame int) image.Rectangle {
	x := (d.ColStart + frame) * d.FrameW
	y := d.Row * d.FrameH
	return image.Rect(x, y, x+d.FrameW, y+d.FrameH)
}

type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
	Playing    bool
	// dir is the ping-pong direction, +1 or -1.
	dir int
}

var AnimationComponent = NewComponent[Animation]()

// NewAnimation validates defs and starts playing current. Every frame of a
// sheet must share one size.
func NewAnimation(sheet *ebiten.Image, defs map[string]AnimationDef, current string) (Animation, error) {
	if len(defs) == 0 {
		return Animation{}, common.NewConfigError("animation", "defs", "no animations defined")
	}
	w, h := -1, -1
	for name, def := range defs {
		if def.FrameW <= 0 || def.FrameH <= 0 {
			return Animation{}, common.NewConfigError("animation", name, fmt.Sprintf("frame size %dx%d must be positive", def.FrameW, def.FrameH))
		}
		if def.FrameCount <= 0 {
			return Animation{}, common.NewConfigError("animation", name, "frame_count must be positive")
		}
		if w < 0 {
			w, h = def.FrameW, def.FrameH
		} else if def.FrameW != w || def.FrameH != h {
			return Animation{}, common.NewConfigError("animation", name, fmt.Sprintf("frame size %dx%d does not match %dx%d", def.FrameW, def.FrameH, w, h))
		}
	}
	if _, ok := defs[current]; !ok {
		return Animation{}, common.NewConfigError("animation", "current", fmt.Sprintf("unknown animation %q", current))
	}
	return Animation{Sheet: sheet, Defs: defs, Current: current, Playing: true, dir: 1}, nil
}

// Play switches to name, restarting it only when it changes.
func (a *Animation) Play(name string) {
	if a.Current == name {
		return
	}
	if _, ok := a.Defs[name]; !ok {
		return
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
	a.dir = 1
}

// Advance moves the current animation forward by dt seconds.
func (a *Animation) Advance(dt float64) {
	def, ok := a.Defs[a.Current]
	if !ok || !a.Playing || def.FrameCount <= 1 || def.FPS <= 0 {
		return
	}
	a.FrameTimer += dt
	step := 1 / def.FPS
	for a.FrameTimer >= step {
		a.FrameTimer -= step
		a.step(def)
	}
}

func (a *Animation) step(def AnimationDef) {
	if a.dir == 0 {
		a.dir = 1
	}
	next := a.Frame + a.dir
	switch {
	case next >= 0 && next < def.FrameCount:
		a.Frame = next
	case def.PingPong:
		a.dir = -a.dir
		a.Frame += a.dir
	case def.Loop:
		a.Frame = 0
	default:
		a.Frame = def.FrameCount - 1
		a.Playing = false
	}
}
