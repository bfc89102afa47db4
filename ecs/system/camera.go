package system

import (
	"github.com/milk9111/colourblind/common"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
)

// CameraSystem eases the camera toward the centre of the FocusTaker and
// keeps the view inside the level.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Snap moves the camera straight onto its target, e.g. after a level change.
func (cs *CameraSystem) Snap(w *ecs.World) {
	cs.update(w, 1)
}

func (cs *CameraSystem) Update(w *ecs.World) {
	cs.update(w, -1)
}

func (cs *CameraSystem) update(w *ecs.World, factor float64) {
	if cs == nil || w == nil {
		return
	}
	if !w.IsAlive(cs.camEntity) {
		cs.camEntity, _ = w.First(component.CameraComponent.Kind())
	}
	if !w.IsAlive(cs.targetEntity) {
		cs.targetEntity, _ = w.First(component.FocusTakerComponent.Kind())
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camPos, ok := ecs.Get(w, cs.camEntity, component.PositionComponent.Kind())
	if !ok {
		return
	}
	targetPos, ok := ecs.Get(w, cs.targetEntity, component.PositionComponent.Kind())
	if !ok {
		return
	}

	tx, ty := targetPos.X, targetPos.Y
	if box, ok := ecs.Get(w, cs.targetEntity, component.CollidableComponent.Kind()); ok {
		tx += box.Width / 2
		ty += box.Height / 2
	}

	if factor < 0 {
		factor = cam.Smoothness
	}
	x := common.Lerp(camPos.X, tx, factor)
	y := common.Lerp(camPos.Y, ty, factor)

	if geomEnt, ok := w.First(component.LevelGeometryComponent.Kind()); ok {
		if geom, _ := ecs.Get(w, geomEnt, component.LevelGeometryComponent.Kind()); geom != nil && geom.Level != nil {
			zoom := cam.Zoom
			if zoom <= 0 {
				zoom = 1
			}
			halfW := cam.ViewWidth / zoom / 2
			halfH := cam.ViewHeight / zoom / 2
			x = common.Clamp(x, halfW, geom.Level.PixelWidth()-halfW)
			y = common.Clamp(y, halfH, geom.Level.PixelHeight()-halfH)
		}
	}

	camPos.X = x
	camPos.Y = y
}
