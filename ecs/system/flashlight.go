package system

import (
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/logger"
	"go.uber.org/zap"
)

// FlashlightSystem advances every flashlight by the tick delta and rebuilds
// the light list from the active ones, in flashlight storage order.
type FlashlightSystem struct {
	log *zap.Logger
}

func NewFlashlightSystem() *FlashlightSystem {
	return &FlashlightSystem{log: logger.Named("flashlight")}
}

func (s *FlashlightSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Delta()

	var lights *component.LightList
	if e, ok := w.First(component.LightListComponent.Kind()); ok {
		lights, _ = ecs.Get(w, e, component.LightListComponent.Kind())
	}
	if lights != nil {
		lights.Clear()
	}

	ecs.ForEach(w, component.FlashlightComponent.Kind(), func(e ecs.Entity, f *component.Flashlight) {
		if tr := f.Update(dt); tr != component.FlashlightUnchanged {
			s.log.Debug("flashlight transition", zap.Stringer("entity", e), zap.Stringer("transition", tr))
		}
		if !f.Active() || lights == nil {
			return
		}
		pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
		if !ok {
			return
		}
		x, y := pos.X, pos.Y
		if col, ok := ecs.Get(w, e, component.CollidableComponent.Kind()); ok {
			x += col.Width / 2
			y += col.Height / 2
		}
		if !lights.Append(component.Light{X: x, Y: y, Radius: f.Radius}) {
			s.log.Debug("light dropped", zap.Stringer("entity", e), zap.Int("max", component.MaxLights))
		}
	})
}
