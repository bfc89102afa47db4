package entity

import (
	"fmt"

	"github.com/milk9111/colourblind/config"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
)

func NewCamera(w *ecs.World, cfg config.Camera, viewW, viewH float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.PositionComponent.Kind(), &component.Position{}); err != nil {
		return 0, fmt.Errorf("camera: add position: %w", err)
	}

	smooth := cfg.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	zoom := cfg.Zoom
	if zoom == 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		ViewWidth:  viewW,
		ViewHeight: viewH,
		Zoom:       zoom,
		Smoothness: smooth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
