package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/colourblind/common"
	"github.com/milk9111/colourblind/config"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/prefabs"
)

// NewPlayer creates the player from its prefab. The player is placed at the
// spawn point by NewLevel or ReplaceLevel, not here.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, cfg config.Config, sheet *ebiten.Image) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	if spec.Collider.Width <= 0 || spec.Collider.Height <= 0 {
		return 0, common.NewConfigError("player", "collider", "width and height must be positive")
	}

	binding, err := component.NewInputBinding(
		cfg.Bindings.Jump,
		cfg.Bindings.Left,
		cfg.Bindings.Right,
		cfg.Bindings.Flashlight,
		cfg.Bindings.Interact,
		cfg.Bindings.Colours(),
	)
	if err != nil {
		return 0, fmt.Errorf("player: bindings: %w", err)
	}
	flashlight, err := component.NewFlashlight(cfg.Flashlight.Duration, cfg.Flashlight.Cooldown, cfg.Flashlight.Radius)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	anim, err := component.NewAnimation(sheet, spec.Animation.AnimationDefs(), spec.Animation.Current)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	player := ecs.CreateEntity(w)
	adds := []struct {
		name string
		add  func() error
	}{
		{"player tag", func() error { return ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) }},
		{"focus", func() error { return ecs.Add(w, player, component.FocusTakerComponent.Kind(), &component.FocusTaker{}) }},
		{"position", func() error { return ecs.Add(w, player, component.PositionComponent.Kind(), &component.Position{}) }},
		{"velocity", func() error { return ecs.Add(w, player, component.VelocityComponent.Kind(), &component.Velocity{}) }},
		{"weight", func() error {
			return ecs.Add(w, player, component.WeightComponent.Kind(), &component.Weight{Factor: spec.Weight})
		}},
		{"facing", func() error { return ecs.Add(w, player, component.FacingComponent.Kind(), &component.Facing{}) }},
		{"colour", func() error {
			return ecs.Add(w, player, component.ColouredComponent.Kind(), &component.Coloured{Colour: spec.Colour})
		}},
		{"player", func() error {
			return ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{
				RunSpeed:  cfg.Physics.RunSpeed,
				JumpSpeed: cfg.Physics.JumpSpeed,
			})
		}},
		{"collidable", func() error {
			return ecs.Add(w, player, component.CollidableComponent.Kind(), &component.Collidable{
				Width:  spec.Collider.Width,
				Height: spec.Collider.Height,
			})
		}},
		{"flashlight", func() error { return ecs.Add(w, player, component.FlashlightComponent.Kind(), &flashlight) }},
		{"input", func() error { return ecs.Add(w, player, component.InputBindingComponent.Kind(), &binding) }},
		{"animation", func() error { return ecs.Add(w, player, component.AnimationComponent.Kind(), &anim) }},
		{"sprite", func() error {
			return ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{Image: sheet, Tinted: true})
		}},
	}
	for _, a := range adds {
		if err := a.add(); err != nil {
			ecs.DestroyEntity(w, player)
			return 0, fmt.Errorf("player: add %s: %w", a.name, err)
		}
	}
	return player, nil
}

// ApplyTuning copies reloadable config values onto existing players.
func ApplyTuning(w *ecs.World, cfg config.Config) {
	for _, e := range w.Query(component.PlayerTagComponent.Kind()) {
		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			p.RunSpeed = cfg.Physics.RunSpeed
			p.JumpSpeed = cfg.Physics.JumpSpeed
		}
		if f, ok := ecs.Get(w, e, component.FlashlightComponent.Kind()); ok {
			f.Duration = cfg.Flashlight.Duration
			f.Cooldown = cfg.Flashlight.Cooldown
			f.Radius = cfg.Flashlight.Radius
		}
	}
}
