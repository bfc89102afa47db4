package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/input"
	"github.com/milk9111/colourblind/level"
)

type onePicker colour.Colour

func (p onePicker) Next() colour.Colour { return colour.Colour(p) }

func mustLevel(t *testing.T, platformColour colour.Colour, layers map[string][]string) *level.Level {
	t.Helper()
	doc, err := level.NewDocumentRows("test.tmx", 32, layers)
	if err != nil {
		t.Fatalf("build document: %v", err)
	}
	lvl, err := level.Load(doc, onePicker(platformColour))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return lvl
}

func addLevel(t *testing.T, w *ecs.World, lvl *level.Level, killY float64) {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelGeometryComponent.Kind(), &component.LevelGeometry{Level: lvl, KillY: killY}); err != nil {
		t.Fatalf("add geometry: %v", err)
	}
	if err := ecs.Add(w, e, component.LightListComponent.Kind(), &component.LightList{}); err != nil {
		t.Fatalf("add lights: %v", err)
	}
}

func testBinding() component.InputBinding {
	return component.InputBinding{
		Jump:       input.Keys(ebiten.KeySpace),
		Left:       input.Keys(ebiten.KeyA),
		Right:      input.Keys(ebiten.KeyD),
		Flashlight: input.Keys(ebiten.KeyF),
		Interact:   input.Keys(ebiten.KeyE),
		Colours: [4]input.KeySet{
			input.Keys(ebiten.KeyR),
			input.Keys(ebiten.KeyG),
			input.Keys(ebiten.KeyB),
			input.Keys(ebiten.KeyY),
		},
	}
}

type body struct {
	pos    component.Position
	vel    component.Velocity
	box    *component.Collidable
	tint   *colour.Colour
	weight *component.Weight
}

func spawn(t *testing.T, w *ecs.World, b body) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("add component: %v", err)
		}
	}
	must(ecs.Add(w, e, component.PositionComponent.Kind(), &b.pos))
	must(ecs.Add(w, e, component.VelocityComponent.Kind(), &b.vel))
	must(ecs.Add(w, e, component.FacingComponent.Kind(), &component.Facing{}))
	if b.box != nil {
		must(ecs.Add(w, e, component.CollidableComponent.Kind(), b.box))
	}
	if b.tint != nil {
		must(ecs.Add(w, e, component.ColouredComponent.Kind(), &component.Coloured{Colour: *b.tint}))
	}
	if b.weight != nil {
		must(ecs.Add(w, e, component.WeightComponent.Kind(), b.weight))
	}
	return e
}

func tintOf(c colour.Colour) *colour.Colour { return &c }
