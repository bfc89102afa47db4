package entity

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/common"
	"github.com/milk9111/colourblind/config"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/level"
	"github.com/milk9111/colourblind/prefabs"
)

func testLevel(t *testing.T, name string) *level.Level {
	t.Helper()
	rows := []string{"......", "......", "OOOOOO"}
	doc, err := level.NewDocumentRows(name, 32, map[string][]string{
		"level":     rows,
		"platforms": {"......", "......", "......"},
		"door":      {"....O.", "......", "......"},
	})
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	lvl, err := level.Load(doc, colour.NewPicker(1))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return lvl
}

func testSpec(t *testing.T) *prefabs.PlayerSpec {
	t.Helper()
	prefabs.Dir = t.TempDir()
	t.Cleanup(func() { prefabs.Dir = "prefabs" })
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	return spec
}

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	spec := testSpec(t)
	p, err := NewPlayer(w, spec, config.Default(), nil)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	for name, has := range map[string]bool{
		"tag":        ecs.Has(w, p, component.PlayerTagComponent.Kind()),
		"focus":      ecs.Has(w, p, component.FocusTakerComponent.Kind()),
		"binding":    ecs.Has(w, p, component.InputBindingComponent.Kind()),
		"flashlight": ecs.Has(w, p, component.FlashlightComponent.Kind()),
		"animation":  ecs.Has(w, p, component.AnimationComponent.Kind()),
		"weight":     ecs.Has(w, p, component.WeightComponent.Kind()),
	} {
		if !has {
			t.Fatalf("player missing %s", name)
		}
	}
	c, _ := ecs.Get(w, p, component.ColouredComponent.Kind())
	if c.Colour != spec.Colour {
		t.Fatalf("colour = %v, want %v", c.Colour, spec.Colour)
	}
	fl, _ := ecs.Get(w, p, component.FlashlightComponent.Kind())
	if !fl.Usable() {
		t.Fatalf("new flashlight should be idle")
	}
}

func TestNewPlayerRejectsBadConfig(t *testing.T) {
	spec := testSpec(t)
	tests := []struct {
		name   string
		mutate func(*config.Config, *prefabs.PlayerSpec)
	}{
		{"empty_jump_keys", func(c *config.Config, _ *prefabs.PlayerSpec) { c.Bindings.Jump = nil }},
		{"zero_flashlight_duration", func(c *config.Config, _ *prefabs.PlayerSpec) { c.Flashlight.Duration = 0 }},
		{"zero_collider", func(_ *config.Config, s *prefabs.PlayerSpec) { s.Collider.Width = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			s := *spec
			tc.mutate(&cfg, &s)
			w := ecs.NewWorld()
			_, err := NewPlayer(w, &s, cfg, nil)
			var cfgErr *common.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if n := len(w.Entities()); n != 0 {
				t.Fatalf("failed construction left %d entities", n)
			}
		})
	}
}

func TestReplaceLevelRespawnsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	p, err := NewPlayer(w, testSpec(t), config.Default(), nil)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if _, err := NewLevel(w, testLevel(t, "a.tmx"), 0, prefabs.TileSpec{Col: 1, Row: 1}, -64); err != nil {
		t.Fatalf("new level: %v", err)
	}
	pos, _ := ecs.Get(w, p, component.PositionComponent.Kind())
	if pos.Vector != (cp.Vector{X: 32, Y: 32}) {
		t.Fatalf("spawn = %v", pos.Vector)
	}
	if _, err := NewLevel(w, testLevel(t, "dup.tmx"), 0, prefabs.TileSpec{}, -64); err == nil {
		t.Fatalf("second level entity should be rejected")
	}

	vel, _ := ecs.Get(w, p, component.VelocityComponent.Kind())
	fl, _ := ecs.Get(w, p, component.FlashlightComponent.Kind())
	vel.Vector = cp.Vector{X: 3, Y: -5}
	fl.RequestStart()
	fl.Update(0.5)
	_ = ecs.Add(w, p, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{FromLevel: 0})

	req, ok := TakeLevelChangeRequest(w)
	if !ok || req.FromLevel != 0 {
		t.Fatalf("expected pending request, got %+v %v", req, ok)
	}
	if _, ok := TakeLevelChangeRequest(w); ok {
		t.Fatalf("request should be consumed")
	}

	next := testLevel(t, "b.tmx")
	if err := ReplaceLevel(w, next, 1, prefabs.TileSpec{Col: 3, Row: 1}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if pos.Vector != (cp.Vector{X: 96, Y: 32}) || vel.Vector != (cp.Vector{}) {
		t.Fatalf("after replace pos=%v vel=%v", pos.Vector, vel.Vector)
	}
	if !fl.Usable() {
		t.Fatalf("flashlight should be reset")
	}
	e, _ := w.First(component.LevelGeometryComponent.Kind())
	geom, _ := ecs.Get(w, e, component.LevelGeometryComponent.Kind())
	if geom.Level != next || geom.Index != 1 || geom.KillY != -64 {
		t.Fatalf("geometry not replaced: %+v", geom)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCamera(w, config.Camera{}, 640, 480)
	if err != nil {
		t.Fatalf("camera: %v", err)
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	if cam.Zoom != 1 || cam.Smoothness != 0.15 || cam.ViewWidth != 640 {
		t.Fatalf("unexpected camera %+v", cam)
	}
}
