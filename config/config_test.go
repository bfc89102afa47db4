package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/colourblind/common"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Physics.Damping != 0.75 || cfg.Physics.SnapEpsilon != 0.25 {
		t.Fatalf("unexpected physics defaults %+v", cfg.Physics)
	}
	if len(cfg.Bindings.Colours()) != 4 {
		t.Fatalf("expected 4 colour bindings")
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := []byte("physics:\n  run_speed: 9\nrender:\n  mode: framebuffer\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Physics.RunSpeed != 9 || cfg.Render.Mode != RenderFramebuffer {
		t.Fatalf("overlay not applied: %+v %+v", cfg.Physics, cfg.Render)
	}
	if cfg.Physics.JumpSpeed != Default().Physics.JumpSpeed {
		t.Fatalf("unset key lost its default")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"bad_damping", "physics:\n  damping: 1.5\n", "damping"},
		{"empty_binding", "bindings:\n  jump: []\n", "jump"},
		{"unknown_mode", "render:\n  mode: raytrace\n", "mode"},
		{"zero_duration", "flashlight:\n  duration: 0\n", "duration"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			var cfgErr *common.ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tc.field {
				t.Fatalf("expected ConfigError on %s, got %v", tc.field, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file should fail")
	}

	cfg := Default()
	if err := Decode([]byte("physics:\n  gravityy: 2\n"), &cfg); err == nil {
		t.Fatalf("unknown key should be rejected")
	}
	if err := Decode(nil, &cfg); err != nil {
		t.Fatalf("empty document: %v", err)
	}
}
