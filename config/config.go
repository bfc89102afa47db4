// Package config loads game settings from yaml. Embedded defaults are
// decoded first and a user file is decoded over them, so a user file only
// needs the keys it changes.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/common"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Physics values are per tick in world units.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	Damping          float64 `yaml:"damping"`
	SnapEpsilon      float64 `yaml:"snap_epsilon"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	RunSpeed         float64 `yaml:"run_speed"`
	JumpSpeed        float64 `yaml:"jump_speed"`
	KillY            float64 `yaml:"kill_y"`
}

// Flashlight values are in seconds and world units.
type Flashlight struct {
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
	Radius   float64 `yaml:"radius"`
}

type Camera struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

const (
	RenderDirect      = "direct"
	RenderFramebuffer = "framebuffer"
)

type Render struct {
	Mode string `yaml:"mode"`
}

type Bindings struct {
	Jump        []string `yaml:"jump"`
	Left        []string `yaml:"left"`
	Right       []string `yaml:"right"`
	Flashlight  []string `yaml:"flashlight"`
	Interact    []string `yaml:"interact"`
	Red         []string `yaml:"red"`
	Green       []string `yaml:"green"`
	Blue        []string `yaml:"blue"`
	Yellow      []string `yaml:"yellow"`
	DebugReset  []string `yaml:"debug_reset"`
	DebugCoords []string `yaml:"debug_coords"`
}

// Colours returns the colour key names keyed by colour.
func (b Bindings) Colours() map[colour.Colour][]string {
	return map[colour.Colour][]string{
		colour.Red:    b.Red,
		colour.Green:  b.Green,
		colour.Blue:   b.Blue,
		colour.Yellow: b.Yellow,
	}
}

type Levels struct {
	Dir string `yaml:"dir"`
}

type Telemetry struct {
	Path string `yaml:"path"`
}

type Config struct {
	Window     Window     `yaml:"window"`
	Logging    Logging    `yaml:"logging"`
	Physics    Physics    `yaml:"physics"`
	Flashlight Flashlight `yaml:"flashlight"`
	Camera     Camera     `yaml:"camera"`
	Render     Render     `yaml:"render"`
	Bindings   Bindings   `yaml:"bindings"`
	Levels     Levels     `yaml:"levels"`
	Telemetry  Telemetry  `yaml:"telemetry"`
}

// Default returns the embedded defaults.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads path over the defaults and validates the result. An empty path
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays yaml data onto cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports the first unusable value as a *common.ConfigError.
func (c Config) Validate() error {
	checks := []struct {
		ok                bool
		comp, field, what string
	}{
		{c.Window.Width > 0 && c.Window.Height > 0, "window", "size", "must be positive"},
		{c.Window.TPS > 0, "window", "tps", "must be positive"},
		{c.Physics.Gravity >= 0, "physics", "gravity", "must not be negative"},
		{c.Physics.Damping > 0 && c.Physics.Damping <= 1, "physics", "damping", "must be in (0, 1]"},
		{c.Physics.SnapEpsilon >= 0, "physics", "snap_epsilon", "must not be negative"},
		{c.Physics.TerminalVelocity > 0, "physics", "terminal_velocity", "must be positive"},
		{c.Physics.RunSpeed > 0, "physics", "run_speed", "must be positive"},
		{c.Physics.JumpSpeed > 0, "physics", "jump_speed", "must be positive"},
		{c.Flashlight.Duration > 0, "flashlight", "duration", "must be positive"},
		{c.Flashlight.Cooldown > 0, "flashlight", "cooldown", "must be positive"},
		{c.Flashlight.Radius > 0, "flashlight", "radius", "must be positive"},
		{c.Camera.Zoom > 0, "camera", "zoom", "must be positive"},
		{c.Camera.Smoothness > 0 && c.Camera.Smoothness <= 1, "camera", "smoothness", "must be in (0, 1]"},
		{c.Render.Mode == RenderDirect || c.Render.Mode == RenderFramebuffer, "render", "mode", fmt.Sprintf("unknown mode %q", c.Render.Mode)},
	}
	for _, chk := range checks {
		if !chk.ok {
			return common.NewConfigError(chk.comp, chk.field, chk.what)
		}
	}

	sets := []struct {
		field string
		keys  []string
	}{
		{"jump", c.Bindings.Jump},
		{"left", c.Bindings.Left},
		{"right", c.Bindings.Right},
		{"flashlight", c.Bindings.Flashlight},
		{"interact", c.Bindings.Interact},
		{"red", c.Bindings.Red},
		{"green", c.Bindings.Green},
		{"blue", c.Bindings.Blue},
		{"yellow", c.Bindings.Yellow},
	}
	for _, s := range sets {
		if len(s.keys) == 0 {
			return common.NewConfigError("bindings", s.field, "empty key-set")
		}
	}
	return nil
}
