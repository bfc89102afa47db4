package prefabs

import (
	"fmt"

	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/ecs/component"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Colour    colour.Colour `yaml:"colour"`
	Weight    float64       `yaml:"weight"`
	Spawn     TileSpec      `yaml:"spawn"`
	Collider  ColliderSpec  `yaml:"collider"`
	Animation AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// TileSpec is a tile coordinate with row 0 at the bottom of the map.
type TileSpec struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnimationSpec struct {
	Sheet   string                      `yaml:"sheet"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type AnimationDefSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
	PingPong   bool    `yaml:"ping_pong"`
}

// AnimationDefs converts the yaml definitions into animation definitions.
func (s AnimationSpec) AnimationDefs() map[string]component.AnimationDef {
	out := make(map[string]component.AnimationDef, len(s.Defs))
	for name, d := range s.Defs {
		out[name] = component.AnimationDef{
			Name:       name,
			Row:        d.Row,
			ColStart:   d.ColStart,
			FrameCount: d.FrameCount,
			FrameW:     d.FrameW,
			FrameH:     d.FrameH,
			FPS:        d.FPS,
			Loop:       d.Loop,
			PingPong:   d.PingPong,
		}
	}
	return out
}
