package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name and the components to attach, keyed
// by component name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes one raw component entry into its typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// PlayerComponentSpec holds movement tuning. Speeds and gravity are world
// units per second; the jump impulse is world units per tick.
type PlayerComponentSpec struct {
	RunSpeed         float64 `yaml:"run_speed"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type VelocityComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type DirectionComponentSpec struct {
	Initial string `yaml:"initial"`
}

// FootprintSpec is a full width and height; builders halve it.
type FootprintSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type KinematicControllerComponentSpec struct {
	Footprint FootprintSpec `yaml:"footprint"`
}

type CollectibleComponentSpec struct {
	Kind      string        `yaml:"kind"`
	Footprint FootprintSpec `yaml:"footprint"`
}

type SpriteComponentSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	Zoom    float64 `yaml:"zoom"`
	OffsetY float64 `yaml:"offset_y"`
}
