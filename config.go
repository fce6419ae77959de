package spruce

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LayerConfig is the per-category slice of a SceneConfig: how many particles
// the category gets, their base tint, and the intrinsic scale range.
type LayerConfig struct {
	Count     int   `yaml:"count"`
	Color     Color `yaml:"color"`
	BaseScale Range `yaml:"baseScale"`
}

// SceneConfig describes a scene's fixed geometry and population. Zero scenes
// are not useful; start from DefaultConfig and override.
type SceneConfig struct {
	// ScatterRadius is the radius of the sphere the scattered cloud fills.
	ScatterRadius float64 `yaml:"scatterRadius"`
	// TreeHeight and TreeBaseRadius describe the assembled cone.
	TreeHeight     float64 `yaml:"treeHeight"`
	TreeBaseRadius float64 `yaml:"treeBaseRadius"`
	// AssembleDelay is how many seconds after start the scene switches
	// itself from scattered to tree. Negative disables the auto-switch.
	AssembleDelay float64 `yaml:"assembleDelay"`

	Needles LayerConfig `yaml:"needles"`
	Gold    LayerConfig `yaml:"gold"`
	Red     LayerConfig `yaml:"red"`
	Lights  LayerConfig `yaml:"lights"`
}

// DefaultConfig returns the stock decorated-tree scene: a dense needle cloud,
// two small ornament sets, and a string of warm lights.
func DefaultConfig() SceneConfig {
	return SceneConfig{
		ScatterRadius:  14,
		TreeHeight:     9,
		TreeBaseRadius: 3.2,
		AssembleDelay:  1.5,
		Needles: LayerConfig{
			Count:     3000,
			Color:     Color{0.1, 0.45, 0.18, 1},
			BaseScale: Range{0.05, 0.12},
		},
		Gold: LayerConfig{
			Count:     16,
			Color:     Color{0.95, 0.78, 0.25, 1},
			BaseScale: Range{0.22, 0.3},
		},
		Red: LayerConfig{
			Count:     16,
			Color:     Color{0.85, 0.15, 0.12, 1},
			BaseScale: Range{0.22, 0.3},
		},
		Lights: LayerConfig{
			Count:     160,
			Color:     Color{1, 0.85, 0.55, 1},
			BaseScale: Range{0.08, 0.1},
		},
	}
}

// LoadConfig parses a YAML scene config. Fields absent from the document keep
// their DefaultConfig values, so a config file only needs to state overrides.
func LoadConfig(data []byte) (SceneConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SceneConfig{}, fmt.Errorf("parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}

// Validate checks the config for values the generators cannot work with.
func (c SceneConfig) Validate() error {
	if c.ScatterRadius <= 0 {
		return fmt.Errorf("scene config: scatterRadius must be positive, got %g", c.ScatterRadius)
	}
	if c.TreeHeight <= 0 {
		return fmt.Errorf("scene config: treeHeight must be positive, got %g", c.TreeHeight)
	}
	if c.TreeBaseRadius <= 0 {
		return fmt.Errorf("scene config: treeBaseRadius must be positive, got %g", c.TreeBaseRadius)
	}
	for _, layer := range []struct {
		name string
		cfg  LayerConfig
	}{
		{"needles", c.Needles},
		{"gold", c.Gold},
		{"red", c.Red},
		{"lights", c.Lights},
	} {
		if layer.cfg.Count <= 0 {
			return fmt.Errorf("scene config: %s.count must be positive, got %d", layer.name, layer.cfg.Count)
		}
		if layer.cfg.BaseScale.Min <= 0 || layer.cfg.BaseScale.Max < layer.cfg.BaseScale.Min {
			return fmt.Errorf("scene config: %s.baseScale range [%g, %g] is invalid",
				layer.name, layer.cfg.BaseScale.Min, layer.cfg.BaseScale.Max)
		}
	}
	return nil
}
