// Package prefabs loads entity stat specs from YAML. Specs are embedded in
// the binary; a copy on disk under prefabs/ takes precedence so stats can be
// tuned without rebuilding.
package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EntitySpec describes everything needed to assemble one entity kind:
// texture, footprint and speeds, hit rectangle, and sprite animations.
type EntitySpec struct {
	Name       string                   `yaml:"name"`
	Texture    string                   `yaml:"texture"`
	Transform  TransformSpec            `yaml:"transform"`
	Collider   ColliderSpec             `yaml:"collider"`
	Animations map[string]AnimationSpec `yaml:"animations"`
}

type TransformSpec struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Scale   float64 `yaml:"scale"`
	Speed   float64 `yaml:"speed"`
	SpeedLo float64 `yaml:"speed_lo"`
	SpeedHi float64 `yaml:"speed_hi"`
}

type ColliderSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type AnimationSpec struct {
	Index  int `yaml:"index"`
	Frames int `yaml:"frames"`
	Delay  int `yaml:"delay"`
}

// LoadSpec loads and decodes a YAML spec by file name.
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

// LoadEntitySpec loads the named entity prefab ("spider.yaml" etc).
func LoadEntitySpec(filename string) (EntitySpec, error) {
	return LoadSpec[EntitySpec](filename)
}
