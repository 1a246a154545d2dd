package config

import (
	"fmt"
	"os"

	"github.com/automoto/thirdperson/shared/gamemath"
	"gopkg.in/yaml.v3"
)

// Tuning bundles every value a controller reads at runtime. Controllers take
// a copy so that hot reloads never mutate a frame in flight.
type Tuning struct {
	Character CharacterConfig `yaml:"character"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	World     WorldConfig     `yaml:"world"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Space     SpaceConfig     `yaml:"space"`
}

// Defaults returns the global configuration as a Tuning value.
func Defaults() Tuning {
	anim := Animation
	anim.StartClips = append([]string(nil), Animation.StartClips...)
	return Tuning{
		Character: Character,
		Physics:   Physics,
		Animation: anim,
		Camera:    Camera,
		World:     World,
		Terrain:   Terrain,
		Space:     Space,
	}
}

// Bounds returns the world rectangle as a gamemath value.
func (t Tuning) Bounds() gamemath.Bounds {
	return gamemath.Bounds{
		MinX: t.World.MinX,
		MaxX: t.World.MaxX,
		MinZ: t.World.MinZ,
		MaxZ: t.World.MaxZ,
	}
}

// Vertical returns the physics constants used by gamemath.StepVertical.
func (t Tuning) Vertical() gamemath.VerticalParams {
	return gamemath.VerticalParams{
		Gravity:          t.Physics.Gravity,
		FallMultiplier:   t.Physics.FallMultiplier,
		TerminalVelocity: t.Physics.TerminalVelocity,
	}
}

// Validate rejects values the controller cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.World.MinX >= t.World.MaxX || t.World.MinZ >= t.World.MaxZ:
		return fmt.Errorf("config: world bounds are empty")
	case t.Physics.FallMultiplier < 1:
		return fmt.Errorf("config: fall_multiplier %v must be at least 1", t.Physics.FallMultiplier)
	case t.Physics.TerminalVelocity >= 0:
		return fmt.Errorf("config: terminal_velocity %v must be negative", t.Physics.TerminalVelocity)
	case t.Space.CellSize <= 0:
		return fmt.Errorf("config: cell_size %d must be positive", t.Space.CellSize)
	case t.Space.Padding < 0:
		return fmt.Errorf("config: padding %d must not be negative", t.Space.Padding)
	case t.Space.Resolution <= 0:
		return fmt.Errorf("config: resolution %d must be positive", t.Space.Resolution)
	case t.Character.ModelScale <= 0:
		return fmt.Errorf("config: model_scale %v must be positive", t.Character.ModelScale)
	}
	return nil
}

// ParseTuning overlays YAML data on the defaults. Keys missing from data keep
// their default values.
func ParseTuning(data []byte) (Tuning, error) {
	t := Defaults()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file and overlays it on the defaults.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}
