package config

import "github.com/go-gl/mathgl/mgl64"

// CharacterConfig contains character movement and model configuration values
type CharacterConfig struct {
	// Movement
	MoveSpeed   float64 `yaml:"move_speed"`   // units per frame along the intent
	RotateSpeed float64 `yaml:"rotate_speed"` // fraction of a quarter turn per frame

	// Model
	ModelPath  string  `yaml:"model_path"`
	ModelScale float64 `yaml:"model_scale"`

	// Placeholder capsule used when the model fails to load
	PlaceholderRadius float64 `yaml:"placeholder_radius"`
	PlaceholderLength float64 `yaml:"placeholder_length"`
}

// PhysicsConfig contains vertical physics configuration values
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // units/s^2, negative is down
	JumpForce        float64 `yaml:"jump_force"`        // initial vertical velocity of a jump
	FallMultiplier   float64 `yaml:"fall_multiplier"`   // gravity scale while descending
	TerminalVelocity float64 `yaml:"terminal_velocity"` // most negative vertical velocity
	GroundHeight     float64 `yaml:"ground_height"`     // minimum height before terrain sampling
}

// AnimationConfig contains clip names and cross-fade durations
type AnimationConfig struct {
	Idle    string `yaml:"idle"`
	Walking string `yaml:"walking"`
	Jump    string `yaml:"jump"`

	// Clips tried in order when the model first loads
	StartClips []string `yaml:"start_clips"`

	// Cross-fade durations (seconds)
	MoveFade    float64 `yaml:"move_fade"`
	LandingFade float64 `yaml:"landing_fade"`
	JumpFade    float64 `yaml:"jump_fade"`
}

// CameraConfig contains chase camera configuration
type CameraConfig struct {
	Offset     mgl64.Vec3 `yaml:"offset"`
	LookHeight float64    `yaml:"look_height"` // added to the character position for the look-at target
}

// WorldConfig contains the walkable area on the XZ plane
type WorldConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

// TerrainConfig contains terrain height sampling configuration
type TerrainConfig struct {
	ProbeHeight float64 `yaml:"probe_height"` // ray origin height above the character
}

// SpaceConfig contains the collision broad-phase grid configuration
type SpaceConfig struct {
	CellSize   int `yaml:"cell_size"`  // world units per resolv cell
	Padding    int `yaml:"padding"`    // extra world units around the bounds
	Resolution int `yaml:"resolution"` // resolv units per world unit
}

// ViewerConfig contains the debug viewer window settings. It is not part of
// Tuning; controllers never read it.
type ViewerConfig struct {
	Width         int
	Height        int
	PixelsPerUnit float64 // top-down zoom
	ShiftStep     float64 // distance a building moves per shift
}

// Global configuration instances
var Character CharacterConfig
var Physics PhysicsConfig
var Animation AnimationConfig
var Camera CameraConfig
var World WorldConfig
var Terrain TerrainConfig
var Space SpaceConfig
var Viewer ViewerConfig

func init() {
	Character = CharacterConfig{
		MoveSpeed:   0.1,
		RotateSpeed: 0.1,

		ModelPath:  "models/character.yaml",
		ModelScale: 1,

		PlaceholderRadius: 0.5,
		PlaceholderLength: 1,
	}

	Physics = PhysicsConfig{
		Gravity:          -20,
		JumpForce:        8,
		FallMultiplier:   1.5,
		TerminalVelocity: -20,
		GroundHeight:     0,
	}

	Animation = AnimationConfig{
		Idle:    "Idle",
		Walking: "Walking",
		Jump:    "Jump",

		StartClips: []string{"idle", "Idle"},

		MoveFade:    0.2,
		LandingFade: 0.1,
		JumpFade:    0.1,
	}

	Camera = CameraConfig{
		Offset:     mgl64.Vec3{0, 7, -10},
		LookHeight: 2,
	}

	World = WorldConfig{
		MinX: -50,
		MaxX: 50,
		MinZ: -50,
		MaxZ: 50,
	}

	Terrain = TerrainConfig{
		ProbeHeight: 10,
	}

	Space = SpaceConfig{
		CellSize:   2,
		Padding:    4,
		Resolution: 16,
	}

	Viewer = ViewerConfig{
		Width:         960,
		Height:        640,
		PixelsPerUnit: 12,
		ShiftStep:     1.5,
	}
}
