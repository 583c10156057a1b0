// Package config provides YAML-based game configuration loading and
// validation for the game.
package config

// PongConfig contains all tunable constants of the game.
type PongConfig struct {
	Field   FieldConfig  `yaml:"field"`
	Paddles PaddleConfig `yaml:"paddles"`
	Ball    BallConfig   `yaml:"ball"`
	CPU     CPUConfig    `yaml:"cpu"`
}

// FieldConfig defines the playfield size in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and keyboard control.
type PaddleConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Offset  float64 `yaml:"offset"`   // Distance from the side edge
	KeyStep float64 `yaml:"key_step"` // Player movement per key press
}

// BallConfig defines ball size and speeds.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Horizontal speed after every serve
	Spin   float64 `yaml:"spin"`  // Vertical speed of an edge hit
}

// CPUConfig defines the scripted opponent.
type CPUConfig struct {
	Speed    float64 `yaml:"speed"`
	DeadZone float64 `yaml:"dead_zone"` // No movement while the ball is this close
}
