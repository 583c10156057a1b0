package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 400,
		},
		Paddles: PaddleConfig{
			Width:   15,
			Height:  100,
			Offset:  20,
			KeyStep: 40,
		},
		Ball: BallConfig{
			Radius: 12,
			Speed:  6,
			Spin:   6,
		},
		CPU: CPUConfig{
			Speed:    4,
			DeadZone: 10,
		},
	}
}
