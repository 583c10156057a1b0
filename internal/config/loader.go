package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.pong/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files only need to set the keys they override. The second return value
// names the source that was used.
func Load(customPath string) (PongConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, Validate(cfg)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("pong.yaml"), filepath.Join("configs", "pong.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, Validate(cfg)
		}
	}

	// Use embedded default YAML
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, Validate(cfg)
}

// loadFile reads a YAML file on top of the defaults.
func loadFile(path string) (PongConfig, error) {
	cfg := DefaultPongConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg PongConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate reports every problem that would make the simulation misbehave.
func Validate(cfg PongConfig) error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.width", cfg.Field.Width)
	positive("field.height", cfg.Field.Height)
	positive("paddles.width", cfg.Paddles.Width)
	positive("paddles.height", cfg.Paddles.Height)
	positive("paddles.key_step", cfg.Paddles.KeyStep)
	positive("ball.radius", cfg.Ball.Radius)
	positive("ball.speed", cfg.Ball.Speed)
	positive("cpu.speed", cfg.CPU.Speed)

	if cfg.Paddles.Offset < 0 {
		errs = append(errs, fmt.Errorf("paddles.offset must not be negative, got %v", cfg.Paddles.Offset))
	}
	if cfg.Ball.Spin < 0 {
		errs = append(errs, fmt.Errorf("ball.spin must not be negative, got %v", cfg.Ball.Spin))
	}
	if cfg.CPU.DeadZone < 0 {
		errs = append(errs, fmt.Errorf("cpu.dead_zone must not be negative, got %v", cfg.CPU.DeadZone))
	}
	if cfg.Paddles.Height > cfg.Field.Height {
		errs = append(errs, fmt.Errorf("paddles.height %v does not fit field.height %v", cfg.Paddles.Height, cfg.Field.Height))
	}
	if cfg.CPU.Speed >= cfg.Paddles.KeyStep {
		errs = append(errs, fmt.Errorf("cpu.speed %v must stay below paddles.key_step %v", cfg.CPU.Speed, cfg.Paddles.KeyStep))
	}

	// Both paddle checks run every tick; the ball must not be able to
	// reach both paddles within one step.
	if gap, need := PaddleGap(cfg), 2*(cfg.Ball.Radius+2*cfg.Ball.Speed); gap <= need {
		errs = append(errs, fmt.Errorf("gap between paddles %v must exceed %v for this ball radius and speed", gap, need))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// PaddleGap returns the horizontal distance between the inner faces of the paddles.
func PaddleGap(cfg PongConfig) float64 {
	return cfg.Field.Width - 2*(cfg.Paddles.Offset+cfg.Paddles.Width)
}
