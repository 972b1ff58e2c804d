package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "uberjump.yaml"

// LoadJump loads the game configuration.
// Search order: customPath -> ~/.uberjump/configs/uberjump.yaml -> ./configs/uberjump.yaml -> embedded default.
// Files only need to contain the values they change; everything else keeps
// its default.
func LoadJump(customPath string) (JumpConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultJumpConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultJumpConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultJumpYAML)
	if err != nil {
		return DefaultJumpConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (JumpConfig, error) {
	cfg := DefaultJumpConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c JumpConfig) Validate() error {
	switch {
	case c.World.Width <= 0:
		return fmt.Errorf("config: world.width must be positive, got %v", c.World.Width)
	case c.World.Height <= 0:
		return fmt.Errorf("config: world.height must be positive, got %v", c.World.Height)
	case c.World.WrapMargin < 0:
		return fmt.Errorf("config: world.wrap_margin must not be negative, got %v", c.World.WrapMargin)
	case c.Physics.TiltSmoothing < 0 || c.Physics.TiltSmoothing > 1:
		return fmt.Errorf("config: physics.tilt_smoothing must be within [0, 1], got %v", c.Physics.TiltSmoothing)
	case c.Bodies.PlayerRadius <= 0 || c.Bodies.StarRadius <= 0:
		return fmt.Errorf("config: body radii must be positive")
	case c.Bodies.PlatformHalfW <= 0 || c.Bodies.PlatformHalfH <= 0:
		return fmt.Errorf("config: platform half extents must be positive")
	case c.Rules.PruneDistance <= 0 || c.Rules.FallLimit <= 0:
		return fmt.Errorf("config: rules.prune_distance and rules.fall_limit must be positive")
	case c.Rules.BackgroundDiv <= 0 || c.Rules.MidgroundDiv <= 0:
		return fmt.Errorf("config: camera divisors must be positive")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".uberjump", "configs", filename)
}
