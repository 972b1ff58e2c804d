package config

import (
	_ "embed"
)

//go:embed defaults/uberjump.yaml
var defaultJumpYAML []byte

// DefaultJumpConfig returns the built-in configuration.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		World: WorldConfig{
			Width:      320,
			Height:     568,
			SpawnY:     80,
			WrapMargin: 20,
		},
		Physics: PhysicsConfig{
			Gravity:        -300,
			LaunchSpeed:    300,
			StarBoost:      400,
			PlatformBounce: 250,
			TiltScale:      400,
			TiltSmoothing:  0.75,
		},
		Bodies: BodiesConfig{
			PlayerRadius:  14,
			StarRadius:    12,
			PlatformHalfW: 32,
			PlatformHalfH: 6,
		},
		Rules: RulesConfig{
			PruneDistance:    300,
			FallLimit:        800,
			CameraThreshold:  200,
			BackgroundDiv:    10,
			MidgroundDiv:     4,
			StarValue:        1,
			SpecialStarValue: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for writing a starter file.
func DefaultYAML() []byte {
	return defaultJumpYAML
}
