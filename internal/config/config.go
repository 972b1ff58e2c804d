// Package config provides YAML-based tunables for the game: world size,
// physics constants, body sizes and session rules.
package config

// JumpConfig contains all configuration for a game session.
type JumpConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Bodies  BodiesConfig  `yaml:"bodies"`
	Rules   RulesConfig   `yaml:"rules"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width      float64 `yaml:"width"`       // Horizontal playfield size
	Height     float64 `yaml:"height"`      // Visible playfield height
	SpawnY     float64 `yaml:"spawn_y"`     // Player start height, also the initial max height
	WrapMargin float64 `yaml:"wrap_margin"` // Distance past an edge before the player wraps
}

// PhysicsConfig defines forces and velocities, in points and seconds.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Vertical acceleration, negative is down
	LaunchSpeed    float64 `yaml:"launch_speed"`    // Upward velocity when the session starts
	StarBoost      float64 `yaml:"star_boost"`      // Vertical velocity after touching a star
	PlatformBounce float64 `yaml:"platform_bounce"` // Vertical velocity after landing on a platform
	TiltScale      float64 `yaml:"tilt_scale"`      // Horizontal velocity per unit of smoothed tilt
	TiltSmoothing  float64 `yaml:"tilt_smoothing"`  // Weight of the newest tilt sample
}

// BodiesConfig defines collision shapes.
type BodiesConfig struct {
	PlayerRadius  float64 `yaml:"player_radius"`
	StarRadius    float64 `yaml:"star_radius"`
	PlatformHalfW float64 `yaml:"platform_half_w"`
	PlatformHalfH float64 `yaml:"platform_half_h"`
}

// RulesConfig defines scoring, pruning and end conditions.
type RulesConfig struct {
	PruneDistance    float64 `yaml:"prune_distance"`     // Objects this far below the player are removed
	FallLimit        float64 `yaml:"fall_limit"`         // Falling this far below the max height loses
	CameraThreshold  float64 `yaml:"camera_threshold"`   // Height at which the camera starts scrolling
	BackgroundDiv    float64 `yaml:"background_divisor"` // Foreground scroll is divided by this for the background
	MidgroundDiv     float64 `yaml:"midground_divisor"`  // Foreground scroll is divided by this for the midground
	StarValue        int     `yaml:"star_value"`         // Stars counted for a normal star
	SpecialStarValue int     `yaml:"special_star_value"` // Stars counted for a special star
}
