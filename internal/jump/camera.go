package jump

import "github.com/vovakirdan/uberjump/internal/config"

// CameraOffsets are the vertical offsets of the three parallax layers.
// Values are zero or negative: layers move down as the player climbs.
type CameraOffsets struct {
	Background float64
	Midground  float64
	Foreground float64
}

// ScrollCamera derives layer offsets from the player's height.
type ScrollCamera struct {
	Threshold     float64 // Height below which nothing scrolls
	BackgroundDiv float64
	MidgroundDiv  float64
}

// DefaultCamera scrolls above height 200, background at 1/10 and midground
// at 1/4 of the foreground.
var DefaultCamera = ScrollCamera{Threshold: 200, BackgroundDiv: 10, MidgroundDiv: 4}

// NewScrollCamera builds a camera from the configured rules.
func NewScrollCamera(rules config.RulesConfig) ScrollCamera {
	return ScrollCamera{
		Threshold:     rules.CameraThreshold,
		BackgroundDiv: rules.BackgroundDiv,
		MidgroundDiv:  rules.MidgroundDiv,
	}
}

// Offsets returns the layer offsets for a player at height y.
func (c ScrollCamera) Offsets(y float64) CameraOffsets {
	if y <= c.Threshold {
		return CameraOffsets{}
	}
	d := y - c.Threshold
	return CameraOffsets{
		Background: -d / c.BackgroundDiv,
		Midground:  -d / c.MidgroundDiv,
		Foreground: -d,
	}
}

// Camera returns DefaultCamera offsets for a player at height y.
func Camera(y float64) CameraOffsets {
	return DefaultCamera.Offsets(y)
}
