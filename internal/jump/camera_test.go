package jump

import (
	"testing"

	"github.com/vovakirdan/uberjump/internal/config"
)

func TestCamera(t *testing.T) {
	tests := []struct {
		y    float64
		want CameraOffsets
	}{
		{0, CameraOffsets{}},
		{80, CameraOffsets{}},
		{200, CameraOffsets{}},
		{240, CameraOffsets{Background: -4, Midground: -10, Foreground: -40}},
		{500, CameraOffsets{Background: -30, Midground: -75, Foreground: -300}},
	}

	for _, tc := range tests {
		if got := Camera(tc.y); got != tc.want {
			t.Errorf("Camera(%v) = %+v, expected %+v", tc.y, got, tc.want)
		}
	}
}

func TestScrollCameraFromConfig(t *testing.T) {
	cam := NewScrollCamera(config.DefaultJumpConfig().Rules)
	if cam != DefaultCamera {
		t.Errorf("camera from default config = %+v, expected %+v", cam, DefaultCamera)
	}

	custom := ScrollCamera{Threshold: 100, BackgroundDiv: 2, MidgroundDiv: 1}
	got := custom.Offsets(300)
	want := CameraOffsets{Background: -100, Midground: -200, Foreground: -200}
	if got != want {
		t.Errorf("Offsets(300) = %+v, expected %+v", got, want)
	}
}
