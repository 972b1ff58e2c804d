package jump

import "github.com/vovakirdan/uberjump/internal/core"

// Presenter receives what the player should see. It must not change the
// session; everything it gets is a copy.
type Presenter interface {
	PresentStart()
	RenderFrame(f Frame)
	PresentEndOfSession(r Result)
}

// ObjectView is a read-only snapshot of one star or platform.
type ObjectView struct {
	ID       uint64
	Kind     Kind
	Pos      core.Vec2
	Platform PlatformType
	Star     StarType
}

// Frame is a snapshot of the world after a tick.
type Frame struct {
	Tick      int
	Player    core.Vec2
	PlayerVel core.Vec2
	Objects   []ObjectView
	Camera    CameraOffsets
	Score     int
	Stars     int
	HighScore int
	MaxY      int
	EndY      int
	Started   bool
	Paused    bool
	GameOver  bool
	Outcome   Outcome
}

// Result summarizes a finished session.
type Result struct {
	LevelID   string
	Score     int
	Stars     int
	HighScore int
	Outcome   Outcome
}

// NopPresenter discards everything.
type NopPresenter struct{}

func (NopPresenter) PresentStart()              {}
func (NopPresenter) RenderFrame(Frame)          {}
func (NopPresenter) PresentEndOfSession(Result) {}
