package jump

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Session is the per-run state.
type Session struct {
	Score    int // Never decreases
	Stars    int // Cumulative, seeded from stored progress
	MaxY     int // Highest integer height reached
	GameOver bool
	Outcome  Outcome
	Tick     int
}

func newSession(spawnY float64, stars int) Session {
	return Session{MaxY: int(spawnY), Stars: stars}
}

// RecordHeight credits the climb above the previous maximum.
// It reports whether the score changed.
func (s *Session) RecordHeight(y float64) bool {
	h := int(y)
	if h <= s.MaxY {
		return false
	}
	s.Score += h - s.MaxY
	s.MaxY = h
	return true
}
