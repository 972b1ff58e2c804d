// Package tui provides the Bubble Tea front end for UberJump.
// It runs the simulation tick, turns key presses into actions and tilt
// samples, and draws the game's screen buffer.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SampleInterval is how often steering input is folded into the tilt filter.
const SampleInterval = 200 * time.Millisecond

// loopIDs hands out identifiers so a model only follows its own timers.
var loopIDs atomic.Uint64

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

// SampleMsg is sent to take a steering sample.
type SampleMsg struct {
	Time time.Time
	Loop uint64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

// sampleCmd schedules the next steering sample. It runs independently of
// the simulation tick.
func sampleCmd(loop uint64) tea.Cmd {
	return tea.Tick(SampleInterval, func(t time.Time) tea.Msg {
		return SampleMsg{Time: t, Loop: loop}
	})
}
