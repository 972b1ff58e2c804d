// Package progress keeps the player's durable progress: the best score ever
// reached and the cumulative star count. A Tracker is created once at startup,
// owned by the application, and handed to each session; it is never a global.
package progress

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrStorageUnavailable wraps any failure of the durable backend.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Record is the persisted progress.
type Record struct {
	HighScore int
	Stars     int
}

// Backend reads and writes a Record durably. SaveProgress must not return
// before the write is committed.
type Backend interface {
	LoadProgress() (Record, error)
	SaveProgress(rec Record) error
}

// ScoreRecorder is implemented by backends that also keep a per-level score
// history.
type ScoreRecorder interface {
	SaveScore(levelID string, score int) (int64, error)
}

// Tracker is the progress service used by sessions.
type Tracker struct {
	backend Backend
	logger  *log.Logger

	mu  sync.Mutex
	rec Record
}

// Load reads the stored progress once. A nil backend or a failed read
// yields zero progress; the failure is logged, never returned.
func Load(backend Backend, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	t := &Tracker{backend: backend, logger: logger}
	if backend == nil {
		return t
	}

	rec, err := backend.LoadProgress()
	if err != nil {
		logger.Warn("could not load progress, starting from zero",
			"error", fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
		return t
	}
	t.rec = rec
	return t
}

// Current returns the progress as last loaded or committed.
func (t *Tracker) Current() Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rec
}

// HighScore returns the best score recorded so far.
func (t *Tracker) HighScore() int {
	return t.Current().HighScore
}

// Stars returns the cumulative star count.
func (t *Tracker) Stars() int {
	return t.Current().Stars
}

// Commit folds a finished session into the progress and writes it through
// to the backend: the high score becomes max(score, stored high score) and
// the star count is replaced. Write failures are logged and skipped; the
// returned record reflects the in-memory state either way.
func (t *Tracker) Commit(score, stars int) Record {
	t.mu.Lock()
	t.rec.HighScore = max(score, t.rec.HighScore)
	t.rec.Stars = stars
	rec := t.rec
	t.mu.Unlock()

	if t.backend == nil {
		return rec
	}
	if err := t.backend.SaveProgress(rec); err != nil {
		t.logger.Warn("could not save progress",
			"error", fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
	}
	return rec
}

// RecordScore appends a score to the backend's history when it keeps one.
func (t *Tracker) RecordScore(levelID string, score int) {
	recorder, ok := t.backend.(ScoreRecorder)
	if !ok {
		return
	}
	if _, err := recorder.SaveScore(levelID, score); err != nil {
		t.logger.Warn("could not record score",
			"level", levelID,
			"error", fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
	}
}
