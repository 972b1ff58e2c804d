package progress

import "sync"

// MemoryBackend keeps progress in memory. Used when no database is
// available and in tests.
type MemoryBackend struct {
	mu     sync.Mutex
	rec    Record
	scores map[string][]int
	saves  int
}

// NewMemoryBackend creates a backend seeded with rec.
func NewMemoryBackend(rec Record) *MemoryBackend {
	return &MemoryBackend{rec: rec, scores: make(map[string][]int)}
}

// LoadProgress implements Backend.
func (m *MemoryBackend) LoadProgress() (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rec, nil
}

// SaveProgress implements Backend.
func (m *MemoryBackend) SaveProgress(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = rec
	m.saves++
	return nil
}

// SaveScore implements ScoreRecorder.
func (m *MemoryBackend) SaveScore(levelID string, score int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[levelID] = append(m.scores[levelID], score)
	return int64(len(m.scores[levelID])), nil
}

// Saves returns how many times SaveProgress was called.
func (m *MemoryBackend) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Scores returns the recorded scores for a level.
func (m *MemoryBackend) Scores(levelID string) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.scores[levelID]))
	copy(out, m.scores[levelID])
	return out
}

var (
	_ Backend       = (*MemoryBackend)(nil)
	_ ScoreRecorder = (*MemoryBackend)(nil)
)
