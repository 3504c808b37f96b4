package engine

import "sync"

// ScoreStore persists the high score across runs
// A load error or negative value is treated as 0 by the engine
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryScoreStore keeps the high score in memory, for tests and when no data file is configured
type MemoryScoreStore struct {
	mu    sync.Mutex
	score int
	saves int
	err   error
}

// NewMemoryScoreStore creates a store holding initial
func NewMemoryScoreStore(initial int) *MemoryScoreStore {
	return &MemoryScoreStore{score: initial}
}

// LoadHighScore returns the held value or the injected error
func (m *MemoryScoreStore) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return m.score, nil
}

// SaveHighScore stores score
func (m *MemoryScoreStore) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.score = score
	m.saves++
	return nil
}

// SetError makes subsequent calls fail with err, nil restores normal operation
func (m *MemoryScoreStore) SetError(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Saves returns how many successful writes occurred
func (m *MemoryScoreStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
