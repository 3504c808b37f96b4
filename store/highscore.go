package store

import (
	"errors"

	"github.com/fooddonglanh/snake-game/constants"
)

// HighScore persists the best score under a single key
type HighScore struct {
	kv  *FileStore
	key string
}

// NewHighScore binds to kv under the default key
func NewHighScore(kv *FileStore) *HighScore {
	return &HighScore{kv: kv, key: constants.HighScoreKey}
}

// LoadHighScore returns the stored value, 0 when never saved
func (h *HighScore) LoadHighScore() (int, error) {
	var v int
	err := h.kv.Get(h.key, &v)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}

// SaveHighScore replaces the stored value
func (h *HighScore) SaveHighScore(score int) error {
	return h.kv.Set(h.key, score)
}
