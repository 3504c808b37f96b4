package store

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/fooddonglanh/snake-game/constants"
)

// Record is one finished game
type Record struct {
	Player          string    `json:"player"`
	Score           int       `json:"score"`
	DurationSeconds int       `json:"durationSeconds"`
	PlayedAt        time.Time `json:"playedAt"`
}

// History is the append-only list of finished games
type History struct {
	kv  *FileStore
	key string
	now func() time.Time
}

// NewHistory binds to kv under the default key
func NewHistory(kv *FileStore) *History {
	return &History{kv: kv, key: constants.HistoryKey, now: time.Now}
}

// WithClock replaces the PlayedAt source
func (h *History) WithClock(now func() time.Time) *History {
	h.now = now
	return h
}

// Add appends a record, a zero PlayedAt is stamped with the current time
func (h *History) Add(rec Record) error {
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = h.now()
	}
	records := h.All()
	records = append(records, rec)
	if err := h.kv.Set(h.key, records); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// All returns every record in insertion order
// An unreadable list is treated as empty
func (h *History) All() []Record {
	var records []Record
	err := h.kv.Get(h.key, &records)
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("history unreadable, starting empty: %v", err)
		return nil
	}
	return records
}

// ByPlayer returns the player's records, newest first
func (h *History) ByPlayer(player string) []Record {
	var out []Record
	for _, r := range h.All() {
		if r.Player == player {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})
	return out
}

// Recent returns at most n of the player's newest records
func (h *History) Recent(player string, n int) []Record {
	out := h.ByPlayer(player)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopScores returns the highest scores across all players
// Equal scores keep insertion order, limit <= 0 means the default
func (h *History) TopScores(limit int) []Record {
	if limit <= 0 {
		limit = constants.TopScoresLimit
	}
	records := h.All()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records
}

// FormatDuration renders seconds as m:ss
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatDate renders t as dd/mm/yyyy hh:mm in local time, "-" for zero
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006 15:04")
}
