package render

import (
	"fmt"

	"github.com/fooddonglanh/snake-game/engine"
	"github.com/fooddonglanh/snake-game/store"
)

// HUD mirrors the scoreboard from engine events only
// Frontends read Status and Board when presenting
type HUD struct {
	Score          int
	HighScore      int
	ElapsedSeconds int
	Paused         bool
	Ended          bool

	board []string
}

// NewHUD creates an empty scoreboard
func NewHUD() *HUD {
	return &HUD{}
}

// HandleEvent implements engine.EventHandler
func (h *HUD) HandleEvent(ev engine.GameEvent) {
	switch p := ev.Payload.(type) {
	case engine.ScorePayload:
		h.Score = p.Score
		h.HighScore = p.HighScore
	case engine.TimePayload:
		h.ElapsedSeconds = p.ElapsedSeconds
	case engine.GameOverPayload:
		h.Score = p.Score
		h.ElapsedSeconds = p.ElapsedSeconds
		h.Ended = true
		h.Paused = false
	case engine.PausePayload:
		h.Paused = p.Paused
	}
	if ev.Type == engine.EventGameStarted {
		h.Ended = false
		h.Paused = false
		h.board = nil
	}
}

// EventTypes implements engine.EventHandler
func (h *HUD) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventScoreChanged,
		engine.EventTimeChanged,
		engine.EventGameEnded,
		engine.EventGameStarted,
		engine.EventPauseToggled,
	}
}

// Status is the one-line scoreboard
func (h *HUD) Status() string {
	s := fmt.Sprintf("Score %d  Best %d  Time %s", h.Score, h.HighScore, store.FormatDuration(h.ElapsedSeconds))
	switch {
	case h.Ended:
		s += "  GAME OVER"
	case h.Paused:
		s += "  PAUSED"
	}
	return s
}

// SetBoard replaces the leaderboard lines shown after a game
func (h *HUD) SetBoard(records []store.Record) {
	h.board = h.board[:0]
	for i, r := range records {
		h.board = append(h.board, fmt.Sprintf("%2d. %-5d %s  %s",
			i+1, r.Score, store.FormatDuration(r.DurationSeconds), store.FormatDate(r.PlayedAt)))
	}
}

// Board returns the leaderboard lines, empty while a game is live
func (h *HUD) Board() []string {
	if !h.Ended {
		return nil
	}
	return h.board
}
