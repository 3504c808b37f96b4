package store

import (
	"log"
	"os"

	"github.com/fooddonglanh/snake-game/engine"
)

// Recorder appends a history record for every finished game
type Recorder struct {
	History *History
	Player  string

	// OnRecord runs after a successful append, optional
	OnRecord func(Record)
}

// HandleEvent implements engine.EventHandler
func (r *Recorder) HandleEvent(ev engine.GameEvent) {
	p, ok := ev.Payload.(engine.GameOverPayload)
	if !ok {
		return
	}
	rec := Record{
		Player:          r.Player,
		Score:           p.Score,
		DurationSeconds: p.ElapsedSeconds,
	}
	if err := r.History.Add(rec); err != nil {
		log.Printf("failed to record game: %v", err)
		return
	}
	if r.OnRecord != nil {
		r.OnRecord(rec)
	}
}

// EventTypes implements engine.EventHandler
func (r *Recorder) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventGameEnded}
}

// DefaultPlayer names the local user, "player" when the environment has no user
func DefaultPlayer() string {
	for _, key := range []string{"SNAKE_PLAYER", "USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "player"
}
