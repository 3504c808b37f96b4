package audio

import "github.com/fooddonglanh/snake-game/engine"

// Player is the minimal audio surface the cue handler needs
type Player interface {
	Play(SoundType) bool
}

// Cues maps engine events to sound effects
type Cues struct {
	player Player
}

// NewCues creates a cue handler, a nil player makes it inert
func NewCues(p Player) *Cues {
	return &Cues{player: p}
}

// HandleEvent implements engine.EventHandler
func (c *Cues) HandleEvent(ev engine.GameEvent) {
	if c.player == nil {
		return
	}
	switch ev.Type {
	case engine.EventFoodEaten:
		c.player.Play(SoundEat)
	case engine.EventGameStarted:
		c.player.Play(SoundStart)
	case engine.EventGameEnded:
		c.player.Play(SoundGameOver)
	}
}

// EventTypes implements engine.EventHandler
func (c *Cues) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventFoodEaten,
		engine.EventGameStarted,
		engine.EventGameEnded,
	}
}
