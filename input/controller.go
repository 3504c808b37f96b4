package input

import "github.com/fooddonglanh/snake-game/engine"

// Controller applies intents to an engine
// Must run on the engine's loop goroutine
type Controller struct {
	Engine *engine.Engine

	// OnQuit and OnMute are optional frontend hooks
	OnQuit func()
	OnMute func()
}

// Handle applies in, returns false when the intent requests quit
func (c *Controller) Handle(in Intent) bool {
	switch in.Type {
	case IntentQuit:
		if c.OnQuit != nil {
			c.OnQuit()
		}
		return false

	case IntentToggleMute:
		if c.OnMute != nil {
			c.OnMute()
		}

	case IntentStartOrPause:
		switch c.Engine.Phase() {
		case engine.PhaseRunning, engine.PhasePaused:
			c.Engine.Pause()
		default:
			c.Engine.Start()
		}

	case IntentMove:
		c.Engine.SetDirection(in.Direction)
	}
	return true
}
