package input

import "github.com/fooddonglanh/snake-game/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Escape, Ctrl+C
	IntentToggleMute // m, Ctrl+S

	// Session control
	IntentStartOrPause // Space: start when Idle/Ended, toggle pause otherwise

	// Steering
	IntentMove // Arrows, WASD
)

// String returns the intent name for logging
func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "none"
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentStartOrPause:
		return "start_or_pause"
	case IntentMove:
		return "move"
	default:
		return "unknown"
	}
}

// Intent represents a parsed semantic action
// Pure data struct with no engine state
type Intent struct {
	Type      IntentType
	Direction engine.Direction // Valid only for IntentMove
}
