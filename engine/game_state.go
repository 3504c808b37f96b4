package engine

// Phase is the session state machine position
type Phase uint8

const (
	PhaseIdle Phase = iota // Before the first start
	PhaseRunning
	PhasePaused
	PhaseEnded
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// phaseTransitions lists legal moves, Running -> Running is a restart
var phaseTransitions = map[Phase][]Phase{
	PhaseIdle:    {PhaseRunning},
	PhaseRunning: {PhaseRunning, PhasePaused, PhaseEnded},
	PhasePaused:  {PhaseRunning},
	PhaseEnded:   {PhaseRunning},
}

// CanTransition checks if a phase transition is valid
func (p Phase) CanTransition(to Phase) bool {
	for _, allowed := range phaseTransitions[p] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Snapshot is the externally visible session state
// Running stays true while Paused, Paused distinguishes the two
type Snapshot struct {
	Running        bool
	Paused         bool
	Score          int
	HighScore      int
	ElapsedSeconds int
	Phase          Phase
	Interval       int64 // Tick interval in milliseconds
	Length         int
}
