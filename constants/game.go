package constants

import "time"

// Grid geometry
const (
	// GridWidth is the number of cells per row
	GridWidth = 20

	// GridHeight is the number of cells per column
	GridHeight = 20

	// CellSize is the edge length of one cell in surface pixels
	CellSize = 20
)

// Simulation Timing
const (
	// InitialTickInterval is the simulation tick interval at session start
	InitialTickInterval = 150 * time.Millisecond

	// TickIntervalStep is subtracted from the tick interval on every food eaten
	TickIntervalStep = 2 * time.Millisecond

	// MinTickInterval is the floor of the tick interval
	MinTickInterval = 60 * time.Millisecond

	// ElapsedClockInterval is the period of the elapsed-time notification clock
	ElapsedClockInterval = time.Second

	// FrameUpdateInterval is the display refresh interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Scoring
const (
	// FoodReward is the score added per food eaten
	FoodReward = 10

	// InitialSnakeLength is the segment count at spawn
	InitialSnakeLength = 3

	// SpawnHeadX/SpawnHeadY is the head cell at spawn, body extends leftward
	SpawnHeadX = 10
	SpawnHeadY = 10
)

// Food placement
const (
	// FoodRejectionAttempts bounds random draws before falling back to the free-cell set
	FoodRejectionAttempts = 64

	// FoodFreeCellThreshold is the occupied fraction above which the free-cell set is sampled directly
	FoodFreeCellThreshold = 0.5
)

// Loop
const (
	// LoopPostQueueSize is the capacity of the cross-goroutine callback queue
	LoopPostQueueSize = 256

	// LoopMaxBehindTicks is how many intervals a task may lag before its deadline is resynced
	LoopMaxBehindTicks = 2
)
