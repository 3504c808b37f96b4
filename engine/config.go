package engine

import (
	"path"
	"time"

	"github.com/fooddonglanh/snake-game/constants"
)

// Config holds engine tunables
type Config struct {
	Grid Grid

	InitialInterval time.Duration
	IntervalStep    time.Duration
	MinInterval     time.Duration
	ElapsedInterval time.Duration
	FrameInterval   time.Duration

	Reward        int
	InitialLength int
	SpawnHead     Point

	HeadSpritePath string
	FoodSpritePath string
}

// DefaultConfig returns the standard 20×20 game
func DefaultConfig() Config {
	return Config{
		Grid: Grid{
			Width:    constants.GridWidth,
			Height:   constants.GridHeight,
			CellSize: constants.CellSize,
		},
		InitialInterval: constants.InitialTickInterval,
		IntervalStep:    constants.TickIntervalStep,
		MinInterval:     constants.MinTickInterval,
		ElapsedInterval: constants.ElapsedClockInterval,
		FrameInterval:   constants.FrameUpdateInterval,
		Reward:          constants.FoodReward,
		InitialLength:   constants.InitialSnakeLength,
		SpawnHead:       Point{X: constants.SpawnHeadX, Y: constants.SpawnHeadY},
		HeadSpritePath:  path.Join(constants.DefaultAssetsDir, constants.HeadSpriteFile),
		FoodSpritePath:  path.Join(constants.DefaultAssetsDir, constants.FoodSpriteFile),
	}
}

// NextInterval returns the tick interval after one food, floored at MinInterval
func (c Config) NextInterval(current time.Duration) time.Duration {
	return max(current-c.IntervalStep, c.MinInterval)
}
