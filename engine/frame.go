package engine

// Frame is a read-only view of everything the scene draws
// Slices are reused between frames, renderers must not retain them
type Frame struct {
	Grid      Grid
	Phase     Phase
	Started   bool // A session has run at least once
	Snake     []Point
	Direction Direction // Effective direction of the last tick
	Food      Point
	HasFood   bool
	Particles []Particle

	HeadSprite *Asset
	FoodSprite *Asset

	Score          int
	HighScore      int
	ElapsedSeconds int
}

// FrameRenderer draws a frame to its bound surface
type FrameRenderer interface {
	RenderFrame(f *Frame)
}
