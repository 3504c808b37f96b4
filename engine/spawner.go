package engine

import (
	"math/rand/v2"

	"github.com/fooddonglanh/snake-game/constants"
)

// Spawner places food uniformly over cells the snake does not occupy
//
// Below FreeThreshold occupancy it rejection-samples up to MaxAttempts draws.
// At or above the threshold, or when every draw hits the body, it samples the
// explicit free-cell set. Both paths are uniform over free cells.
type Spawner struct {
	grid          Grid
	rng           *rand.Rand
	MaxAttempts   int
	FreeThreshold float64

	occupied []bool // Scratch grid reused across placements
	free     []int
}

// NewSpawner creates a spawner over g drawing from rng
func NewSpawner(g Grid, rng *rand.Rand) *Spawner {
	return &Spawner{
		grid:          g,
		rng:           rng,
		MaxAttempts:   constants.FoodRejectionAttempts,
		FreeThreshold: constants.FoodFreeCellThreshold,
		occupied:      make([]bool, g.Cells()),
		free:          make([]int, 0, g.Cells()),
	}
}

// Place returns a free cell, ok is false when the snake fills the grid
func (sp *Spawner) Place(s *Snake) (Point, bool) {
	total := sp.grid.Cells()
	if total == 0 || s.Len() >= total {
		return Point{}, false
	}

	if float64(s.Len())/float64(total) < sp.FreeThreshold {
		for i := 0; i < sp.MaxAttempts; i++ {
			p := Point{X: sp.rng.IntN(sp.grid.Width), Y: sp.rng.IntN(sp.grid.Height)}
			if !s.Occupies(p) {
				return p, true
			}
		}
	}

	return sp.placeFromFreeSet(s)
}

// placeFromFreeSet builds the free-cell list in O(W*H + n) and picks one uniformly
func (sp *Spawner) placeFromFreeSet(s *Snake) (Point, bool) {
	clear(sp.occupied)
	for i := 0; i < s.Len(); i++ {
		seg := s.Segment(i)
		if sp.grid.Contains(seg) {
			sp.occupied[sp.grid.Index(seg)] = true
		}
	}

	sp.free = sp.free[:0]
	for i, taken := range sp.occupied {
		if !taken {
			sp.free = append(sp.free, i)
		}
	}
	if len(sp.free) == 0 {
		return Point{}, false
	}
	return sp.grid.PointAt(sp.free[sp.rng.IntN(len(sp.free))]), true
}
