package engine

// Collision classifies a candidate head cell
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

// String returns the collision kind for logging
func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// CheckCollision tests head against the grid bounds, then against every
// current segment. The tail is included even though it vacates on a
// non-growing move, so stepping onto the current tail cell ends the game.
func CheckCollision(g Grid, s *Snake, head Point) Collision {
	if !g.Contains(head) {
		return CollisionWall
	}
	if s.Occupies(head) {
		return CollisionSelf
	}
	return CollisionNone
}
