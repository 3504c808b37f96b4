package engine

import "strings"

// Point is an integer cell coordinate
type Point struct {
	X, Y int
}

// Add returns p offset by d's unit delta
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is the fixed W×H cell space
type Grid struct {
	Width    int
	Height   int
	CellSize int // Pixels per cell edge on the drawing surface
}

// Contains reports whether p lies in [0,W)×[0,H)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns W*H
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Index flattens p, valid only when Contains(p)
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// PointAt is the inverse of Index
func (g Grid) PointAt(i int) Point {
	return Point{X: i % g.Width, Y: i / g.Width}
}

// PixelSize returns the surface dimensions covering the grid
func (g Grid) PixelSize() (int, int) {
	return g.Width * g.CellSize, g.Height * g.CellSize
}

// CellCenter returns the pixel center of p
func (g Grid) CellCenter(p Point) (float64, float64) {
	half := float64(g.CellSize) / 2
	return float64(p.X*g.CellSize) + half, float64(p.Y*g.CellSize) + half
}

// Direction is one of the four unit moves
type Direction uint8

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector, y grows downward
func (d Direction) Delta() (int, int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the 180° reversal
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// IsOpposite reports whether o is the exact reverse of d
func (d Direction) IsOpposite(o Direction) bool {
	return d.Opposite() == o
}

// Valid reports whether d is one of the four defined values
func (d Direction) Valid() bool {
	return d <= DirUp
}

// Angle returns the head sprite rotation in radians, clockwise from rightward
func (d Direction) Angle() float64 {
	switch d {
	case DirDown:
		return halfPi
	case DirLeft:
		return 2 * halfPi
	case DirUp:
		return -halfPi
	default:
		return 0
	}
}

// String returns the lowercase direction name
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "invalid"
	}
}

// ParseDirection maps "up"/"down"/"left"/"right" (any case) to a Direction
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return DirRight, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "up":
		return DirUp, true
	default:
		return 0, false
	}
}

const halfPi = 1.5707963267948966
