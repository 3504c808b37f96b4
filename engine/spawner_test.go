package engine

import (
	"math/rand/v2"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed*31+7))
}

func TestSpawnerNeverOnSnake(t *testing.T) {
	g := DefaultConfig().Grid
	sp := NewSpawner(g, testRand(1))
	s := NewSnake(Point{10, 10}, DirRight, 3)

	for i := 0; i < 1000; i++ {
		p, ok := sp.Place(s)
		if !ok {
			t.Fatal("Expected placement on a mostly empty grid")
		}
		if !g.Contains(p) {
			t.Fatalf("Placed food outside grid: %v", p)
		}
		if s.Occupies(p) {
			t.Fatalf("Placed food on snake: %v", p)
		}
	}
}

// fillSnake builds a snake covering the first n cells in row-major order
func fillSnake(g Grid, n int) *Snake {
	body := make([]Point, n)
	for i := 0; i < n; i++ {
		body[i] = g.PointAt(i)
	}
	return &Snake{body: body}
}

func TestSpawnerNearlyFullGrid(t *testing.T) {
	g := DefaultConfig().Grid
	sp := NewSpawner(g, testRand(2))

	s := fillSnake(g, g.Cells()-1)
	last := g.PointAt(g.Cells() - 1)

	for i := 0; i < 50; i++ {
		p, ok := sp.Place(s)
		if !ok || p != last {
			t.Fatalf("Expected the single free cell %v, got %v (%v)", last, p, ok)
		}
	}
}

func TestSpawnerFullGrid(t *testing.T) {
	g := DefaultConfig().Grid
	sp := NewSpawner(g, testRand(3))

	if _, ok := sp.Place(fillSnake(g, g.Cells())); ok {
		t.Error("Expected no placement on a full grid")
	}
}

func TestSpawnerRejectionExhaustedFallsBack(t *testing.T) {
	g := DefaultConfig().Grid
	sp := NewSpawner(g, testRand(4))
	sp.MaxAttempts = 0 // Force the free-cell path even below threshold

	s := NewSnake(Point{10, 10}, DirRight, 3)
	p, ok := sp.Place(s)
	if !ok || s.Occupies(p) {
		t.Errorf("Expected free-cell fallback to place off-snake, got %v (%v)", p, ok)
	}
}

func TestSpawnerUniformOverFreeCells(t *testing.T) {
	g := Grid{Width: 3, Height: 3, CellSize: 1}
	sp := NewSpawner(g, testRand(5))
	s := fillSnake(g, 5) // 4 free cells, above threshold

	counts := map[Point]int{}
	const draws = 8000
	for i := 0; i < draws; i++ {
		p, _ := sp.Place(s)
		counts[p]++
	}

	if len(counts) != 4 {
		t.Fatalf("Expected 4 distinct free cells, got %v", counts)
	}
	for p, n := range counts {
		if n < draws/4-400 || n > draws/4+400 {
			t.Errorf("Cell %v drawn %d times, expected near %d", p, n, draws/4)
		}
	}
}
