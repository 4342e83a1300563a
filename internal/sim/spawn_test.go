package sim

import (
	"testing"
	"time"
)

func TestSpawnStaysInArea(t *testing.T) {
	e, clk := newTestEngine(t, 31)
	g := e.Grid()
	maxCol, minRow, maxRow := g.SpawnArea()

	for i := 0; i < 500; i++ {
		e.spawnOrb(clk.Now())
		if !e.orb.Placed {
			t.Fatal("Orb should always find room on an almost empty grid")
		}
		p := e.orb.Pos
		if p.X < 0 || p.X > maxCol*g.Cell {
			t.Fatalf("Orb x = %d outside [0, %d]", p.X, maxCol*g.Cell)
		}
		if p.Y < minRow*g.Cell || p.Y > maxRow*g.Cell {
			t.Fatalf("Orb y = %d outside [%d, %d]", p.Y, minRow*g.Cell, maxRow*g.Cell)
		}
		if e.occupies(p) {
			t.Fatalf("Orb spawned on the snake at %v", p)
		}
	}
}

// fillGrid occupies every cell of a 3x2 grid except the ones in free.
func fillGrid(e *Engine, free ...Position) {
	e.grid = Grid{Width: 60, Height: 40, Cell: 20, Band: 0}
	skip := make(map[Position]bool, len(free))
	for _, p := range free {
		skip[p] = true
	}

	e.snake = e.snake[:0]
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			p := e.grid.CellAt(col, row)
			if !skip[p] {
				e.snake = append(e.snake, p)
			}
		}
	}
}

func TestSpawnFindsLastFreeCell(t *testing.T) {
	cfg := Config{CellSize: 20, UIBand: 0, OrbLifespan: 5 * time.Second, SpawnAttempts: 1}

	for seed := int64(0); seed < 20; seed++ {
		e := New(cfg, seed)
		fillGrid(e, Position{X: 40, Y: 20})
		e.spawnOrb(time.Time{})

		if !e.orb.Placed {
			t.Fatalf("seed %d: orb not placed with one free cell", seed)
		}
		if e.orb.Pos != (Position{X: 40, Y: 20}) {
			t.Fatalf("seed %d: orb at %v, expected (40, 20)", seed, e.orb.Pos)
		}
	}
}

func TestSpawnFullGrid(t *testing.T) {
	e := New(Config{CellSize: 20, UIBand: 0, SpawnAttempts: 10}, 1)
	fillGrid(e)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e.spawnOrb(now)

	if e.orb.Placed {
		t.Errorf("Orb placed at %v on a full grid", e.orb.Pos)
	}
	if !e.orb.SpawnTime.Equal(now) {
		t.Error("SpawnTime should still be reset so expiry retries later")
	}
}

func TestSpawnEmptyArea(t *testing.T) {
	e := New(DefaultConfig(), 1)
	// Band covers the whole viewport
	e.grid = Grid{Width: 100, Height: 40, Cell: 20, Band: 50}
	e.spawnOrb(time.Time{})

	if e.orb.Placed {
		t.Errorf("Orb placed at %v with no spawn rows", e.orb.Pos)
	}
}

func TestFirstFreeCell(t *testing.T) {
	g := Grid{Width: 60, Height: 60, Cell: 20, Band: 20}
	occupied := map[Position]struct{}{
		{X: 0, Y: 20}:  {},
		{X: 20, Y: 20}: {},
	}

	p, ok := firstFreeCell(g, occupied)
	if !ok {
		t.Fatal("expected a free cell")
	}
	if p != (Position{X: 40, Y: 20}) {
		t.Errorf("firstFreeCell = %v, expected (40, 20)", p)
	}
}
