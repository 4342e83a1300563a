package sim

import "time"

// spawnOrb replaces the orb with a fresh one on a free cell of the spawn
// area. Random sampling is tried first; after SpawnAttempts misses the area
// is scanned row by row and the first free cell wins. When no cell is free
// the orb stays unplaced until a later spawn finds room.
func (e *Engine) spawnOrb(now time.Time) {
	e.orb = Orb{SpawnTime: now}

	maxCol, minRow, maxRow := e.grid.SpawnArea()
	cols := maxCol + 1
	rows := maxRow - minRow + 1
	if cols <= 0 || rows <= 0 {
		return
	}

	occupied := make(map[Position]struct{}, len(e.snake))
	for _, seg := range e.snake {
		occupied[seg] = struct{}{}
	}

	for range e.cfg.SpawnAttempts {
		p := e.grid.CellAt(e.rng.Intn(cols), minRow+e.rng.Intn(rows))
		if _, taken := occupied[p]; !taken {
			e.placeOrb(p)
			return
		}
	}

	if p, ok := firstFreeCell(e.grid, occupied); ok {
		e.placeOrb(p)
	}
}

func (e *Engine) placeOrb(p Position) {
	e.orb.Pos = p
	e.orb.Placed = true
}

// firstFreeCell scans the spawn area row-major for a cell not in occupied.
func firstFreeCell(g Grid, occupied map[Position]struct{}) (Position, bool) {
	maxCol, minRow, maxRow := g.SpawnArea()
	for row := minRow; row <= maxRow; row++ {
		for col := 0; col <= maxCol; col++ {
			p := g.CellAt(col, row)
			if _, taken := occupied[p]; !taken {
				return p, true
			}
		}
	}
	return Position{}, false
}
