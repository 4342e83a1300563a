package orbsnake

import (
	"fmt"

	"github.com/vovakirdan/orbsnake/internal/core"
	"github.com/vovakirdan/orbsnake/internal/sim"
)

// Below this many seconds the orb timer is drawn as a warning.
const orbWarnSeconds = 1.0

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()

	g.renderHUD(dst, snap)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if snap.Status == sim.StatusNotStarted {
		g.renderOverlay(dst, "ORBSNAKE", "Press Enter to start")
		return
	}

	g.renderOrb(dst, snap)
	g.renderSnake(dst, snap)

	switch snap.Status {
	case sim.StatusPaused:
		g.renderOverlay(dst, "Paused", "Press Space or Enter to resume")
	case sim.StatusOver:
		g.renderOverlay(dst, "Game Over!", fmt.Sprintf("Final Score: %d", snap.Score), "Press Enter to try again")
	}
}

// hudRows is the number of terminal rows fully covered by the UI band.
func (g *Game) hudRows() int {
	return g.settings.Grid.UIBand / g.settings.Grid.CellSize
}

// renderHUD draws the title, the score and both timers inside the UI band.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	rows := g.hudRows()
	if rows == 0 {
		return
	}

	dst.DrawTextColored(1, 0, "ORBSNAKE", core.ColorBrightGreen)

	statsRow := 0
	if rows > 1 {
		statsRow = 1
	}
	x := 1
	if statsRow == 0 {
		x = 11
	}

	score := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColored(x, statsRow, score, core.ColorWhite)
	x += len(score) + 3

	elapsed := fmt.Sprintf("Time: %ds", snap.ElapsedSeconds)
	dst.DrawTextColored(x, statsRow, elapsed, core.ColorWhite)
	x += len(elapsed) + 3

	orbColor := core.ColorBrightYellow
	if snap.Status != sim.StatusNotStarted && snap.OrbRemainingSeconds < orbWarnSeconds {
		orbColor = core.ColorBrightRed
	}
	dst.DrawTextColored(x, statsRow, fmt.Sprintf("Orb: %.1fs", snap.OrbRemainingSeconds), orbColor)

	// Separator; the snake may cross it when it wraps in from the bottom
	dst.DrawHLine(0, rows, dst.Width(), '─', core.ColorGray)
}

// renderOrb draws the orb if one is on the field.
func (g *Game) renderOrb(dst *core.Screen, snap sim.Snapshot) {
	if !snap.OrbPlaced {
		return
	}
	c := core.ColorBrightYellow
	if snap.OrbRemainingSeconds < orbWarnSeconds {
		c = core.ColorYellow
	}
	g.drawCell(dst, snap.Orb, '(', ')', c)
}

// renderSnake draws the body first so the head is always on top.
func (g *Game) renderSnake(dst *core.Screen, snap sim.Snapshot) {
	for i := len(snap.Segments) - 1; i >= 1; i-- {
		g.drawCell(dst, snap.Segments[i], '▓', '▓', core.ColorGreen)
	}
	if head, ok := snap.Head(); ok {
		g.drawCell(dst, head, '█', '█', core.ColorBrightGreen)
	}
}

// drawCell paints one grid cell given by its pixel position.
func (g *Game) drawCell(dst *core.Screen, p sim.Position, left, right rune, c core.Color) {
	cell := g.settings.Grid.CellSize
	col := p.X / cell * cellCols
	row := p.Y / cell
	dst.SetColored(col, row, left, c)
	dst.SetColored(col+1, row, right, c)
}

// renderOverlay draws a centered box with one message per line. The first
// line is the heading.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := dst.Bounds().Centered(maxLen+4, len(lines)*2+1)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box.Y+1+i*2, line, c)
	}
}
