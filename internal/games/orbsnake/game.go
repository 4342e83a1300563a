// Package orbsnake adapts the simulation engine to the terminal platform.
// It maps semantic input actions onto engine operations, converts the
// terminal size into a pixel viewport and draws the playfield into a
// core.Screen.
package orbsnake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/orbsnake/internal/clock"
	"github.com/vovakirdan/orbsnake/internal/config"
	"github.com/vovakirdan/orbsnake/internal/core"
	"github.com/vovakirdan/orbsnake/internal/sim"
)

// Every grid cell is drawn two terminal columns wide and one row tall,
// which keeps cells roughly square in most fonts.
const cellCols = 2

// Minimum terminal size the game will run in.
const (
	minScreenW = 24
	minScreenH = 8
)

// Game is the terminal front end of one orbsnake session.
type Game struct {
	engine   *sim.Engine
	clock    clock.Clock
	settings config.Settings

	screenW int
	screenH int
	runs    int

	tooSmall bool
}

// New creates a game driven by the system clock.
func New() *Game {
	return NewWithClock(clock.Real{})
}

// NewWithClock creates a game that reads time from c.
func NewWithClock(c clock.Clock) *Game {
	return &Game{
		clock:    c,
		settings: config.Load(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "orbsnake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Orbsnake"
}

// Reset prepares a new session for the given screen. The engine is left in
// the not-started state; the first run begins on ActionConfirm.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.runs = 0
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH
	g.engine = sim.New(g.settings.SimConfig(), cfg.Seed)
}

// Resize records a new terminal size. A run in progress keeps its playfield;
// the new viewport applies from the next run. Shrinking below the minimum
// size pauses the run.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.tooSmall = screenW < minScreenW || screenH < minScreenH
	if g.tooSmall && g.engine != nil {
		g.engine.Pause(g.clock.Now())
	}
}

// Viewport returns the pixel size of the playfield for the current screen.
func (g *Game) Viewport() (width, height int) {
	cell := g.settings.Grid.CellSize
	return g.screenW / cellCols * cell, g.screenH * cell
}

// start begins a fresh run on the current viewport.
func (g *Game) start(now time.Time) {
	w, h := g.Viewport()
	g.engine.Initialize(w, h, now)
	g.runs++
}

// Step applies the frame's actions in arrival order and then advances the
// simulation by one tick. A run started during this step makes its first
// move on the next one.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	now := g.clock.Now()

	started := false
	for _, a := range input.Actions {
		if g.apply(a, now) {
			started = true
		}
	}

	if !started && !g.tooSmall {
		g.engine.AdvanceTick(now)
	}

	return core.StepResult{State: g.State()}
}

// apply maps one action onto the engine and reports whether it began a run.
func (g *Game) apply(a core.Action, now time.Time) bool {
	status := g.engine.Status()

	switch a {
	case core.ActionUp:
		g.engine.Steer(sim.HeadingUp)
	case core.ActionDown:
		g.engine.Steer(sim.HeadingDown)
	case core.ActionLeft:
		g.engine.Steer(sim.HeadingLeft)
	case core.ActionRight:
		g.engine.Steer(sim.HeadingRight)
	case core.ActionPause:
		if !g.tooSmall {
			g.engine.Toggle(now)
		}
	case core.ActionConfirm:
		if g.tooSmall {
			return false
		}
		// Resume when paused, otherwise start a new run
		switch status {
		case sim.StatusPaused:
			g.engine.Resume(now)
		case sim.StatusNotStarted, sim.StatusOver:
			g.start(now)
			return true
		}
	case core.ActionRestart:
		if status == sim.StatusOver && !g.tooSmall {
			g.start(now)
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	snap := g.engine.Snapshot()
	return core.GameState{
		Score:          snap.Score,
		Running:        snap.Status == sim.StatusRunning,
		Paused:         snap.Status == sim.StatusPaused,
		GameOver:       snap.Status == sim.StatusOver,
		ElapsedSeconds: snap.ElapsedSeconds,
	}
}

// Snapshot returns the engine snapshot for tests and debugging.
func (g *Game) Snapshot() sim.Snapshot {
	return g.engine.Snapshot()
}

// Runs returns how many runs have been started since the last Reset.
func (g *Game) Runs() int {
	return g.runs
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	snap := g.engine.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Status: %s, Score: %d\n", snap.Tick, snap.Status, snap.Score)
	fmt.Fprintf(&b, "Viewport: %dx%d, Snake len: %d\n", snap.Width, snap.Height, len(snap.Segments))
	if head, ok := snap.Head(); ok {
		fmt.Fprintf(&b, "Head: (%d, %d), Orb: (%d, %d) placed=%v\n",
			head.X, head.Y, snap.Orb.X, snap.Orb.Y, snap.OrbPlaced)
	}
	fmt.Fprintf(&b, "Elapsed: %ds, Orb left: %.1fs\n", snap.ElapsedSeconds, snap.OrbRemainingSeconds)
	return b.String()
}
