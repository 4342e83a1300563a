// Package sim implements the orbsnake simulation: a snake moving on a
// wrap-around grid, a time-limited orb, scoring and pause-aware run time.
//
// The engine is pure logic. It never reads the system clock; every method
// that depends on time takes the current instant as an argument, and the
// caller is expected to serialise calls (one tick at a time).
package sim

import (
	"math/rand"
	"time"
)

// Status is the lifecycle state of a run.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusRunning    Status = "running"
	StatusPaused     Status = "paused"
	StatusOver       Status = "game_over"
)

// Config holds the fixed simulation constants.
type Config struct {
	CellSize      int           // G
	UIBand        int           // U
	OrbLifespan   time.Duration // how long an orb stays before respawning
	SpawnAttempts int           // random samples before the fallback scan
}

// DefaultConfig returns the standard game constants. The embedded settings
// document in internal/config is checked against these values.
func DefaultConfig() Config {
	return Config{
		CellSize:      20,
		UIBand:        50,
		OrbLifespan:   5 * time.Second,
		SpawnAttempts: 1000,
	}
}

// Orb is the collectible.
type Orb struct {
	Pos       Position
	SpawnTime time.Time
	Placed    bool // false only when no free cell was left
}

// Engine owns the complete state of one game.
type Engine struct {
	cfg  Config
	rng  *rand.Rand
	grid Grid
	tick uint64

	snake   []Position // Head at index 0
	current Vector     // applied on the last tick
	pending Vector     // applied on the next tick

	orb    Orb
	score  int
	status Status

	gameStartTime time.Time
	lastPauseTime time.Time
	endTime       time.Time

	// Published at the end of every tick
	elapsedSeconds int
	orbRemaining   float64
}

// New creates an engine in the NotStarted state.
// Zero or negative config values fall back to DefaultConfig.
func New(cfg Config, seed int64) *Engine {
	def := DefaultConfig()
	if cfg.CellSize <= 0 {
		cfg.CellSize = def.CellSize
	}
	if cfg.UIBand < 0 {
		cfg.UIBand = def.UIBand
	}
	if cfg.OrbLifespan <= 0 {
		cfg.OrbLifespan = def.OrbLifespan
	}
	if cfg.SpawnAttempts <= 0 {
		cfg.SpawnAttempts = def.SpawnAttempts
	}

	return &Engine{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		status: StatusNotStarted,
	}
}

// Initialize starts a fresh run on a width×height pixel viewport.
// It may be called in any state; it is the only way out of StatusOver.
func (e *Engine) Initialize(width, height int, now time.Time) {
	e.grid = Grid{
		Width:  width,
		Height: height,
		Cell:   e.cfg.CellSize,
		Band:   e.cfg.UIBand,
	}
	e.tick = 0
	e.score = 0
	e.gameStartTime = now
	e.lastPauseTime = time.Time{}
	e.endTime = time.Time{}

	g := e.cfg.CellSize
	head := e.grid.Start()
	e.snake = []Position{
		head,
		{X: head.X - g, Y: head.Y},
		{X: head.X - 2*g, Y: head.Y},
	}

	e.current = Vector{DX: g}
	e.pending = e.current

	e.spawnOrb(now)
	e.status = StatusRunning
	e.publish(now, e.OrbRemaining(now))
}

// AdvanceTick runs one simulation step. It does nothing unless the run is
// in StatusRunning.
func (e *Engine) AdvanceTick(now time.Time) {
	if e.status != StatusRunning || len(e.snake) == 0 {
		return
	}
	e.tick++

	e.current = e.pending
	head := e.grid.Wrap(e.snake[0].Add(e.current))

	// Checked against the snake before it moves, tail included
	if e.occupies(head) {
		e.status = StatusOver
		e.endTime = now
		return
	}

	e.snake = append(e.snake, Position{})
	copy(e.snake[1:], e.snake)
	e.snake[0] = head

	if e.orb.Placed && head == e.orb.Pos {
		e.score++
		e.spawnOrb(now)
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	// Published from the age of the orb that was on the field this tick
	age := now.Sub(e.orb.SpawnTime)
	if age >= e.cfg.OrbLifespan {
		e.spawnOrb(now)
	}

	e.publish(now, e.cfg.OrbLifespan-age)
}

// SetPendingDirection queues a direction change for the next tick.
// Only a change onto the axis orthogonal to the current motion is accepted,
// which rules out reversals; everything else, including any request while
// the run is not Running, is ignored. It reports whether pending changed.
func (e *Engine) SetPendingDirection(axis Axis, sign int) bool {
	if e.status != StatusRunning {
		return false
	}
	if sign != 1 && sign != -1 {
		return false
	}
	if !e.current.IsZero() && motionAxis(e.current) == axis {
		return false
	}
	e.pending = e.grid.step(axis, sign)
	return true
}

// Steer is SetPendingDirection for a heading.
func (e *Engine) Steer(h Heading) bool {
	axis, sign := h.AxisSign()
	return e.SetPendingDirection(axis, sign)
}

// motionAxis returns the axis a non-zero vector moves along.
func motionAxis(v Vector) Axis {
	if v.DX != 0 {
		return AxisX
	}
	return AxisY
}

// occupies reports whether any segment sits on p.
func (e *Engine) occupies(p Position) bool {
	for _, seg := range e.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// publish stores the derived timers shown to the player.
func (e *Engine) publish(now time.Time, orbLeft time.Duration) {
	e.elapsedSeconds = e.ElapsedSeconds(now)
	e.orbRemaining = tenths(orbLeft)
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Grid returns the playfield of the current run.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Config returns the constants the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}
