package orbsnake

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/orbsnake/internal/clock"
	"github.com/vovakirdan/orbsnake/internal/core"
	"github.com/vovakirdan/orbsnake/internal/sim"
)

const tick = 100 * time.Millisecond

// 40x22 terminal cells give a 400x440 pixel playfield.
var testConfig = core.RuntimeConfig{
	Seed:    42,
	ScreenW: 40,
	ScreenH: 22,
}

func newTestGame(t *testing.T, cfg core.RuntimeConfig) (*Game, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(time.Time{})
	g := NewWithClock(clk)
	g.Reset(cfg)
	return g, clk
}

// step advances the clock by one tick and feeds the given actions.
func step(g *Game, clk *clock.Manual, actions ...core.Action) core.StepResult {
	clk.Advance(tick)
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	return g.Step(input)
}

// chaseOrb steers greedily toward the orb. On the torus the snake always
// reaches it eventually, even when the direct turn would be a reversal.
func chaseOrb(g *Game) core.Action {
	snap := g.Snapshot()
	head, ok := snap.Head()
	if !ok || !snap.OrbPlaced {
		return core.ActionNone
	}
	switch {
	case snap.Orb.X > head.X:
		return core.ActionRight
	case snap.Orb.X < head.X:
		return core.ActionLeft
	case snap.Orb.Y > head.Y:
		return core.ActionDown
	case snap.Orb.Y < head.Y:
		return core.ActionUp
	}
	return core.ActionNone
}

// clockwise returns the action that turns right from the current motion.
func clockwise(v sim.Vector) core.Action {
	switch {
	case v.DX > 0:
		return core.ActionDown
	case v.DY > 0:
		return core.ActionLeft
	case v.DX < 0:
		return core.ActionUp
	default:
		return core.ActionRight
	}
}

// playUntilOver grows the snake by chasing orbs, then turns in a tight
// circle until it bites itself.
func playUntilOver(t *testing.T, g *Game, clk *clock.Manual) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if g.State().GameOver {
			return
		}
		action := chaseOrb(g)
		if g.State().Score >= 3 {
			action = clockwise(g.Snapshot().Current)
		}
		step(g, clk, action)
	}
	t.Fatal("game never ended")
}

func TestResetLeavesNotStarted(t *testing.T) {
	g, clk := newTestGame(t, testConfig)

	state := step(g, clk).State
	if state.Started() {
		t.Errorf("Game should wait for Enter, got state %+v", state)
	}
	if g.Snapshot().Status != sim.StatusNotStarted {
		t.Errorf("Status = %s, expected %s", g.Snapshot().Status, sim.StatusNotStarted)
	}

	screen := core.NewScreen(testConfig.ScreenW, testConfig.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Press Enter to start") {
		t.Error("Start overlay not rendered")
	}
}

func TestViewport(t *testing.T) {
	g, _ := newTestGame(t, testConfig)
	w, h := g.Viewport()
	if w != 400 || h != 440 {
		t.Errorf("Viewport() = %dx%d, expected 400x440", w, h)
	}
}

func TestConfirmStartsRun(t *testing.T) {
	g, clk := newTestGame(t, testConfig)

	state := step(g, clk, core.ActionConfirm).State
	if !state.Running {
		t.Fatalf("Expected running after Enter, got %+v", state)
	}
	if g.Runs() != 1 {
		t.Errorf("Runs() = %d, expected 1", g.Runs())
	}

	snap := g.Snapshot()
	if snap.Tick != 0 {
		t.Errorf("Tick = %d, the start step should not move the snake", snap.Tick)
	}
	if head, _ := snap.Head(); head != (sim.Position{X: 200, Y: 240}) {
		t.Errorf("Head = %v, expected (200, 240)", head)
	}

	step(g, clk)
	if head, _ := g.Snapshot().Head(); head != (sim.Position{X: 220, Y: 240}) {
		t.Errorf("Head = %v, expected (220, 240) after one tick", head)
	}
}

func TestPauseToggle(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)

	state := step(g, clk, core.ActionPause).State
	if !state.Paused {
		t.Fatalf("Expected paused, got %+v", state)
	}
	frozen := g.Snapshot()

	for i := 0; i < 30; i++ {
		step(g, clk)
	}
	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Error("Snapshot changed while paused")
	}

	state = step(g, clk, core.ActionPause).State
	if !state.Running {
		t.Errorf("Expected running after second pause press, got %+v", state)
	}
	if g.Snapshot().Tick != frozen.Tick+1 {
		t.Errorf("Tick = %d, expected %d after resuming", g.Snapshot().Tick, frozen.Tick+1)
	}
}

func TestConfirmResumes(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)
	step(g, clk, core.ActionPause)

	state := step(g, clk, core.ActionConfirm).State
	if !state.Running {
		t.Errorf("Enter should resume a paused run, got %+v", state)
	}
	if g.Runs() != 1 {
		t.Errorf("Runs() = %d, Enter while paused must not start a new run", g.Runs())
	}
}

func TestDirectionIgnoredWhilePaused(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)
	step(g, clk, core.ActionPause)
	step(g, clk, core.ActionUp)

	if got := g.Snapshot().Pending; got != (sim.Vector{DX: 20}) {
		t.Errorf("Pending = %v, direction should be ignored while paused", got)
	}
}

func TestActionsApplyInOrder(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)

	// Down is applied before the pause, Left is dropped while paused
	step(g, clk, core.ActionDown, core.ActionPause, core.ActionLeft)
	if got := g.Snapshot().Pending; got != (sim.Vector{DY: 20}) {
		t.Errorf("Pending = %v, expected down", got)
	}

	step(g, clk, core.ActionPause)

	// Pause then resume in the same frame keeps the run going
	state := step(g, clk, core.ActionPause, core.ActionPause).State
	if !state.Running {
		t.Errorf("Expected running, got %+v", state)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)
	playUntilOver(t, g, clk)

	over := g.Snapshot()
	screen := core.NewScreen(testConfig.ScreenW, testConfig.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over!") {
		t.Error("Game over overlay not rendered")
	}
	if !strings.Contains(screen.String(), "Final Score:") {
		t.Error("Final score not rendered")
	}

	step(g, clk, core.ActionPause, core.ActionUp)
	if !reflect.DeepEqual(over, g.Snapshot()) {
		t.Error("Input after game over should not change state")
	}

	state := step(g, clk, core.ActionRestart).State
	if !state.Running || state.Score != 0 {
		t.Errorf("Expected a fresh run after restart, got %+v", state)
	}
	if g.Runs() != 2 {
		t.Errorf("Runs() = %d, expected 2", g.Runs())
	}
}

func TestConfirmTriesAgain(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)
	playUntilOver(t, g, clk)

	state := step(g, clk, core.ActionConfirm).State
	if !state.Running {
		t.Errorf("Enter should start a new run after game over, got %+v", state)
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)
	step(g, clk, core.ActionRestart)

	if g.Runs() != 1 {
		t.Errorf("Runs() = %d, restart should only work after game over", g.Runs())
	}
}

func TestTooSmall(t *testing.T) {
	g, clk := newTestGame(t, core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 6})

	state := step(g, clk, core.ActionConfirm).State
	if state.Started() {
		t.Error("A run should not start in a window that is too small")
	}

	screen := core.NewScreen(20, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Too small overlay not rendered")
	}
}

func TestResizeTooSmallPauses(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)

	g.Resize(10, 5)
	if !g.State().Paused {
		t.Fatal("Shrinking the window should pause the run")
	}
	step(g, clk, core.ActionPause)
	if !g.State().Paused {
		t.Error("Run should stay paused while the window is too small")
	}

	g.Resize(testConfig.ScreenW, testConfig.ScreenH)
	state := step(g, clk, core.ActionPause).State
	if !state.Running {
		t.Errorf("Expected running after resize and resume, got %+v", state)
	}
}

func TestResizeKeepsPlayfield(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)

	g.Resize(60, 30)
	step(g, clk)
	if snap := g.Snapshot(); snap.Width != 400 || snap.Height != 440 {
		t.Errorf("Playfield = %dx%d, a resize should not change the running game", snap.Width, snap.Height)
	}
}

func TestRenderPlayfield(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)

	screen := core.NewScreen(testConfig.ScreenW, testConfig.ScreenH)
	g.Render(screen)

	rows := strings.Split(screen.String(), "\n")
	hud := rows[1]
	for _, want := range []string{"Score: 0", "Time: 0s", "Orb: 5.0s"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	// The 50px band covers two rows, the separator sits on the third
	if rows[2] != strings.Repeat("─", testConfig.ScreenW) {
		t.Errorf("Separator row = %q", rows[2])
	}
	if got := screen.GetCell(0, 2).Color; got != core.ColorGray {
		t.Errorf("Separator color = %v, expected gray", got)
	}

	// Head at (200, 240) is column 20, row 12
	head := screen.GetCell(20, 12)
	if head.Rune != '█' || head.Color != core.ColorBrightGreen {
		t.Errorf("Head cell = %+v", head)
	}
	body := screen.GetCell(18, 12)
	if body.Rune != '▓' || body.Color != core.ColorGreen {
		t.Errorf("Body cell = %+v", body)
	}

	snap := g.Snapshot()
	orb := screen.GetCell(snap.Orb.X/20*2, snap.Orb.Y/20)
	if orb.Rune != '(' {
		t.Errorf("Orb cell = %+v, expected '('", orb)
	}
}

func TestRenderPaused(t *testing.T) {
	g, clk := newTestGame(t, testConfig)
	step(g, clk, core.ActionConfirm)
	step(g, clk, core.ActionPause)

	screen := core.NewScreen(testConfig.ScreenW, testConfig.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("Pause overlay not rendered")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() sim.Snapshot {
		g, clk := newTestGame(t, testConfig)
		step(g, clk, core.ActionConfirm)
		for i := 0; i < 300; i++ {
			if g.State().GameOver {
				break
			}
			step(g, clk, chaseOrb(g))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Same seed and inputs produced different snapshots:\n%+v\n%+v", a, b)
	}
}
