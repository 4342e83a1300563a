package sim

import "time"

// Pause freezes the run. It only has an effect in StatusRunning.
func (e *Engine) Pause(now time.Time) {
	if e.status != StatusRunning {
		return
	}
	e.lastPauseTime = now
	e.status = StatusPaused
}

// Resume continues a paused run. The run start and the orb spawn time are
// both pushed forward by the length of the pause, so every duration measured
// from them reads the same as it did when the pause began.
func (e *Engine) Resume(now time.Time) {
	if e.status != StatusPaused {
		return
	}
	paused := now.Sub(e.lastPauseTime)
	e.gameStartTime = e.gameStartTime.Add(paused)
	e.orb.SpawnTime = e.orb.SpawnTime.Add(paused)
	e.status = StatusRunning
}

// Toggle pauses a running game and resumes a paused one.
func (e *Engine) Toggle(now time.Time) {
	switch e.status {
	case StatusRunning:
		e.Pause(now)
	case StatusPaused:
		e.Resume(now)
	}
}

// gameNow returns the instant game time is measured at: now while running,
// the start of the pause while paused and the collision time once over.
func (e *Engine) gameNow(now time.Time) time.Time {
	switch e.status {
	case StatusPaused:
		return e.lastPauseTime
	case StatusOver:
		return e.endTime
	default:
		return now
	}
}

// Elapsed returns the pause-adjusted run time.
func (e *Engine) Elapsed(now time.Time) time.Duration {
	if e.status == StatusNotStarted {
		return 0
	}
	d := e.gameNow(now).Sub(e.gameStartTime)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedSeconds returns Elapsed in whole seconds, rounded down.
func (e *Engine) ElapsedSeconds(now time.Time) int {
	return int(e.Elapsed(now) / time.Second)
}

// OrbRemaining returns how long the current orb has left, never negative.
func (e *Engine) OrbRemaining(now time.Time) time.Duration {
	if e.status == StatusNotStarted {
		return 0
	}
	age := e.gameNow(now).Sub(e.orb.SpawnTime)
	left := e.cfg.OrbLifespan - age
	if left < 0 {
		return 0
	}
	return left
}

// OrbRemainingSeconds returns OrbRemaining in seconds at one decimal.
func (e *Engine) OrbRemainingSeconds(now time.Time) float64 {
	return tenths(e.OrbRemaining(now))
}

// tenths converts d to seconds rounded to one decimal, clamping at zero.
func tenths(d time.Duration) float64 {
	return max(d, 0).Round(100 * time.Millisecond).Seconds()
}
