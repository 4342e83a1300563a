// Package config provides the build-time game settings for orbsnake.
// Settings are read from a YAML document embedded into the binary, so they
// are fixed per build and cannot be changed at runtime.
package config

import (
	"time"

	"github.com/vovakirdan/orbsnake/internal/sim"
)

// Settings contains all tunable constants of the game.
type Settings struct {
	Grid GridSettings `yaml:"grid"`
	Orb  OrbSettings  `yaml:"orb"`
	Loop LoopSettings `yaml:"loop"`
}

// GridSettings defines the grid geometry in pixels.
type GridSettings struct {
	CellSize int `yaml:"cell_size"` // G: edge length of one cell
	UIBand   int `yaml:"ui_band"`   // U: height of the reserved top band
}

// OrbSettings defines the collectible lifecycle.
type OrbSettings struct {
	LifespanMS    int `yaml:"lifespan_ms"`
	SpawnAttempts int `yaml:"spawn_attempts"`
}

// LoopSettings defines the driver cadence.
type LoopSettings struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// OrbLifespan returns the orb lifespan as a duration.
func (s Settings) OrbLifespan() time.Duration {
	return time.Duration(s.Orb.LifespanMS) * time.Millisecond
}

// TickInterval returns the fixed tick cadence as a duration.
func (s Settings) TickInterval() time.Duration {
	return time.Duration(s.Loop.TickIntervalMS) * time.Millisecond
}

// SimConfig converts the settings into engine constants.
func (s Settings) SimConfig() sim.Config {
	return sim.Config{
		CellSize:      s.Grid.CellSize,
		UIBand:        s.Grid.UIBand,
		OrbLifespan:   s.OrbLifespan(),
		SpawnAttempts: s.Orb.SpawnAttempts,
	}
}
