package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/orbsnake/internal/sim"
)

//go:embed defaults/orbsnake.yaml
var defaultYAML []byte

// defaultTickIntervalMS is the driver cadence; the engine has no opinion on it.
const defaultTickIntervalMS = 100

// DefaultSettings returns the settings used when the embedded document cannot
// be parsed. The game constants come from sim.DefaultConfig, which is the
// single source for them; the embedded document must agree with it.
func DefaultSettings() Settings {
	def := sim.DefaultConfig()
	return Settings{
		Grid: GridSettings{
			CellSize: def.CellSize,
			UIBand:   def.UIBand,
		},
		Orb: OrbSettings{
			LifespanMS:    int(def.OrbLifespan / time.Millisecond),
			SpawnAttempts: def.SpawnAttempts,
		},
		Loop: LoopSettings{
			TickIntervalMS: defaultTickIntervalMS,
		},
	}
}

// DefaultYAML returns the embedded settings document.
func DefaultYAML() []byte {
	return defaultYAML
}
