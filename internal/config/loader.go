package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load returns the settings compiled into the binary.
// It falls back to DefaultSettings if the embedded document is broken.
func Load() Settings {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultSettings()
	}
	return cfg
}

// Parse decodes and validates a settings document.
// Fields missing from the document keep their default values.
func Parse(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid settings: %w", err)
	}
	return cfg, nil
}

// Validate checks that every setting is usable by the simulation.
func (s Settings) Validate() error {
	var errs []error
	if s.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %d", s.Grid.CellSize))
	}
	if s.Grid.UIBand < 0 {
		errs = append(errs, fmt.Errorf("grid.ui_band must not be negative, got %d", s.Grid.UIBand))
	}
	if s.Orb.LifespanMS <= 0 {
		errs = append(errs, fmt.Errorf("orb.lifespan_ms must be positive, got %d", s.Orb.LifespanMS))
	}
	if s.Orb.SpawnAttempts <= 0 {
		errs = append(errs, fmt.Errorf("orb.spawn_attempts must be positive, got %d", s.Orb.SpawnAttempts))
	}
	if s.Loop.TickIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_interval_ms must be positive, got %d", s.Loop.TickIntervalMS))
	}
	return errors.Join(errs...)
}
