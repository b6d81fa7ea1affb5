// Package config provides YAML-based game configuration loading for starcatch.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a game.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// StarcatchConfig contains all configuration for the starcatch game.
type StarcatchConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Stars      StarConfig       `yaml:"stars"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// ArenaConfig maps terminal cells to arena units.
// Headless runs use Width and Height directly.
type ArenaConfig struct {
	Width      float32 `yaml:"width"`       // Headless arena width
	Height     float32 `yaml:"height"`      // Headless arena height
	CellWidth  float32 `yaml:"cell_width"`  // Arena units per terminal column
	CellHeight float32 `yaml:"cell_height"` // Arena units per terminal row
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Size  float32 `yaml:"size"`  // Visual diameter; half of it is the collision radius
	Speed float32 `yaml:"speed"` // Units per second
}

// ClampMode selects which enemies have their position clamped to the arena.
type ClampMode string

const (
	ClampAll   ClampMode = "all"   // Every enemy is clamped
	ClampFirst ClampMode = "first" // Only the first enemy in iteration order
)

// ZeroDirection selects what happens when a sampled enemy direction is (0,0).
type ZeroDirection string

const (
	ZeroResample   ZeroDirection = "resample"   // Sample again, then stay still
	ZeroFixed      ZeroDirection = "fixed"      // Use +X
	ZeroStationary ZeroDirection = "stationary" // Keep the zero vector
)

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	Count         int           `yaml:"count"`
	Size          float32       `yaml:"size"`
	Speed         float32       `yaml:"speed"`
	SpawnPeriod   float32       `yaml:"spawn_period"` // Seconds between spawns
	Clamp         ClampMode     `yaml:"clamp"`
	ZeroDirection ZeroDirection `yaml:"zero_direction"`
}

// StarConfig defines star parameters.
type StarConfig struct {
	Count       int     `yaml:"count"`
	Size        float32 `yaml:"size"`
	SpawnPeriod float32 `yaml:"spawn_period"` // Seconds between spawns
}

// SimulationConfig defines state machine policy.
type SimulationConfig struct {
	// StartPaused makes entering a game force the Paused sub-state.
	// Leaving a game always forces Running.
	StartPaused bool `yaml:"start_paused"`
}

// Validate checks that every field can drive the simulation.
func (c StarcatchConfig) Validate() error {
	var errs []error

	positive := func(name string, v float32) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("arena.cell_width", c.Arena.CellWidth)
	positive("arena.cell_height", c.Arena.CellHeight)
	positive("player.size", c.Player.Size)
	positive("player.speed", c.Player.Speed)
	positive("enemies.size", c.Enemies.Size)
	positive("enemies.speed", c.Enemies.Speed)
	positive("enemies.spawn_period", c.Enemies.SpawnPeriod)
	positive("stars.size", c.Stars.Size)
	positive("stars.spawn_period", c.Stars.SpawnPeriod)

	if c.Enemies.Count < 0 {
		errs = append(errs, fmt.Errorf("enemies.count must not be negative, got %d", c.Enemies.Count))
	}
	if c.Stars.Count < 0 {
		errs = append(errs, fmt.Errorf("stars.count must not be negative, got %d", c.Stars.Count))
	}

	switch c.Enemies.Clamp {
	case ClampAll, ClampFirst:
	default:
		errs = append(errs, fmt.Errorf("enemies.clamp must be %q or %q, got %q", ClampAll, ClampFirst, c.Enemies.Clamp))
	}

	switch c.Enemies.ZeroDirection {
	case ZeroResample, ZeroFixed, ZeroStationary:
	default:
		errs = append(errs, fmt.Errorf("enemies.zero_direction must be %q, %q or %q, got %q",
			ZeroResample, ZeroFixed, ZeroStationary, c.Enemies.ZeroDirection))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
