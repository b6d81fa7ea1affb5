package config

import (
	_ "embed"
)

//go:embed defaults/starcatch.yaml
var defaultStarcatchYAML []byte

// DefaultStarcatchConfig returns the default starcatch configuration.
func DefaultStarcatchConfig() StarcatchConfig {
	return StarcatchConfig{
		Arena: ArenaConfig{
			Width:      800,
			Height:     600,
			CellWidth:  10,
			CellHeight: 20,
		},
		Player: PlayerConfig{
			Size:  64,
			Speed: 500,
		},
		Enemies: EnemyConfig{
			Count:         4,
			Size:          64,
			Speed:         200,
			SpawnPeriod:   5,
			Clamp:         ClampAll,
			ZeroDirection: ZeroResample,
		},
		Stars: StarConfig{
			Count:       10,
			Size:        30,
			SpawnPeriod: 1,
		},
		Simulation: SimulationConfig{
			StartPaused: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultStarcatchYAML
}
