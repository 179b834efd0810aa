package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default blockfall configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BlocksBoard{
			Width:      10,
			Height:     25,
			HiddenRows: 2,
			SpawnX:     4,
			SpawnY:     2,
		},
		Timing: BlocksTiming{
			TickMs:        400,
			MinTickMs:     80,
			LockDelay:     true,
			LockDelayMs:   300,
			MaxLockResets: 10,
		},
		Scoring: BlocksScoring{
			LineMultiplier: 50,
			SoftDropBonus:  1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
