package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/engine"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const blocksFile = "blocks.yaml"

// LoadBlocks loads blockfall configuration.
// Search order: customPath -> ~/.blockfall/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it names. The result is validated.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseBlocks(data)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(blocksFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBlocks(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", blocksFile)); err == nil {
		if cfg, err := ParseBlocks(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBlocks(defaultBlocksYAML)
	if err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBlocks decodes YAML over the hard-coded defaults and validates it.
func ParseBlocks(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlocksConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BlocksConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c BlocksConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first inconsistency in the configuration.
func (c BlocksConfig) Validate() error {
	b := c.Board
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("config: invalid board %dx%d: %w", b.Width, b.Height, ErrInvalid)
	case b.HiddenRows < 0 || b.HiddenRows >= b.Height:
		return fmt.Errorf("config: invalid hidden_rows %d: %w", b.HiddenRows, ErrInvalid)
	case c.Timing.TickMs <= 0:
		return fmt.Errorf("config: invalid tick_ms %d: %w", c.Timing.TickMs, ErrInvalid)
	case c.Timing.MinTickMs < 0 || c.Timing.MinTickMs > c.Timing.TickMs:
		return fmt.Errorf("config: invalid min_tick_ms %d: %w", c.Timing.MinTickMs, ErrInvalid)
	case c.Timing.LockDelayMs < 0:
		return fmt.Errorf("config: invalid lock_delay_ms %d: %w", c.Timing.LockDelayMs, ErrInvalid)
	case c.Timing.MaxLockResets < 0:
		return fmt.Errorf("config: invalid max_lock_resets %d: %w", c.Timing.MaxLockResets, ErrInvalid)
	case c.Scoring.LineMultiplier < 0 || c.Scoring.SoftDropBonus < 0:
		return fmt.Errorf("config: scoring values must not be negative: %w", ErrInvalid)
	}

	switch c.Difficulty.Progression.Type {
	case "lines", "score", "none", "":
	default:
		return fmt.Errorf("config: unknown progression type %q: %w", c.Difficulty.Progression.Type, ErrInvalid)
	}

	// Spawn bounds are the engine's to judge.
	if _, err := engine.NewBoard(c.EngineBoard(), engine.NewRandomGenerator(nil)); err != nil {
		return fmt.Errorf("config: invalid board: %w", err)
	}
	return nil
}

// EngineBoard converts the board section into engine parameters.
func (c BlocksConfig) EngineBoard() engine.BoardConfig {
	return engine.BoardConfig{
		Width:           c.Board.Width,
		Height:          c.Board.Height,
		SpawnX:          c.Board.SpawnX,
		SpawnY:          c.Board.SpawnY,
		ScoreMultiplier: c.Scoring.LineMultiplier,
	}
}

// EngineLock converts the timing and scoring sections into lock
// controller parameters.
func (c BlocksConfig) EngineLock() engine.LockConfig {
	return engine.LockConfig{
		Enabled:       c.Timing.LockDelay,
		Delay:         time.Duration(c.Timing.LockDelayMs) * time.Millisecond,
		MaxResets:     c.Timing.MaxLockResets,
		SoftDropBonus: c.Scoring.SoftDropBonus,
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust lock delay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timing.LockDelayMs = 500
		cfg.Timing.MaxLockResets = 15
	case DifficultyHard:
		cfg.Timing.LockDelayMs = 200
		cfg.Timing.MaxLockResets = 5
	}
}
