// Package config provides YAML-based game configuration loading and
// difficulty management for blockfall.
package config

import "time"

// BlocksConfig contains all configuration for a blockfall session.
type BlocksConfig struct {
	Board      BlocksBoard      `yaml:"board"`
	Timing     BlocksTiming     `yaml:"timing"`
	Scoring    BlocksScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlocksBoard defines the playfield geometry.
type BlocksBoard struct {
	Width      int `yaml:"width"`       // Columns
	Height     int `yaml:"height"`      // Rows, including hidden rows
	HiddenRows int `yaml:"hidden_rows"` // Top rows not drawn (spawn headroom)
	SpawnX     int `yaml:"spawn_x"`
	SpawnY     int `yaml:"spawn_y"`
}

// BlocksTiming defines gravity and lock delay timing.
type BlocksTiming struct {
	TickMs        int  `yaml:"tick_ms"`     // Gravity interval at difficulty level 0
	MinTickMs     int  `yaml:"min_tick_ms"` // Floor for the accelerated interval
	LockDelay     bool `yaml:"lock_delay"`
	LockDelayMs   int  `yaml:"lock_delay_ms"`
	MaxLockResets int  `yaml:"max_lock_resets"` // 0 disables the cap
}

// BlocksScoring defines point values.
type BlocksScoring struct {
	LineMultiplier int `yaml:"line_multiplier"` // Clear bonus is multiplier * lines^2
	SoftDropBonus  int `yaml:"soft_drop_bonus"` // Points per player soft drop
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed added at max difficulty
}

// Tick returns the base gravity interval.
func (c BlocksConfig) Tick() time.Duration {
	return time.Duration(c.Timing.TickMs) * time.Millisecond
}

// MinTick returns the shortest gravity interval difficulty may reach.
func (c BlocksConfig) MinTick() time.Duration {
	return time.Duration(c.Timing.MinTickMs) * time.Millisecond
}

// VisibleRows returns the number of rows drawn on screen.
func (c BlocksConfig) VisibleRows() int {
	return c.Board.Height - c.Board.HiddenRows
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
