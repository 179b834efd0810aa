package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic game parameters from score and
// cleared lines.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score int, lines int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "lines":
		progress = float64(lines) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the gravity speed factor for the current level.
func (d *DifficultyManager) Speed(score int, lines int) float64 {
	level := d.Level(score, lines)
	// Speed increases from 1 to 1 + speedMultiplier
	return 1.0 + level*d.cfg.Scaling.SpeedMultiplier
}

// TickInterval returns the gravity interval: base shortened by the speed
// factor, never below minimum.
func (d *DifficultyManager) TickInterval(base, minimum time.Duration, score int, lines int) time.Duration {
	speed := d.Speed(score, lines)
	if speed <= 0 {
		speed = 1
	}
	tick := time.Duration(float64(base) / speed)
	if minimum > 0 && tick < minimum {
		tick = minimum
	}
	if tick > base {
		tick = base
	}
	return tick
}

// DisplayLevel maps the difficulty level onto 1..10 for the HUD.
func (d *DifficultyManager) DisplayLevel(score int, lines int) int {
	return 1 + int(d.Level(score, lines)*9)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
