package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/engine"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseBlocks(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseBlocks(default) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBlocksConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultBlocksConfig())
	}
}

func TestLoadBlocksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	data := []byte("board:\n  width: 12\ntiming:\n  lock_delay: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("Board.Width = %d, expected 12", cfg.Board.Width)
	}
	if cfg.Board.Height != 25 {
		t.Errorf("Board.Height = %d, expected default 25", cfg.Board.Height)
	}
	if cfg.Timing.LockDelay {
		t.Error("Timing.LockDelay should be overridden to false")
	}
	if cfg.Timing.TickMs != 400 {
		t.Errorf("Timing.TickMs = %d, expected default 400", cfg.Timing.TickMs)
	}
}

func TestLoadBlocksMissingCustomPath(t *testing.T) {
	_, err := LoadBlocks(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadBlocks() with a missing file should fail")
	}
}

func TestLoadBlocksRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBlocks(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadBlocks() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlocksConfig)
		want   error
	}{
		{"defaults", func(*BlocksConfig) {}, nil},
		{"zero height", func(c *BlocksConfig) { c.Board.Height = 0 }, ErrInvalid},
		{"hidden rows cover board", func(c *BlocksConfig) { c.Board.HiddenRows = 25 }, ErrInvalid},
		{"zero tick", func(c *BlocksConfig) { c.Timing.TickMs = 0 }, ErrInvalid},
		{"min tick above tick", func(c *BlocksConfig) { c.Timing.MinTickMs = 500 }, ErrInvalid},
		{"negative lock delay", func(c *BlocksConfig) { c.Timing.LockDelayMs = -1 }, ErrInvalid},
		{"negative bonus", func(c *BlocksConfig) { c.Scoring.SoftDropBonus = -1 }, ErrInvalid},
		{"unknown progression", func(c *BlocksConfig) { c.Difficulty.Progression.Type = "time" }, ErrInvalid},
		{"spawn off board", func(c *BlocksConfig) { c.Board.SpawnX = 10 }, engine.ErrInvalidSpawn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestEngineConversion(t *testing.T) {
	cfg := DefaultBlocksConfig()

	board := cfg.EngineBoard()
	want := engine.BoardConfig{Width: 10, Height: 25, SpawnX: 4, SpawnY: 2, ScoreMultiplier: 50}
	if board != want {
		t.Errorf("EngineBoard() = %+v, expected %+v", board, want)
	}

	lock := cfg.EngineLock()
	if !lock.Enabled || lock.Delay != 300*time.Millisecond || lock.MaxResets != 10 || lock.SoftDropBonus != 1 {
		t.Errorf("EngineLock() = %+v", lock)
	}
	if cfg.Tick() != 400*time.Millisecond {
		t.Errorf("Tick() = %v, expected 400ms", cfg.Tick())
	}
	if cfg.VisibleRows() != 23 {
		t.Errorf("VisibleRows() = %d, expected 23", cfg.VisibleRows())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultBlocksConfig()
	cfg.Board.SpawnY = 5
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := ParseBlocks(data)
	if err != nil {
		t.Fatalf("ParseBlocks() error = %v", err)
	}
	if got.Board.SpawnY != 5 {
		t.Errorf("SpawnY = %d, expected 5", got.Board.SpawnY)
	}
}

func TestApplyBlocksPreset(t *testing.T) {
	cfg := DefaultBlocksConfig()
	ApplyBlocksPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Timing.LockDelayMs != 200 {
		t.Errorf("hard preset LockDelayMs = %d, expected 200", cfg.Timing.LockDelayMs)
	}

	ApplyBlocksPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "lines", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 3.0},
	})

	tests := []struct {
		lines int
		want  float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(0, tt.lines); got != tt.want {
			t.Errorf("Level(0, %d) = %v, expected %v", tt.lines, got, tt.want)
		}
	}

	if got := dm.DisplayLevel(0, 0); got != 1 {
		t.Errorf("DisplayLevel(0, 0) = %d, expected 1", got)
	}
	if got := dm.DisplayLevel(0, 100); got != 10 {
		t.Errorf("DisplayLevel(0, 100) = %d, expected 10", got)
	}
}

func TestDifficultyTickInterval(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "lines", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 3.0},
	})
	base := 400 * time.Millisecond
	minimum := 120 * time.Millisecond

	if got := dm.TickInterval(base, minimum, 0, 0); got != base {
		t.Errorf("TickInterval at level 0 = %v, expected %v", got, base)
	}
	if got := dm.TickInterval(base, minimum, 0, 100); got != minimum {
		t.Errorf("TickInterval at max level = %v, expected floor %v", got, minimum)
	}
	if got := dm.TickInterval(base, 0, 0, 100); got != 100*time.Millisecond {
		t.Errorf("TickInterval without floor = %v, expected 100ms", got)
	}

	dm.SetEnabled(false)
	if got := dm.TickInterval(base, minimum, 0, 100); got != base {
		t.Errorf("TickInterval with progression off = %v, expected %v", got, base)
	}
}
