package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// loadConfig reads blocks.yaml and applies the --difficulty preset.
func loadConfig() (config.BlocksConfig, error) {
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return config.BlocksConfig{}, err
	}

	switch preset := config.DifficultyPreset(flagDifficulty); preset {
	case "":
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		config.ApplyBlocksPreset(&cfg, preset)
	default:
		return config.BlocksConfig{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	return cfg, nil
}

// newRegistry returns the built-in modes, creating games from cfg.
func newRegistry(cfg config.BlocksConfig, logger *log.Logger) *registry.Registry {
	reg := registry.Defaults()
	reg.SetFactory(func(m registry.Mode) (registry.Game, error) {
		return blocks.New(cfg, m, blocks.WithLogger(logger), blocks.WithSeed(flagSeed))
	})
	return reg
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// openLogFile opens ~/.blockfall/blockfall.log for the interactive
// commands, which own the terminal. It falls back to discarding.
func openLogFile() (*log.Logger, func(), error) {
	noop := func() {}

	home, err := os.UserHomeDir()
	if err != nil {
		logger, lerr := newLogger(io.Discard, "blockfall")
		return logger, noop, lerr
	}
	dir := filepath.Join(home, ".blockfall")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger, lerr := newLogger(io.Discard, "blockfall")
		return logger, noop, lerr
	}

	f, err := os.OpenFile(filepath.Join(dir, "blockfall.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger, lerr := newLogger(io.Discard, "blockfall")
		return logger, noop, lerr
	}

	logger, err := newLogger(f, "blockfall")
	if err != nil {
		f.Close()
		return nil, noop, err
	}
	return logger, func() { f.Close() }, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// openStore opens the score database, warning instead of failing: the game
// still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
