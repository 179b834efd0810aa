package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var flagMode string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a mode",
	Long: `Start playing the selected mode.

Controls:
  Left/Right, A/D  - Move piece
  Up, W, X         - Rotate
  Down, S          - Soft drop (1 point per row)
  Space            - Hard drop
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Leave (when paused or after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start slow, longer lock delay
  normal - Start at 30% speed-up, progresses to max
  hard   - Start at 70% speed-up, short lock delay
  fixed  - No progression, gravity stays at the mode's base speed

Examples:
  blockfall play
  blockfall play --mode blitz
  blockfall play --mode hard --difficulty fixed
  blockfall play --seed 42
  blockfall play --config ./my-blocks.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "normal", "Play mode: normal, hard, blitz")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	reg := newRegistry(cfg, logger)
	if !reg.Exists(flagMode) {
		return fmt.Errorf("unknown mode %q (run 'blockfall modes' to see available modes)", flagMode)
	}

	game, err := reg.Create(flagMode)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
