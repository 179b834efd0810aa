package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores flag variables that cobra leaves set between runs.
func resetFlags() {
	flagConfig = ""
	flagDifficulty = ""
	flagDBPath = "~/.blockfall/scores.db"
	flagLimit = 10
	flagAll, flagRecent, flagClear, flagDefaults = false, false, false, false
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestModesCommand(t *testing.T) {
	out, err := execute(t, "modes")
	require.NoError(t, err)

	assert.Contains(t, out, "normal")
	assert.Contains(t, out, "hard")
	assert.Contains(t, out, "blitz")
	assert.Contains(t, out, "125ms")
}

func TestConfigCommandAppliesModeAndPreset(t *testing.T) {
	path := writeConfig(t, "board:\n  width: 12\n")

	out, err := execute(t, "config", "blitz", "--config", path, "--difficulty", "hard")
	require.NoError(t, err)

	assert.Contains(t, out, "width: 12")
	assert.Contains(t, out, "spawn_y: 10")
	assert.Contains(t, out, "tick_ms: 125")
	assert.Contains(t, out, "lock_delay_ms: 200")
}

func TestConfigCommandRejectsUnknownDifficulty(t *testing.T) {
	_, err := execute(t, "config", "--difficulty", "brutal")
	assert.ErrorContains(t, err, "unknown difficulty")
}

func TestConfigCommandRejectsUnknownMode(t *testing.T) {
	path := writeConfig(t, "")
	_, err := execute(t, "config", "zen", "--config", path)
	assert.ErrorContains(t, err, "unknown mode")
}

func TestScoresCommandEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")

	out, err := execute(t, "scores", "normal", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No scores recorded yet.")

	out, err = execute(t, "scores", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "blitz")
}

func TestScoresCommandRecentAndClear(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	require.NoError(t, err)
	_, err = store.SaveScore(storage.Record{Mode: "blitz", Score: 640, Lines: 5})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out, err := execute(t, "scores", "blitz", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "640")

	out, err = execute(t, "scores", "--recent", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "blitz")
	assert.Contains(t, out, "640")

	out, err = execute(t, "scores", "blitz", "--clear", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared scores for Blitz.")

	out, err = execute(t, "scores", "blitz", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No scores recorded yet.")
}

func TestConfigCommandDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "hidden_rows")
}
