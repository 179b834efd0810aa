package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, r Record) int64 {
	t.Helper()
	id, err := store.SaveScore(r)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Record{Mode: "normal", Score: 100, Lines: 2, Pieces: 30, SessionID: "a", Duration: 90 * time.Second})
	save(t, store, Record{Mode: "normal", Score: 50})
	save(t, store, Record{Mode: "normal", Score: 200})
	save(t, store, Record{Mode: "blitz", Score: 500})

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	r := scores[1]
	if r.Mode != "normal" || r.Lines != 2 || r.Pieces != 30 || r.SessionID != "a" {
		t.Errorf("Record fields not preserved: %+v", r)
	}
	if r.Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 1m30s", r.Duration)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	blitz, err := store.TopScores("blitz", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(blitz) != 1 {
		t.Errorf("Expected 1 blitz score, got %d", len(blitz))
	}
}

func TestStoreSaveRequiresMode(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveScore(Record{Score: 10})
	if !errors.Is(err, ErrNoMode) {
		t.Errorf("SaveScore() error = %v, expected ErrNoMode", err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, Record{Mode: "hard", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("hard", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	save(t, store, Record{Mode: "normal", Score: 100})
	save(t, store, Record{Mode: "normal", Score: 300})
	save(t, store, Record{Mode: "normal", Score: 200})

	high, err = store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Record{Mode: "normal", Score: 100})
	save(t, store, Record{Mode: "normal", Score: 200})
	save(t, store, Record{Mode: "blitz", Score: 300})

	if err := store.ClearScores("normal"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	normal, _ := store.TopScores("normal", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal scores after clear, got %d", len(normal))
	}

	blitz, _ := store.TopScores("blitz", 10)
	if len(blitz) != 1 {
		t.Errorf("Blitz scores should not be affected by clearing normal")
	}
}

func TestStoreAllAndRecentScores(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		save(t, store, Record{Mode: "normal", Score: i * 10, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}

	all, err := store.AllScores("normal")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(all))
	}

	recent, err := store.RecentScores(3)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 190 {
		t.Errorf("RecentScores(3) = %v, expected newest first", recent)
	}
	if !recent[0].CreatedAt.Equal(base.Add(19 * time.Minute)) {
		t.Errorf("CreatedAt = %v, expected %v", recent[0].CreatedAt, base.Add(19*time.Minute))
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Record{Mode: "normal", Score: 100, Lines: 4, Duration: time.Minute})
	save(t, store, Record{Mode: "normal", Score: 300, Lines: 10, Duration: 2 * time.Minute})
	save(t, store, Record{Mode: "blitz", Score: 50, Lines: 1, Duration: 10 * time.Second})

	stats, err := store.GetModeStats("normal")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("GetModeStats() = %+v", stats)
	}
	if stats.TotalLines != 14 || stats.BestLines != 10 {
		t.Errorf("line stats = %d/%d, expected 14/10", stats.TotalLines, stats.BestLines)
	}
	if stats.TimePlayed != 3*time.Minute {
		t.Errorf("TimePlayed = %v, expected 3m", stats.TimePlayed)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetModeStats("hard")
	if err != nil {
		t.Fatalf("GetModeStats() on empty mode failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty mode stats = %+v", empty)
	}

	all, err := store.GetAllModeStats()
	if err != nil {
		t.Fatalf("GetAllModeStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllModeStats() returned %d modes, expected 2", len(all))
	}
	if all["blitz"].HighScore != 50 || all["blitz"].TimePlayed != 10*time.Second {
		t.Errorf("blitz stats = %+v", all["blitz"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
