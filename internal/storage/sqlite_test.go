package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreCreatesNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "deep", "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed for nested path: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// A lost run, a completed run, and a deeper lost run
	runs := []RunRecord{
		{Pack: "classic", Outcome: OutcomeGameOver, LevelReached: 2, Lives: 0, Duration: 40},
		{Pack: "classic", Outcome: OutcomeCompleted, LevelReached: 6, Lives: 1, Duration: 180},
		{Pack: "classic", Outcome: OutcomeGameOver, LevelReached: 4, Lives: 0, Duration: 95},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Different pack
	if _, err := store.SaveRun(RunRecord{Pack: "rapids", Outcome: OutcomeGameOver, LevelReached: 1, Duration: 12}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	top, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 classic runs, got %d", len(top))
	}

	// Completed run first, then lost runs by depth
	if top[0].Outcome != OutcomeCompleted {
		t.Errorf("Expected completed run first, got %s", top[0].Outcome)
	}
	if top[1].LevelReached != 4 || top[2].LevelReached != 2 {
		t.Errorf("Lost runs not ordered by depth: %d then %d", top[1].LevelReached, top[2].LevelReached)
	}

	rapids, err := store.TopRuns("rapids", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(rapids) != 1 {
		t.Errorf("Expected 1 rapids run, got %d", len(rapids))
	}
}

func TestStoreFasterCompletionRanksHigher(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunRecord{Pack: "classic", Outcome: OutcomeCompleted, LevelReached: 6, Duration: 200})
	store.SaveRun(RunRecord{Pack: "classic", Outcome: OutcomeCompleted, LevelReached: 6, Duration: 120})

	top, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(top))
	}
	if top[0].Duration != 120 {
		t.Errorf("Expected the faster completion first, got duration %d", top[0].Duration)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 runs of increasing depth
	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Pack: "test", Outcome: OutcomeGameOver, LevelReached: i + 1})
	}

	// Request only top 3
	top, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}

	// Should be levels 5, 4, 3
	if top[0].LevelReached != 5 || top[1].LevelReached != 4 || top[2].LevelReached != 3 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunRecord{Pack: "classic", Outcome: OutcomeGameOver, LevelReached: 1})
	store.SaveRun(RunRecord{Pack: "rapids", Outcome: OutcomeGameOver, LevelReached: 2})
	store.SaveRun(RunRecord{Pack: "gauntlet", Outcome: OutcomeCompleted, LevelReached: 3})

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent runs, got %d", len(recent))
	}

	// Newest first
	if recent[0].Pack != "gauntlet" || recent[1].Pack != "rapids" {
		t.Errorf("Expected gauntlet then rapids, got %s then %s", recent[0].Pack, recent[1].Pack)
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.Completed != 0 || stats.BestLevel != 0 || stats.BestTime != 0 {
		t.Errorf("Expected zeroed stats for unplayed pack, got %+v", stats)
	}

	store.SaveRun(RunRecord{Pack: "classic", Outcome: OutcomeGameOver, LevelReached: 3, Duration: 60})
	store.SaveRun(RunRecord{Pack: "classic", Outcome: OutcomeCompleted, LevelReached: 6, Duration: 240})
	store.SaveRun(RunRecord{Pack: "classic", Outcome: OutcomeCompleted, LevelReached: 6, Duration: 150})

	stats, err = store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Runs != 3 {
		t.Errorf("Expected 3 runs, got %d", stats.Runs)
	}
	if stats.Completed != 2 {
		t.Errorf("Expected 2 completions, got %d", stats.Completed)
	}
	if stats.BestLevel != 6 {
		t.Errorf("Expected best level 6, got %d", stats.BestLevel)
	}
	if stats.BestTime != 150 {
		t.Errorf("Expected best time 150, got %d", stats.BestTime)
	}
}

func TestStoreClear(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunRecord{Pack: "classic", Outcome: OutcomeGameOver, LevelReached: 1})
	store.SaveRun(RunRecord{Pack: "rapids", Outcome: OutcomeGameOver, LevelReached: 1})

	if err := store.Clear("classic"); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	classic, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(classic) != 0 {
		t.Errorf("Expected no classic runs after Clear, got %d", len(classic))
	}

	rapids, err := store.TopRuns("rapids", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(rapids) != 1 {
		t.Errorf("Clear(classic) should not touch rapids, got %d runs", len(rapids))
	}
}
