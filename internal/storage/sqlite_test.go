package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 50, 300, 200} {
		if _, err := store.SaveScore("sinkhole", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 9000)

	scores, err := store.TopScores("sinkhole", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 300 || scores[2].Score != 200 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("sinkhole")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("sinkhole", 100)
	store.SaveScore("sinkhole", 300)

	if high, _ = store.HighScore("sinkhole"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	n, err := store.ClearScores("sinkhole")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearScores() removed %d scores, expected 2", n)
	}
	if high, _ = store.HighScore("sinkhole"); high != 0 {
		t.Errorf("Expected no scores after clear, got %d", high)
	}
}

func TestStoreSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{Seed: 42, Score: 1234, Depth: 2500.5, Kills: 7, Upgrades: 1, Multiplier: 1.1, Duration: 61.5})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a uuid: %v", id, err)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Run() found nothing")
	}
	if got.Player != "local" || got.Seed != 42 || got.Score != 1234 || got.Depth != 2500.5 || got.Kills != 7 {
		t.Errorf("Run() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestStoreRunMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Run(uuid.NewString())
	if err != nil || got != nil {
		t.Errorf("Run() = %v, %v; expected nil, nil", got, err)
	}
}

func TestStoreBestAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for _, score := range []int{300, 900, 100, 600} {
		id, err := store.SaveRun(RunRecord{Player: "ada", Score: score})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}

	best, err := store.BestRuns(2)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 2 || best[0].Score != 900 || best[1].Score != 600 {
		t.Errorf("BestRuns() = %+v", best)
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("RecentRuns() returned %d runs", len(recent))
	}
	if recent[0].ID != ids[3] {
		t.Errorf("newest run = %s, expected %s", recent[0].ID, ids[3])
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", empty)
	}

	store.SaveRun(RunRecord{Score: 100, Depth: 1000, Kills: 2})
	store.SaveRun(RunRecord{Score: 300, Depth: 800, Kills: 5})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 300 || stats.BestDepth != 1000 || stats.TotalKills != 7 || stats.AvgScore != 200 {
		t.Errorf("Stats() = %+v", stats)
	}
}
