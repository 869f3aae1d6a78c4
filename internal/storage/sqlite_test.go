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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("mines_beginner", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("mines_advanced", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("mines_beginner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	limited, err := store.TopScores("mines_beginner", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("mines_beginner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("mines_beginner", 100)
	store.SaveScore("mines_beginner", 300)
	store.SaveScore("mines_beginner", 200)

	high, err = store.HighScore("mines_beginner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(GameResult{
		SessionID: "local",
		GameID:    "mines_beginner",
		Outcome:   "won",
		Score:     143,
		Elapsed:   200,
		Revealed:  43,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("result id %q is not a UUID: %v", id, err)
	}

	got, err := store.ResultByID(id)
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("ResultByID() returned nil for saved result")
	}
	if got.GameID != "mines_beginner" || got.Outcome != "won" || got.Elapsed != 200 || got.Revealed != 43 {
		t.Errorf("unexpected result: %+v", got)
	}

	missing, err := store.ResultByID(uuid.NewString())
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown id, got %+v", missing)
	}
}

func TestStoreSaveResultRejectsBadID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(GameResult{ResultID: "not-a-uuid", GameID: "mines_beginner", Outcome: "lost"}); err == nil {
		t.Error("expected error for malformed result id")
	}

	id := uuid.NewString()
	if _, err := store.SaveResult(GameResult{ResultID: id, GameID: "mines_beginner", Outcome: "lost"}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(GameResult{ResultID: id, GameID: "mines_beginner", Outcome: "lost"}); err == nil {
		t.Error("expected error for duplicate result id")
	}
}

func TestStoreBestTimes(t *testing.T) {
	store := openTestStore(t)

	results := []GameResult{
		{GameID: "mines_beginner", Outcome: "won", Elapsed: 90},
		{GameID: "mines_beginner", Outcome: "lost", Reason: "exploded", Elapsed: 5},
		{GameID: "mines_beginner", Outcome: "won", Elapsed: 45},
		{GameID: "mines_beginner", Outcome: "won", Elapsed: 120},
		{GameID: "mines_advanced", Outcome: "won", Elapsed: 10},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestTimes("mines_beginner", 2)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 best times, got %d", len(best))
	}
	if best[0].Elapsed != 45 || best[1].Elapsed != 90 {
		t.Errorf("best times = %d, %d; want 45, 90", best[0].Elapsed, best[1].Elapsed)
	}

	recent, err := store.RecentResults("mines_beginner", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("Expected 4 recent results, got %d", len(recent))
	}
	if recent[0].Elapsed != 120 {
		t.Errorf("most recent result elapsed = %d, want 120", recent[0].Elapsed)
	}
}

func TestStoreSessionResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(GameResult{SessionID: "a", GameID: "mines_beginner", Outcome: "won"})
	store.SaveResult(GameResult{SessionID: "b", GameID: "mines_beginner", Outcome: "lost"})
	store.SaveResult(GameResult{SessionID: "a", GameID: "mines_advanced", Outcome: "lost"})

	got, err := store.SessionResults("a", 0)
	if err != nil {
		t.Fatalf("SessionResults() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected 2 results for session a, got %d", len(got))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("mines_beginner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Played != 0 || empty.BestTime != 0 || empty.WinRate() != 0 {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	results := []GameResult{
		{GameID: "mines_beginner", Outcome: "won", Score: 143, Elapsed: 157},
		{GameID: "mines_beginner", Outcome: "won", Score: 120, Elapsed: 80},
		{GameID: "mines_beginner", Outcome: "lost", Reason: "exploded", Score: 10},
		{GameID: "mines_beginner", Outcome: "lost", Reason: "timed_out", Score: 30, Elapsed: 300},
		{GameID: "mines_advanced", Outcome: "lost", Reason: "exploded"},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("mines_beginner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Played != 4 || stats.Won != 2 || stats.Exploded != 1 || stats.TimedOut != 1 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.BestTime != 80 {
		t.Errorf("BestTime = %d, want 80", stats.BestTime)
	}
	if stats.HighScore != 143 {
		t.Errorf("HighScore = %d, want 143", stats.HighScore)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("WinRate = %v, want 0.5", stats.WinRate())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["mines_advanced"].Played != 1 || all["mines_advanced"].Won != 0 {
		t.Errorf("advanced stats = %+v", all["mines_advanced"])
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("mines_beginner", 100)
	store.SaveScore("mines_advanced", 300)
	store.SaveResult(GameResult{GameID: "mines_beginner", Outcome: "won"})
	store.SaveResult(GameResult{GameID: "mines_advanced", Outcome: "won"})

	if err := store.ClearScores("mines_beginner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("mines_beginner", 10); len(scores) != 0 {
		t.Errorf("Expected 0 beginner scores after clear, got %d", len(scores))
	}
	if results, _ := store.RecentResults("mines_beginner", 10); len(results) != 0 {
		t.Errorf("Expected 0 beginner results after clear, got %d", len(results))
	}
	if scores, _ := store.TopScores("mines_advanced", 10); len(scores) != 1 {
		t.Error("Advanced scores should not be affected by clearing beginner")
	}
	if results, _ := store.RecentResults("mines_advanced", 10); len(results) != 1 {
		t.Error("Advanced results should not be affected by clearing beginner")
	}
}
