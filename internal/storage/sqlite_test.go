package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

	for _, s := range []struct {
		name  string
		score int
	}{{"ann", 100}, {"bob", 50}, {"cat", 200}} {
		if _, err := store.SaveScore("duckdash", s.name, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("duckdash-classic", "dan", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("duckdash", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []struct {
		name  string
		score int
	}{{"cat", 200}, {"ann", 100}, {"bob", 50}}
	for i, w := range want {
		if scores[i].Name != w.name || scores[i].Score != w.score {
			t.Errorf("entry %d = %s/%d, want %s/%d", i, scores[i].Name, scores[i].Score, w.name, w.score)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("entry %d has no date", i)
		}
	}

	classic, err := store.TopScores("duckdash-classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 || classic[0].Score != 500 {
		t.Errorf("classic scores = %+v", classic)
	}
}

func TestLeaderboardKeepsTopFive(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score    int
		wantRank int
	}{
		{100, 1},
		{300, 1},
		{200, 2},
		{50, 4},
		{400, 1},
		{10, 0},  // sixth place is dropped
		{250, 3}, // pushes 50 out
		{250, 4}, // ties rank below the earlier entry
	}
	for _, tt := range tests {
		rank, err := store.SaveScore("duckdash", "p", tt.score)
		if err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", tt.score, err)
		}
		if rank != tt.wantRank {
			t.Errorf("SaveScore(%d) rank = %d, want %d", tt.score, rank, tt.wantRank)
		}
	}

	scores, err := store.TopScores("duckdash", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != LeaderboardSize {
		t.Fatalf("leaderboard has %d entries, want %d", len(scores), LeaderboardSize)
	}
	wantScores := []int{400, 300, 250, 250, 200}
	for i, w := range wantScores {
		if scores[i].Score != w {
			t.Errorf("entry %d = %d, want %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	hs, err := store.HighScore("duckdash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected 0 for no scores, got %d", hs)
	}

	store.SaveScore("duckdash", "a", 100)
	store.SaveScore("duckdash", "b", 300)
	store.SaveScore("duckdash", "c", 200)
	store.SaveScore("duckdash-classic", "d", 900)

	hs, err = store.HighScore("duckdash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 300 {
		t.Errorf("Expected high score 300, got %d", hs)
	}

	best, err := store.BestOverall()
	if err != nil {
		t.Fatal(err)
	}
	if best != 900 {
		t.Errorf("BestOverall() = %d, want 900", best)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("duckdash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	// Stats include runs that fell off the leaderboard.
	for i := 1; i <= 7; i++ {
		if _, err := store.SaveScore("duckdash", "p", i*100); err != nil {
			t.Fatal(err)
		}
	}

	stats, err = store.GetGameStats("duckdash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 7 {
		t.Errorf("GamesCount = %d, want 7", stats.GamesCount)
	}
	if stats.HighScore != 700 {
		t.Errorf("HighScore = %d, want 700", stats.HighScore)
	}
	if stats.TotalScore != 2800 || stats.AvgScore != 400 {
		t.Errorf("total/avg = %d/%v, want 2800/400", stats.TotalScore, stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all["duckdash"] == nil {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("duckdash", "a", 100)
	store.SaveScore("duckdash-classic", "b", 200)

	if err := store.ClearScores("duckdash"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("duckdash", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	stats, _ := store.GetGameStats("duckdash")
	if stats.GamesCount != 0 {
		t.Error("stats should be cleared")
	}

	classic, _ := store.TopScores("duckdash-classic", 10)
	if len(classic) != 1 {
		t.Error("other game's scores should be untouched")
	}
}

func TestSkinUnlocks(t *testing.T) {
	store := openTestStore(t)

	added, err := store.UnlockSkins("classic", "mallard")
	if err != nil {
		t.Fatal(err)
	}
	if len(added) != 2 {
		t.Errorf("added = %v, want 2 skins", added)
	}

	added, err = store.UnlockSkins("mallard", "ghost")
	if err != nil {
		t.Fatal(err)
	}
	if len(added) != 1 || added[0] != "ghost" {
		t.Errorf("added = %v, want [ghost]", added)
	}

	ids, err := store.UnlockedSkins()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 3 {
		t.Errorf("unlocked = %v, want 3 skins", ids)
	}
}

func TestSelectedSkin(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SelectedSkin()
	if err != nil || id != "" {
		t.Fatalf("SelectedSkin() = %q, %v", id, err)
	}

	if err := store.SelectSkin("ghost"); err != nil {
		t.Fatal(err)
	}
	if err := store.SelectSkin("lava"); err != nil {
		t.Fatal(err)
	}
	id, err = store.SelectedSkin()
	if err != nil || id != "lava" {
		t.Errorf("SelectedSkin() = %q, %v, want lava", id, err)
	}
}
