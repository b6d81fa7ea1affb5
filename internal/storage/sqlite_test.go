package storage

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{1, 5, 3} {
		if _, err := store.SaveScore(s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{5, 3, 1}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreSaveReturnsIncreasingIDs(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveScore(0)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	second, err := store.SaveScore(0)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	if second <= first {
		t.Errorf("IDs not increasing: %d then %d", first, second)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(i + 1)
	}

	// Request only top 3
	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)

	firstID, _ := store.SaveScore(7)
	secondID, _ := store.SaveScore(7)

	scores, err := store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 2 || scores[0].ID != firstID || scores[1].ID != secondID {
		t.Errorf("ties out of insertion order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an empty session, got %d", high)
	}

	store.SaveScore(2)
	store.SaveScore(9)
	store.SaveScore(4)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("Expected high score of 9, got %d", high)
	}
}

func TestStoreRank(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(10)
	store.SaveScore(5)
	store.SaveScore(5)

	tests := []struct {
		score int
		want  int
	}{
		{11, 1},
		{10, 1},
		{7, 2},
		{5, 2},
		{0, 4},
	}

	for _, tc := range tests {
		got, err := store.Rank(tc.score)
		if err != nil {
			t.Fatalf("Rank() failed: %v", err)
		}
		if got != tc.want {
			t.Errorf("Rank(%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty != (Stats{}) {
		t.Errorf("Stats() on empty store = %+v, expected zero", empty)
	}

	store.SaveScore(2)
	store.SaveScore(4)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.Best != 4 || st.Total != 6 || st.Average != 3 {
		t.Errorf("Stats() = %+v, expected 2 runs, best 4, total 6, average 3", st)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveScore(3)

	high, err := b.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("second store saw score %d from the first", high)
	}
}
