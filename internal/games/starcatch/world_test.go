package starcatch

import (
	"testing"

	"github.com/vovakirdan/starcatch/internal/core"
)

func TestWorldSpawnAndCount(t *testing.T) {
	w := NewWorld()

	p := w.SpawnPlayer(core.V2(1, 1))
	e1 := w.SpawnEnemy(core.V2(2, 2), core.V2(1, 0))
	e2 := w.SpawnEnemy(core.V2(3, 3), core.V2(0, 1))
	s := w.SpawnStar(core.V2(4, 4))

	if w.Count(KindPlayer) != 1 || w.Count(KindEnemy) != 2 || w.Count(KindStar) != 1 {
		t.Fatalf("counts = %d/%d/%d, expected 1/2/1",
			w.Count(KindPlayer), w.Count(KindEnemy), w.Count(KindStar))
	}

	seen := map[EntityID]bool{}
	for _, id := range []EntityID{p, e1, e2, s} {
		if id == 0 {
			t.Error("ID 0 should never be issued")
		}
		if seen[id] {
			t.Errorf("ID %d issued twice", id)
		}
		seen[id] = true
	}
}

func TestWorldIterationOrder(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for i := range 5 {
		want = append(want, w.SpawnStar(core.V2(float32(i), 0)))
	}

	var got []EntityID
	for id := range w.Stars() {
		got = append(got, id)
	}

	if len(got) != len(want) {
		t.Fatalf("iterated %d stars, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %d, expected %d", i, got[i], want[i])
		}
	}
}

func TestWorldRemove(t *testing.T) {
	w := NewWorld()
	a := w.SpawnStar(core.V2(0, 0))
	b := w.SpawnStar(core.V2(1, 0))
	c := w.SpawnStar(core.V2(2, 0))

	if !w.Remove(b) {
		t.Fatal("Remove should report a live ID")
	}
	if w.Remove(b) {
		t.Error("Remove twice should report false")
	}
	if w.Count(KindStar) != 2 {
		t.Errorf("Count = %d, expected 2", w.Count(KindStar))
	}
	if _, ok := w.Star(b); ok {
		t.Error("removed star should not be found")
	}

	var got []EntityID
	for id := range w.Stars() {
		got = append(got, id)
	}
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("remaining order = %v, expected [%d %d]", got, a, c)
	}
}

func TestWorldMutationThroughIterator(t *testing.T) {
	w := NewWorld()
	id := w.SpawnEnemy(core.V2(10, 10), core.V2(1, 0))

	for _, e := range w.Enemies() {
		e.Position = core.V2(50, 60)
	}

	e, ok := w.Enemy(id)
	if !ok || e.Position != core.V2(50, 60) {
		t.Errorf("enemy = %+v, expected position updated in place", e)
	}
}

func TestWorldSinglePlayer(t *testing.T) {
	w := NewWorld()

	if _, _, ok := w.SinglePlayer(); ok {
		t.Error("SinglePlayer should fail with no player")
	}

	id := w.SpawnPlayer(core.V2(5, 5))
	got, p, ok := w.SinglePlayer()
	if !ok || got != id || p.Position != core.V2(5, 5) {
		t.Errorf("SinglePlayer = (%d, %+v, %v)", got, p, ok)
	}

	w.SpawnPlayer(core.V2(6, 6))
	if _, _, ok := w.SinglePlayer(); ok {
		t.Error("SinglePlayer should fail with two players")
	}
}

func TestWorldRemoveAll(t *testing.T) {
	w := NewWorld()
	w.SpawnPlayer(core.V2(0, 0))
	w.SpawnEnemy(core.V2(0, 0), core.V2(1, 0))
	w.SpawnStar(core.V2(0, 0))

	w.RemoveAll(KindEnemy, KindStar)
	if w.Count(KindEnemy) != 0 || w.Count(KindStar) != 0 {
		t.Error("enemies and stars should be gone")
	}
	if w.Count(KindPlayer) != 1 {
		t.Error("player should survive")
	}

	// IDs keep increasing after a clear
	w.RemoveAll(KindPlayer)
	if id := w.SpawnStar(core.V2(0, 0)); id != 4 {
		t.Errorf("next ID = %d, expected 4", id)
	}
}
