package starcatch

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

func TestPlayerDirection(t *testing.T) {
	diag := float32(1 / math.Sqrt2)
	tests := []struct {
		name string
		held []core.Action
		want core.Vec2
	}{
		{"idle", nil, core.V2(0, 0)},
		{"up", []core.Action{core.ActionMoveUp}, core.V2(0, 1)},
		{"down", []core.Action{core.ActionMoveDown}, core.V2(0, -1)},
		{"left", []core.Action{core.ActionMoveLeft}, core.V2(-1, 0)},
		{"right", []core.Action{core.ActionMoveRight}, core.V2(1, 0)},
		{"up right", []core.Action{core.ActionMoveUp, core.ActionMoveRight}, core.V2(diag, diag)},
		{"opposites cancel", []core.Action{core.ActionMoveLeft, core.ActionMoveRight}, core.V2(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PlayerDirection(heldFrame(0, tc.held...).Input)
			if math.Abs(float64(got.X-tc.want.X)) > 1e-5 || math.Abs(float64(got.Y-tc.want.Y)) > 1e-5 {
				t.Errorf("PlayerDirection = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestMovePlayer(t *testing.T) {
	w := NewWorld()
	w.SpawnPlayer(core.V2(100, 100))

	MovePlayer(w, heldFrame(0, core.ActionMoveRight).Input, 500, 0.5)

	_, p, _ := w.SinglePlayer()
	if p.Position != core.V2(350, 100) {
		t.Errorf("Position = %v, expected (350, 100)", p.Position)
	}
}

func TestMovePlayerMissingSingleton(t *testing.T) {
	w := NewWorld()
	// Must not panic
	MovePlayer(w, heldFrame(0, core.ActionMoveUp).Input, 500, 1)
	ConfinePlayer(w, core.InsetBounds(800, 600, 32))
	if EnemyHitPlayer(w, 64) {
		t.Error("no player means no hit")
	}
	if PlayerHitStars(w, 47) != 0 {
		t.Error("no player means no stars collected")
	}
}

func TestMoveEnemies(t *testing.T) {
	w := NewWorld()
	id := w.SpawnEnemy(core.V2(100, 100), core.V2(0, -1))

	MoveEnemies(w, 200, 0.25)

	e, _ := w.Enemy(id)
	if e.Position != core.V2(100, 50) {
		t.Errorf("Position = %v, expected (100, 50)", e.Position)
	}
}

func TestReflectEnemies(t *testing.T) {
	b := core.InsetBounds(800, 600, 32)
	tests := []struct {
		name    string
		pos     core.Vec2
		dir     core.Vec2
		want    core.Vec2
		changed bool
	}{
		{"inside keeps direction", core.V2(400, 300), core.V2(-0.6, 0.8), core.V2(-0.6, 0.8), false},
		{"past left", core.V2(10, 300), core.V2(-0.6, 0.8), core.V2(0.6, 0.8), true},
		{"past right", core.V2(790, 300), core.V2(0.6, 0.8), core.V2(-0.6, 0.8), true},
		{"past bottom", core.V2(400, 5), core.V2(0.6, -0.8), core.V2(0.6, 0.8), true},
		{"past top", core.V2(400, 590), core.V2(0.6, 0.8), core.V2(0.6, -0.8), true},
		{"corner", core.V2(-5, 700), core.V2(-0.6, 0.8), core.V2(0.6, -0.8), true},
		// Already heading inward: still counts as a reflection, sign unchanged.
		{"past left heading in", core.V2(10, 300), core.V2(0.6, 0.8), core.V2(0.6, 0.8), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			id := w.SpawnEnemy(tc.pos, tc.dir)

			changed := ReflectEnemies(w, b)

			e, _ := w.Enemy(id)
			if e.Direction != tc.want {
				t.Errorf("Direction = %v, expected %v", e.Direction, tc.want)
			}
			if changed != tc.changed {
				t.Errorf("changed = %v, expected %v", changed, tc.changed)
			}
			if e.Position != tc.pos {
				t.Errorf("reflection must not move the enemy, got %v", e.Position)
			}
		})
	}
}

func TestReflectEnemiesPointsInward(t *testing.T) {
	b := core.InsetBounds(800, 600, 32)
	rng := rand.New(rand.NewSource(7))
	w := NewWorld()

	for range 500 {
		pos := core.V2(rng.Float32()*1000-100, rng.Float32()*800-100)
		dir := core.V2(rng.Float32()*2-1, rng.Float32()*2-1).Normalize()
		w.SpawnEnemy(pos, dir)
	}

	ReflectEnemies(w, b)

	for id, e := range w.Enemies() {
		if e.Position.X < b.Min.X && e.Direction.X < 0 {
			t.Errorf("enemy %d below min X still heading out: %v", id, e.Direction)
		}
		if e.Position.X > b.Max.X && e.Direction.X > 0 {
			t.Errorf("enemy %d above max X still heading out: %v", id, e.Direction)
		}
		if e.Position.Y < b.Min.Y && e.Direction.Y < 0 {
			t.Errorf("enemy %d below min Y still heading out: %v", id, e.Direction)
		}
		if e.Position.Y > b.Max.Y && e.Direction.Y > 0 {
			t.Errorf("enemy %d above max Y still heading out: %v", id, e.Direction)
		}
	}
}

func TestConfineKeepsEntitiesInside(t *testing.T) {
	playerBounds := core.InsetBounds(800, 600, 32)
	enemyBounds := core.InsetBounds(800, 600, 32)
	rng := rand.New(rand.NewSource(11))

	w := NewWorld()
	w.SpawnPlayer(core.V2(-50, 900))
	for range 50 {
		w.SpawnEnemy(core.V2(rng.Float32()*1200-200, rng.Float32()*1000-200), core.V2(1, 0))
	}

	ConfinePlayer(w, playerBounds)
	ConfineEnemies(w, enemyBounds, config.ClampAll)

	if p := worldPlayer(w); !playerBounds.Contains(p) {
		t.Errorf("player at %v outside %+v", p, playerBounds)
	}
	if p := worldPlayer(w); p != core.V2(32, 568) {
		t.Errorf("player clamped to %v, expected (32, 568)", p)
	}
	for id, e := range w.Enemies() {
		if !enemyBounds.Contains(e.Position) {
			t.Errorf("enemy %d at %v outside bounds", id, e.Position)
		}
	}
}

func worldPlayer(w *World) core.Vec2 {
	_, p, _ := w.SinglePlayer()
	return p.Position
}

func TestConfineEnemiesFirstOnly(t *testing.T) {
	b := core.InsetBounds(800, 600, 32)
	w := NewWorld()
	first := w.SpawnEnemy(core.V2(-10, 300), core.V2(1, 0))
	second := w.SpawnEnemy(core.V2(900, 300), core.V2(1, 0))

	ConfineEnemies(w, b, config.ClampFirst)

	e1, _ := w.Enemy(first)
	e2, _ := w.Enemy(second)
	if e1.Position != core.V2(32, 300) {
		t.Errorf("first enemy = %v, expected clamped to (32, 300)", e1.Position)
	}
	if e2.Position != core.V2(900, 300) {
		t.Errorf("second enemy = %v, expected untouched", e2.Position)
	}
}

func TestEnemyHitPlayer(t *testing.T) {
	tests := []struct {
		name     string
		distance float32
		hit      bool
	}{
		{"overlapping", 10, true},
		{"exactly touching", 64, true},
		{"just apart", 64.5, false},
		{"far", 300, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			w.SpawnPlayer(core.V2(400, 300))
			w.SpawnEnemy(core.V2(400+tc.distance, 300), core.V2(0, 0))

			hit := EnemyHitPlayer(w, 64)

			if hit != tc.hit {
				t.Errorf("hit = %v, expected %v", hit, tc.hit)
			}
			wantPlayers := 1
			if tc.hit {
				wantPlayers = 0
			}
			if w.Count(KindPlayer) != wantPlayers {
				t.Errorf("players = %d, expected %d", w.Count(KindPlayer), wantPlayers)
			}
		})
	}
}

func TestPlayerHitStarsCollectsAllOverlapping(t *testing.T) {
	w := NewWorld()
	w.SpawnPlayer(core.V2(400, 300))
	w.SpawnStar(core.V2(400, 300)) // distance 0
	w.SpawnStar(core.V2(447, 300)) // exactly touching
	far := w.SpawnStar(core.V2(500, 300))

	n := PlayerHitStars(w, 47)

	if n != 2 {
		t.Errorf("collected %d, expected 2", n)
	}
	if w.Count(KindStar) != 1 {
		t.Errorf("stars left = %d, expected 1", w.Count(KindStar))
	}
	if _, ok := w.Star(far); !ok {
		t.Error("far star should remain")
	}
}

func TestConfineInvertedBoundsPicksLowerEdge(t *testing.T) {
	// 50 units wide with a 32-unit half extent: Min.X > Max.X.
	b := core.InsetBounds(50, 600, 32)
	w := NewWorld()
	left := w.SpawnEnemy(core.V2(-100, 300), core.V2(1, 0))
	right := w.SpawnEnemy(core.V2(500, 300), core.V2(1, 0))

	ConfineEnemies(w, b, config.ClampAll)

	for _, id := range []EntityID{left, right} {
		e, _ := w.Enemy(id)
		if e.Position.X != b.Min.X {
			t.Errorf("enemy %d X = %v, expected lower edge %v", id, e.Position.X, b.Min.X)
		}
	}
}
