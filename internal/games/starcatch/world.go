package starcatch

import (
	"iter"
	"slices"

	"github.com/vovakirdan/starcatch/internal/core"
)

// EntityID identifies a live entity. IDs are unique across kinds and never reused.
type EntityID uint64

// Kind is the closed set of entity kinds.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindStar
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Player is the input-driven avatar.
type Player struct {
	Position core.Vec2
}

// Enemy roams the arena in a straight line until it reflects off an edge.
type Enemy struct {
	Position  core.Vec2
	Direction core.Vec2 // Unit length, or zero for a stationary enemy
}

// Star is a collectible worth one point.
type Star struct {
	Position core.Vec2
}

// table is one typed entity store. Iteration follows creation order.
type table[T any] struct {
	order []EntityID
	rows  map[EntityID]*T
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[EntityID]*T)}
}

func (t *table[T]) insert(id EntityID, v T) {
	t.order = append(t.order, id)
	t.rows[id] = &v
}

func (t *table[T]) remove(id EntityID) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	if i := slices.Index(t.order, id); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
	return true
}

func (t *table[T]) get(id EntityID) (*T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) all() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for _, id := range t.order {
			if !yield(id, t.rows[id]) {
				return
			}
		}
	}
}

func (t *table[T]) clear() {
	t.order = t.order[:0]
	clear(t.rows)
}

// World is the entity store. It exclusively owns every Player, Enemy and
// Star record; the three kinds live in independent typed tables.
//
// Removing while ranging over a kind is not supported. Resolvers collect
// the IDs to remove first and apply them after the traversal.
type World struct {
	nextID  EntityID
	players table[Player]
	enemies table[Enemy]
	stars   table[Star]
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID:  1, // 0 is never a valid ID
		players: newTable[Player](),
		enemies: newTable[Enemy](),
		stars:   newTable[Star](),
	}
}

func (w *World) allocID() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// SpawnPlayer creates a Player at pos.
func (w *World) SpawnPlayer(pos core.Vec2) EntityID {
	id := w.allocID()
	w.players.insert(id, Player{Position: pos})
	return id
}

// SpawnEnemy creates an Enemy at pos moving along dir.
func (w *World) SpawnEnemy(pos, dir core.Vec2) EntityID {
	id := w.allocID()
	w.enemies.insert(id, Enemy{Position: pos, Direction: dir})
	return id
}

// SpawnStar creates a Star at pos.
func (w *World) SpawnStar(pos core.Vec2) EntityID {
	id := w.allocID()
	w.stars.insert(id, Star{Position: pos})
	return id
}

// Remove deletes the entity immediately. It reports whether the ID was live.
func (w *World) Remove(id EntityID) bool {
	return w.players.remove(id) || w.enemies.remove(id) || w.stars.remove(id)
}

// RemoveAll deletes every entity of the given kinds.
func (w *World) RemoveAll(kinds ...Kind) {
	for _, k := range kinds {
		switch k {
		case KindPlayer:
			w.players.clear()
		case KindEnemy:
			w.enemies.clear()
		case KindStar:
			w.stars.clear()
		}
	}
}

// Count returns the number of live entities of a kind.
func (w *World) Count(k Kind) int {
	switch k {
	case KindPlayer:
		return len(w.players.order)
	case KindEnemy:
		return len(w.enemies.order)
	case KindStar:
		return len(w.stars.order)
	default:
		return 0
	}
}

// SinglePlayer returns the Player if exactly one exists.
func (w *World) SinglePlayer() (EntityID, *Player, bool) {
	if len(w.players.order) != 1 {
		return 0, nil, false
	}
	id := w.players.order[0]
	return id, w.players.rows[id], true
}

// Enemies ranges over live enemies in creation order.
func (w *World) Enemies() iter.Seq2[EntityID, *Enemy] {
	return w.enemies.all()
}

// Stars ranges over live stars in creation order.
func (w *World) Stars() iter.Seq2[EntityID, *Star] {
	return w.stars.all()
}

// Enemy returns the enemy with the given ID.
func (w *World) Enemy(id EntityID) (*Enemy, bool) {
	return w.enemies.get(id)
}

// Star returns the star with the given ID.
func (w *World) Star(id EntityID) (*Star, bool) {
	return w.stars.get(id)
}
