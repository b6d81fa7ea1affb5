package starcatch

import (
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// PlayerDirection sums unit axis contributions of the held movement actions
// and normalizes the result. Opposing keys cancel out.
func PlayerDirection(in core.InputFrame) core.Vec2 {
	var dir core.Vec2
	if in.IsHeld(core.ActionMoveUp) {
		dir.Y++
	}
	if in.IsHeld(core.ActionMoveDown) {
		dir.Y--
	}
	if in.IsHeld(core.ActionMoveLeft) {
		dir.X--
	}
	if in.IsHeld(core.ActionMoveRight) {
		dir.X++
	}
	return dir.Normalize()
}

// MovePlayer moves the single Player by input direction * speed * delta.
// Without exactly one Player it does nothing.
func MovePlayer(w *World, in core.InputFrame, speed, delta float32) {
	_, p, ok := w.SinglePlayer()
	if !ok {
		return
	}
	p.Position = p.Position.Add(PlayerDirection(in).Scale(speed * delta))
}

// MoveEnemies advances every enemy along its direction.
func MoveEnemies(w *World, speed, delta float32) {
	for _, e := range w.Enemies() {
		e.Position = e.Position.Add(e.Direction.Scale(speed * delta))
	}
}

// ReflectEnemies points the direction of every enemy outside b back inside
// on each offending axis. Positions are untouched, so an enemy may overshoot
// for a tick. It reports whether any direction changed.
func ReflectEnemies(w *World, b core.Bounds) bool {
	changed := false
	for _, e := range w.Enemies() {
		if e.Position.X < b.Min.X {
			e.Direction.X = abs32(e.Direction.X)
			changed = true
		} else if e.Position.X > b.Max.X {
			e.Direction.X = -abs32(e.Direction.X)
			changed = true
		}
		if e.Position.Y < b.Min.Y {
			e.Direction.Y = abs32(e.Direction.Y)
			changed = true
		} else if e.Position.Y > b.Max.Y {
			e.Direction.Y = -abs32(e.Direction.Y)
			changed = true
		}
	}
	return changed
}

// ConfinePlayer clamps the single Player into b.
func ConfinePlayer(w *World, b core.Bounds) {
	if _, p, ok := w.SinglePlayer(); ok {
		p.Position = b.Clamp(p.Position)
	}
}

// ConfineEnemies clamps enemy positions into b. ClampFirst limits the clamp
// to the first enemy in iteration order.
func ConfineEnemies(w *World, b core.Bounds, mode config.ClampMode) {
	for _, e := range w.Enemies() {
		e.Position = b.Clamp(e.Position)
		if mode == config.ClampFirst {
			return
		}
	}
}

// EnemyHitPlayer removes the single Player if any enemy centre lies within
// touch distance of it, and reports whether that happened. Enemies after the
// first hit are not checked since the Player is gone.
func EnemyHitPlayer(w *World, touch float32) bool {
	id, p, ok := w.SinglePlayer()
	if !ok {
		return false
	}
	for _, e := range w.Enemies() {
		if core.Distance(e.Position, p.Position) <= touch {
			w.Remove(id)
			return true
		}
	}
	return false
}

// PlayerHitStars removes every star within touch distance of the single
// Player and returns how many were collected.
func PlayerHitStars(w *World, touch float32) int {
	_, p, ok := w.SinglePlayer()
	if !ok {
		return 0
	}

	var collected []EntityID
	for id, s := range w.Stars() {
		if core.Distance(s.Position, p.Position) <= touch {
			collected = append(collected, id)
		}
	}
	for _, id := range collected {
		w.Remove(id)
	}
	return len(collected)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
