package starcatch

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/starcatch/internal/core"
)

// ErrBoundsUnavailable means the arena size could not be determined.
// There is no sane default, so the game cannot run.
var ErrBoundsUnavailable = errors.New("starcatch: arena bounds unavailable")

// Arena is the playable area size in arena units.
type Arena struct {
	W, H float32
}

// Center returns the middle of the arena.
func (a Arena) Center() core.Vec2 {
	return core.V2(a.W/2, a.H/2)
}

// Inset returns the allowed centre positions for an entity of the given size.
func (a Arena) Inset(size float32) core.Bounds {
	return core.InsetBounds(a.W, a.H, size/2)
}

// ArenaProvider reports the current playable size, which may change between ticks.
type ArenaProvider interface {
	ArenaSize() (w, h float32, err error)
}

// ArenaFunc adapts a function to ArenaProvider.
type ArenaFunc func() (w, h float32, err error)

// ArenaSize calls f.
func (f ArenaFunc) ArenaSize() (float32, float32, error) {
	return f()
}

// FixedArena returns a provider that always reports w by h.
func FixedArena(w, h float32) ArenaProvider {
	return ArenaFunc(func() (float32, float32, error) {
		return w, h, nil
	})
}

// queryArena asks the provider for the size and rejects unusable answers.
// Each side must be at least minSize so every entity fits inside.
func queryArena(p ArenaProvider, minSize float32) (Arena, error) {
	if p == nil {
		return Arena{}, fmt.Errorf("%w: no provider", ErrBoundsUnavailable)
	}
	w, h, err := p.ArenaSize()
	if err != nil {
		return Arena{}, fmt.Errorf("%w: %w", ErrBoundsUnavailable, err)
	}
	if w <= 0 || h <= 0 {
		return Arena{}, fmt.Errorf("%w: size %vx%v", ErrBoundsUnavailable, w, h)
	}
	if w < minSize || h < minSize {
		return Arena{}, fmt.Errorf("%w: size %vx%v smaller than entity size %v", ErrBoundsUnavailable, w, h, minSize)
	}
	return Arena{W: w, H: h}, nil
}
