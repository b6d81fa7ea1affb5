package starcatch

import (
	"github.com/vovakirdan/starcatch/internal/core"
)

// Autopilot steers the player for headless runs and demos: it heads for
// the nearest star and veers away from enemies inside a danger radius.
type Autopilot struct {
	// DangerScale multiplies the enemy touch distance to get the radius
	// inside which enemies repel the player.
	DangerScale float32
	// Deadzone is the minimum axis component of the steering vector that
	// turns into a held key.
	Deadzone float32
}

// NewAutopilot returns an autopilot with tuned defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{DangerScale: 2.5, Deadzone: 0.3}
}

// Steer returns the movement input for the current tick. It only holds
// movement actions; phase triggers are left to the caller.
func (a *Autopilot) Steer(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	snap := g.Snapshot()
	if !snap.HasPlayer {
		return in
	}

	var steer core.Vec2
	if target, ok := nearest(snap.Player, snap.Stars); ok {
		steer = target.Sub(snap.Player).Normalize()
	}

	danger := g.enemyTouch() * a.DangerScale
	for _, e := range snap.Enemies {
		d := core.Distance(e.Position, snap.Player)
		if d >= danger {
			continue
		}
		away := snap.Player.Sub(e.Position).Normalize()
		// Closer enemies push harder.
		steer = steer.Add(away.Scale(2 * (danger - d) / danger))
	}

	steer = steer.Normalize()
	if steer.Y > a.Deadzone {
		in.Hold(core.ActionMoveUp)
	} else if steer.Y < -a.Deadzone {
		in.Hold(core.ActionMoveDown)
	}
	if steer.X > a.Deadzone {
		in.Hold(core.ActionMoveRight)
	} else if steer.X < -a.Deadzone {
		in.Hold(core.ActionMoveLeft)
	}
	return in
}

// nearest returns the point closest to from.
func nearest(from core.Vec2, points []core.Vec2) (core.Vec2, bool) {
	var best core.Vec2
	bestDist := float32(-1)
	for _, p := range points {
		d := core.Distance(from, p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist >= 0
}
