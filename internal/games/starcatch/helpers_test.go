package starcatch

import (
	"testing"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// seqSampler replays a fixed sequence of samples, cycling when exhausted.
type seqSampler struct {
	vals []float32
	i    int
}

func (s *seqSampler) Float32() float32 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func newTestGame(t *testing.T, mutate func(*config.StarcatchConfig), opts ...Option) *Game {
	t.Helper()
	cfg := config.DefaultStarcatchConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(cfg, core.RuntimeConfig{Seed: 42, TickRate: 60}, FixedArena(800, 600), opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

// frame builds a tick with the given delta, pressed triggers and no held keys.
func frame(delta float32, pressed ...core.Action) core.Frame {
	in := core.NewInputFrame()
	for _, a := range pressed {
		in.Press(a)
	}
	return core.Frame{Delta: delta, Input: in}
}

// heldFrame builds a tick holding the given movement actions.
func heldFrame(delta float32, held ...core.Action) core.Frame {
	in := core.NewInputFrame()
	for _, a := range held {
		in.Hold(a)
	}
	return core.Frame{Delta: delta, Input: in}
}

func mustTick(t *testing.T, g *Game, f core.Frame) StepResult {
	t.Helper()
	res, err := g.Tick(f)
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	return res
}

// startRunning enters the game and toggles out of the entry pause.
func startRunning(t *testing.T, g *Game) {
	t.Helper()
	mustTick(t, g, frame(0, core.ActionStart))
	clearCentre(g)
	if g.SimulationState() == SimPaused {
		mustTick(t, g, frame(0, core.ActionPause))
	}
	if g.AppState() != AppGame || g.SimulationState() != SimRunning {
		t.Fatalf("expected running game, got %v/%v", g.AppState(), g.SimulationState())
	}
}

func playerPos(t *testing.T, g *Game) core.Vec2 {
	t.Helper()
	_, p, ok := g.world.SinglePlayer()
	if !ok {
		t.Fatal("expected exactly one player")
	}
	return p.Position
}

// clearCentre moves random spawns away from the player's starting point so
// the first running tick cannot collide by chance. Counts are unchanged.
func clearCentre(g *Game) {
	centre := core.V2(400, 300)
	for _, e := range g.world.Enemies() {
		if core.Distance(e.Position, centre) < 200 {
			e.Position = core.V2(700, 500)
		}
	}
	for _, s := range g.world.Stars() {
		if core.Distance(s.Position, centre) < 100 {
			s.Position = core.V2(100, 500)
		}
	}
}
