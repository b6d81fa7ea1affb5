package starcatch

import "github.com/vovakirdan/starcatch/internal/core"

// AppState is the outer application phase.
type AppState int

const (
	AppMainMenu AppState = iota
	AppGame
	AppGameOver
)

// String returns a human-readable name for the phase.
func (s AppState) String() string {
	switch s {
	case AppMainMenu:
		return "main_menu"
	case AppGame:
		return "game"
	case AppGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SimulationState is the Running/Paused sub-state, meaningful only in AppGame.
type SimulationState int

const (
	SimRunning SimulationState = iota
	SimPaused
)

// String returns a human-readable name for the sub-state.
func (s SimulationState) String() string {
	switch s {
	case SimRunning:
		return "running"
	case SimPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// setSimState changes the sub-state and logs real changes.
func (g *Game) setSimState(next SimulationState) {
	if g.sim == next {
		return
	}
	g.sim = next
	g.logger.Info("entered simulation state", "state", next)
}

// setAppState runs the exit hook of the current phase, switches, and runs
// the entry hook of the next one. Switching to the current phase does nothing.
func (g *Game) setAppState(next AppState, arena Arena) {
	if g.app == next {
		return
	}
	if g.app == AppGame {
		g.exitGame()
	}
	g.app = next
	g.logger.Info("entered app state", "state", next)
	if next == AppGame {
		g.enterGame(arena)
	}
}

// enterGame spawns the player at the arena centre plus the initial enemies
// and stars, creates the score, and applies the entry sub-state.
func (g *Game) enterGame(arena Arena) {
	g.world.SpawnPlayer(arena.Center())
	g.spawner.SpawnInitial(g.world, arena)
	g.spawner.ResetTimers()
	g.score = &Score{}

	if g.cfg.Simulation.StartPaused {
		g.setSimState(SimPaused)
	} else {
		g.setSimState(SimRunning)
	}
}

// exitGame removes every entity, destroys the score and resumes the sub-state.
func (g *Game) exitGame() {
	DespawnAll(g.world)
	g.score = nil
	g.setSimState(SimRunning)
}

// handleTriggers applies start, menu and pause-toggle input.
func (g *Game) handleTriggers(in core.InputFrame, arena Arena) {
	if in.JustPressed(core.ActionStart) && g.app != AppGame {
		g.setAppState(AppGame, arena)
	}

	if in.JustPressed(core.ActionMenu) && g.app != AppMainMenu {
		g.setSimState(SimPaused)
		g.setAppState(AppMainMenu, arena)
	}

	if in.JustPressed(core.ActionPause) && g.app == AppGame {
		if g.sim == SimRunning {
			g.setSimState(SimPaused)
		} else {
			g.setSimState(SimRunning)
		}
	}
}
