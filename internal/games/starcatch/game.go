// Package starcatch implements the starcatch arcade simulation.
// The player roams a bounded arena collecting stars while dodging enemies
// that bounce off the edges. A hit from an enemy ends the run.
//
// The package is engine-free: the host supplies elapsed time, input and the
// arena size each tick, and reads back positions, score and cues.
package starcatch

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// StepResult is returned by Tick after each simulation step.
type StepResult struct {
	App       AppState
	Sim       SimulationState
	Score     uint32 // Current run score; zero outside a game
	InGame    bool   // Whether Score refers to a live run
	Signals   Signals
	GameOvers []GameOverEvent // Events consumed by the phase handler this tick
	Quit      bool            // The host should exit
}

// Game owns the world, the spawner, the run score and the phase machine.
type Game struct {
	cfg        config.StarcatchConfig
	arena      ArenaProvider
	world      *World
	spawner    *Spawner
	score      *Score
	highScores *HighScores
	gameOvers  eventQueue[GameOverEvent]
	app        AppState
	sim        SimulationState
	lastScore  uint32
	tickCount  int
	logger     *log.Logger
}

// Option customizes a Game.
type Option func(*options)

type options struct {
	logger     *log.Logger
	sampler    Sampler
	highScores *HighScores
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSampler replaces the seeded random source.
func WithSampler(s Sampler) Option {
	return func(o *options) { o.sampler = s }
}

// WithHighScores shares an existing history, so it outlives this Game.
func WithHighScores(h *HighScores) Option {
	return func(o *options) { o.highScores = h }
}

// New creates a game in the main menu. The arena must be queryable and at
// least as large as the biggest entity on each side, otherwise
// ErrBoundsUnavailable is returned.
func New(cfg config.StarcatchConfig, runtime core.RuntimeConfig, arena ArenaProvider, opts ...Option) (*Game, error) {
	if _, err := queryArena(arena, largestEntity(cfg)); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = orDiscard(o.logger)
	if o.sampler == nil {
		o.sampler = rand.New(rand.NewSource(runtime.Seed))
	}
	if o.highScores == nil {
		o.highScores = NewHighScores(nil, o.logger)
	}

	return &Game{
		cfg:        cfg,
		arena:      arena,
		world:      NewWorld(),
		spawner:    NewSpawner(cfg, o.sampler, o.logger),
		highScores: o.highScores,
		app:        AppMainMenu,
		sim:        SimRunning,
		logger:     o.logger,
	}, nil
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Catch"
}

// Tick advances the game by one frame.
//
// Order: quit, start/menu triggers, pause toggle, then while in a running
// game: spawn timers, spawn-over-time, movement, enemy reflection,
// confinement, enemy/player and player/star collisions. Finally the
// game-over queue is drained.
func (g *Game) Tick(f core.Frame) (StepResult, error) {
	arena, err := queryArena(g.arena, largestEntity(g.cfg))
	if err != nil {
		return g.result(StepResult{}), err
	}

	if f.Input.JustPressed(core.ActionQuit) {
		g.logger.Info("quit requested")
		return g.result(StepResult{Quit: true}), nil
	}

	g.handleTriggers(f.Input, arena)

	var res StepResult
	if g.app == AppGame && g.sim == SimRunning {
		g.tickCount++
		res.Signals = g.runSystems(f, arena)
	}

	res.GameOvers = g.handleGameOver(arena)
	return g.result(res), nil
}

// runSystems is one Running tick of the per-frame systems.
func (g *Game) runSystems(f core.Frame, arena Arena) Signals {
	var sig Signals

	g.spawner.TickTimers(f.Delta)
	sig.EnemiesSpawned, sig.StarsSpawned = g.spawner.SpawnOverTime(g.world, arena)

	MovePlayer(g.world, f.Input, g.cfg.Player.Speed, f.Delta)
	MoveEnemies(g.world, g.cfg.Enemies.Speed, f.Delta)

	enemyBounds := arena.Inset(g.cfg.Enemies.Size)
	if ReflectEnemies(g.world, enemyBounds) {
		sig.Bounced = true
		g.logger.Debug("enemy bounced")
	}
	ConfinePlayer(g.world, arena.Inset(g.cfg.Player.Size))
	ConfineEnemies(g.world, enemyBounds, g.cfg.Enemies.Clamp)

	if EnemyHitPlayer(g.world, g.enemyTouch()) {
		sig.PlayerDestroyed = true
		g.gameOvers.push(GameOverEvent{Score: g.score.Value})
	}

	if n := PlayerHitStars(g.world, g.starTouch()); n > 0 {
		g.score.Value += uint32(n)
		sig.StarsCollected = n
		g.logger.Debug("star collected", "score", g.score.Value)
	}

	return sig
}

// handleGameOver is the only consumer of the game-over queue. Each event
// reports the final score, records it, and moves to the GameOver phase.
func (g *Game) handleGameOver(arena Arena) []GameOverEvent {
	events := g.gameOvers.drain()
	for _, ev := range events {
		g.logger.Info("game over", "score", ev.Score)
		g.highScores.Record(ev.Score)
		g.lastScore = ev.Score
		g.setAppState(AppGameOver, arena)
	}
	return events
}

// largestEntity is the biggest configured entity size, the smallest usable arena side.
func largestEntity(cfg config.StarcatchConfig) float32 {
	return max(cfg.Player.Size, cfg.Enemies.Size, cfg.Stars.Size)
}

func (g *Game) enemyTouch() float32 {
	return g.cfg.Enemies.Size/2 + g.cfg.Player.Size/2
}

func (g *Game) starTouch() float32 {
	return g.cfg.Stars.Size/2 + g.cfg.Player.Size/2
}

func (g *Game) result(res StepResult) StepResult {
	res.App = g.app
	res.Sim = g.sim
	if g.score != nil {
		res.Score = g.score.Value
		res.InGame = true
	}
	return res
}

// AppState returns the current phase.
func (g *Game) AppState() AppState {
	return g.app
}

// SimulationState returns the current sub-state.
func (g *Game) SimulationState() SimulationState {
	return g.sim
}

// Score returns the live run score, if a run is in progress.
func (g *Game) Score() (uint32, bool) {
	if g.score == nil {
		return 0, false
	}
	return g.score.Value, true
}

// LastScore returns the final score of the most recent run.
func (g *Game) LastScore() uint32 {
	return g.lastScore
}

// HighScores returns the shared high-score history.
func (g *Game) HighScores() *HighScores {
	return g.highScores
}

// Ticks returns how many Running ticks have been simulated.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Snapshot is a read-only copy of the live entities for drawing.
type Snapshot struct {
	Player    core.Vec2
	HasPlayer bool
	Enemies   []Enemy
	Stars     []core.Vec2
}

// Snapshot copies the current entity positions.
func (g *Game) Snapshot() Snapshot {
	var s Snapshot
	if _, p, ok := g.world.SinglePlayer(); ok {
		s.Player = p.Position
		s.HasPlayer = true
	}
	for _, e := range g.world.Enemies() {
		s.Enemies = append(s.Enemies, *e)
	}
	for _, st := range g.world.Stars() {
		s.Stars = append(s.Stars, st.Position)
	}
	return s
}

func orDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}
