package starcatch

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// maxDirectionSamples bounds resampling of a degenerate enemy direction.
const maxDirectionSamples = 8

// Sampler is a uniform random source in [0, 1). *rand.Rand satisfies it.
type Sampler interface {
	Float32() float32
}

// Spawner places enemies and stars at random positions inside the arena.
type Spawner struct {
	enemies    config.EnemyConfig
	stars      config.StarConfig
	rng        Sampler
	enemyTimer *Timer
	starTimer  *Timer
	logger     *log.Logger
}

// NewSpawner creates a spawner with one repeating timer per spawnable kind.
func NewSpawner(cfg config.StarcatchConfig, rng Sampler, logger *log.Logger) *Spawner {
	return &Spawner{
		enemies:    cfg.Enemies,
		stars:      cfg.Stars,
		rng:        rng,
		enemyTimer: NewRepeatingTimer(cfg.Enemies.SpawnPeriod),
		starTimer:  NewRepeatingTimer(cfg.Stars.SpawnPeriod),
		logger:     orDiscard(logger),
	}
}

// randomPosition samples a centre uniformly in [half, bound-half] on both axes.
func (s *Spawner) randomPosition(arena Arena, half float32) core.Vec2 {
	b := core.InsetBounds(arena.W, arena.H, half)
	return b.Lerp(s.rng.Float32(), s.rng.Float32())
}

func (s *Spawner) sampleDirection() core.Vec2 {
	return core.V2(s.rng.Float32()*2-1, s.rng.Float32()*2-1)
}

// randomDirection samples x,y in [-1,1] and normalizes.
// A (0,0) sample is handled per the configured policy.
func (s *Spawner) randomDirection() core.Vec2 {
	dir := s.sampleDirection()
	if !dir.IsZero() {
		return dir.Normalize()
	}

	switch s.enemies.ZeroDirection {
	case config.ZeroFixed:
		return core.V2(1, 0)
	case config.ZeroResample:
		for range maxDirectionSamples - 1 {
			if dir = s.sampleDirection(); !dir.IsZero() {
				return dir.Normalize()
			}
		}
	}
	return core.Vec2{}
}

// SpawnEnemy creates one enemy at a random position with a random direction.
func (s *Spawner) SpawnEnemy(w *World, arena Arena) EntityID {
	pos := s.randomPosition(arena, s.enemies.Size/2)
	dir := s.randomDirection()
	id := w.SpawnEnemy(pos, dir)
	s.logger.Debug("spawned enemy", "id", id, "x", pos.X, "y", pos.Y, "dx", dir.X, "dy", dir.Y)
	return id
}

// SpawnStar creates one star at a random position.
func (s *Spawner) SpawnStar(w *World, arena Arena) EntityID {
	pos := s.randomPosition(arena, s.stars.Size/2)
	id := w.SpawnStar(pos)
	s.logger.Debug("spawned star", "id", id, "x", pos.X, "y", pos.Y)
	return id
}

// SpawnInitial creates the starting population of enemies and stars.
func (s *Spawner) SpawnInitial(w *World, arena Arena) {
	for range s.enemies.Count {
		s.SpawnEnemy(w, arena)
	}
	for range s.stars.Count {
		s.SpawnStar(w, arena)
	}
}

// TickTimers advances both spawn timers.
func (s *Spawner) TickTimers(delta float32) {
	s.enemyTimer.Tick(delta)
	s.starTimer.Tick(delta)
}

// SpawnOverTime spawns one entity of each kind whose timer fired this tick.
// It returns how many enemies and stars were created.
func (s *Spawner) SpawnOverTime(w *World, arena Arena) (enemies, stars int) {
	if s.enemyTimer.Finished() {
		s.SpawnEnemy(w, arena)
		enemies++
	}
	if s.starTimer.Finished() {
		s.SpawnStar(w, arena)
		stars++
	}
	return enemies, stars
}

// ResetTimers restarts both spawn timers.
func (s *Spawner) ResetTimers() {
	s.enemyTimer.Reset()
	s.starTimer.Reset()
}

// DespawnAll removes every Player, Enemy and Star.
func DespawnAll(w *World) {
	w.RemoveAll(KindPlayer, KindEnemy, KindStar)
}
