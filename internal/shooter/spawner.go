package shooter

import (
	"math/rand"

	"github.com/vovakirdan/sky-shooter/internal/config"
)

// spawnTimer accumulates unpaused time toward the next spawn.
type spawnTimer struct {
	cfg config.SpawnConfig
	acc float64
}

// due consumes one interval from the accumulator if it has been reached.
func (t *spawnTimer) due() bool {
	if t.acc < t.cfg.Interval {
		return false
	}
	t.acc -= t.cfg.Interval
	return true
}

// Spawner periodically creates enemies and clouds just past the right edge.
type Spawner struct {
	rng    *rand.Rand
	world  World
	margin int
	scale  float64
	enemy  spawnTimer
	cloud  spawnTimer
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.ShooterConfig) *Spawner {
	s := &Spawner{}
	s.UpdateConfig(cfg)
	s.Reset(seed)
	return s
}

// UpdateConfig replaces the spawn parameters, keeping accumulated time.
func (s *Spawner) UpdateConfig(cfg *config.ShooterConfig) {
	s.world = World{Width: cfg.World.Width, Height: cfg.World.Height}
	s.margin = cfg.World.SpawnMargin
	s.scale = cfg.World.SpeedScale
	s.enemy.cfg = cfg.Enemies
	s.cloud.cfg = cfg.Clouds
}

// Reset clears the accumulators and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.enemy.acc = 0
	s.cloud.acc = 0
}

// Advance adds dt to both accumulators and spawns into reg every time one
// crosses its interval. speedFactor scales enemy speeds. Paused sessions
// neither spawn nor accumulate time, so nothing catches up on resume.
func (s *Spawner) Advance(reg *Registry, session Session, dt, speedFactor float64) (enemies, clouds int) {
	if session.Paused {
		return 0, 0
	}

	s.enemy.acc += dt
	s.cloud.acc += dt

	for s.enemy.due() {
		reg.Add(s.SpawnEnemy(speedFactor))
		enemies++
	}
	for s.cloud.due() {
		reg.Add(s.SpawnCloud())
		clouds++
	}
	return enemies, clouds
}

// SpawnEnemy creates a missile at a random position past the right edge.
func (s *Spawner) SpawnEnemy(speedFactor float64) Entity {
	e := s.spawn(KindEnemy, s.enemy.cfg)
	e.Vel.X *= speedFactor
	return e
}

// SpawnCloud creates a cloud at a random position past the right edge,
// mirrored half of the time.
func (s *Spawner) SpawnCloud() Entity {
	e := s.spawn(KindCloud, s.cloud.cfg)
	e.Flipped = s.randInt(0, 1) == 1
	return e
}

func (s *Spawner) spawn(kind Kind, cfg config.SpawnConfig) Entity {
	w := int(s.world.Width)
	h := int(s.world.Height)

	e := Entity{Kind: kind, W: cfg.Width, H: cfg.Height}
	e.SetLeft(float64(s.randInt(w, w+s.margin)))
	e.SetTop(float64(s.randInt(cfg.TopMargin, h-cfg.TopMargin)))
	e.Vel.X = float64(s.randInt(cfg.MinSpeed, cfg.MaxSpeed)) * s.scale
	return e
}

// randInt returns a uniform integer in [lo, hi], both bounds inclusive.
func (s *Spawner) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
