package shooter

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/sky-shooter/internal/config"
	"github.com/vovakirdan/sky-shooter/internal/core"
)

// Phase is the stage of a game session.
type Phase int

const (
	PhasePlaying  Phase = iota
	PhaseCrashing       // Collision happened; the fade-out is running
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseCrashing:
		return "crashing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Game implements the sky shooter game logic.
type Game struct {
	cfg        config.ShooterConfig
	preset     config.DifficultyPreset
	runtime    core.RuntimeConfig
	world      World
	registry   *Registry
	spawner    *Spawner
	difficulty *config.DifficultyManager
	session    Session
	phase      Phase
	crash      *gween.Tween // Fade progress from 0 to 1 while crashing
	fade       float64
	dodged     int     // Enemies that scrolled off the left edge
	elapsed    float64 // Unpaused seconds of play
	tickCount  int     // Unpaused frames of play
	quit       bool
}

// New creates a game with the given configuration. The preset is only
// used to label saved scores; it must already be applied to cfg.
func New(cfg config.ShooterConfig, preset config.DifficultyPreset) *Game {
	return &Game{cfg: cfg, preset: preset}
}

// NewPreset applies preset to a copy of base and creates a game with it.
func NewPreset(base config.ShooterConfig, preset config.DifficultyPreset) *Game {
	cfg := base
	config.ApplyShooterPreset(&cfg, preset)
	return New(cfg, preset)
}

// ID returns the identifier scores are stored under. Each preset keeps its
// own leaderboard.
func (g *Game) ID() string {
	return ScoreID(g.preset)
}

// ScoreID returns the score table key for a preset.
func ScoreID(preset config.DifficultyPreset) string {
	if preset == "" {
		return "shooter"
	}
	return "shooter:" + string(preset)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = World{Width: g.cfg.World.Width, Height: g.cfg.World.Height}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	player := Entity{Kind: KindPlayer, W: g.cfg.Player.Width, H: g.cfg.Player.Height}
	player.SetLeft(g.cfg.Player.StartLeft)
	player.SetBottom((g.world.Height - player.H) / 2)
	if g.registry == nil {
		g.registry = NewRegistry(player)
	} else {
		g.registry.Clear()
		g.registry.Add(player)
	}

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, &g.cfg)
	} else {
		g.spawner.UpdateConfig(&g.cfg)
		g.spawner.Reset(runtime.Seed)
	}

	g.session = Session{}
	g.phase = PhasePlaying
	g.crash = nil
	g.fade = 0
	g.dodged = 0
	g.elapsed = 0
	g.tickCount = 0
	g.quit = false
}

// Step advances the game by dt seconds after applying the frame's input.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	switch g.phase {
	case PhaseOver:
		return core.StepResult{State: g.State()}
	case PhaseCrashing:
		return g.stepCrashing(in, dt)
	}

	var events []core.Event

	session, res := HandleInput(in, &g.registry.Player, g.session, g.playerSpeed())
	g.session = session
	if res.Quit {
		g.quit = true
	}
	if res.MovedUp {
		events = append(events, core.EventMoveUp)
	}
	if res.MovedDown {
		events = append(events, core.EventMoveDown)
	}

	if g.session.Paused || dt <= 0 {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.tickCount++
	g.elapsed += dt

	out := Update(g.registry, g.world, g.session, dt)
	g.dodged += out.EnemiesEvicted

	if out.Collided {
		events = append(events, core.EventCollision)
		g.beginCrash()
		if g.phase == PhaseOver {
			events = append(events, core.EventGameOver)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	// Spawn after the update so new entities appear at their spawn position.
	factor := g.difficulty.SpeedFactor(g.Score(), g.tickCount)
	g.spawner.Advance(g.registry, g.session, dt, factor)

	return core.StepResult{State: g.State(), Events: events}
}

// stepCrashing runs the fade-out. The playfield stays frozen and only quit is honored.
func (g *Game) stepCrashing(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.quit = true
	}

	cur, done := g.crash.Update(float32(dt))
	g.fade = float64(cur)
	if !done {
		return core.StepResult{State: g.State()}
	}

	g.fade = 1
	g.phase = PhaseOver
	return core.StepResult{State: g.State(), Events: []core.Event{core.EventGameOver}}
}

func (g *Game) beginCrash() {
	delay := g.cfg.Session.CollisionDelay
	if delay <= 0 {
		g.fade = 1
		g.phase = PhaseOver
		return
	}
	g.phase = PhaseCrashing
	g.crash = gween.New(0, 1, float32(delay), ease.OutQuad)
}

// playerSpeed converts the configured per-frame speed to world units per second.
func (g *Game) playerSpeed() float64 {
	return g.cfg.Player.MoveSpeed * g.cfg.World.SpeedScale
}

// Score returns enemies dodged plus whole seconds survived.
func (g *Game) Score() int {
	return g.dodged + int(g.elapsed)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.phase == PhaseOver,
		Crashing: g.phase == PhaseCrashing,
		Paused:   g.session.Paused,
		Debug:    g.session.Debug,
		Quit:     g.quit,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Session returns the current session flags.
func (g *Game) Session() Session { return g.session }

// World returns the playfield size.
func (g *Game) World() World { return g.world }

// Registry exposes the live entities for frontends that draw them directly.
// Callers must not modify it.
func (g *Game) Registry() *Registry { return g.registry }

// Fade returns the crash fade progress: 0 while playing, 1 once over.
func (g *Game) Fade() float64 { return g.fade }

// Seconds returns whole unpaused seconds survived.
func (g *Game) Seconds() int { return int(g.elapsed) }

// Dodged returns how many enemies scrolled off the left edge.
func (g *Game) Dodged() int { return g.dodged }

// SpeedFactor returns the current enemy speed multiplier.
func (g *Game) SpeedFactor() float64 {
	return g.difficulty.SpeedFactor(g.Score(), g.tickCount)
}

// DifficultyEnabled reports whether speeds ramp up over time.
func (g *Game) DifficultyEnabled() bool {
	return g.difficulty.IsEnabled()
}
