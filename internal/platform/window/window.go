// Package window runs the shooter in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sky-shooter/internal/audio"
	"github.com/vovakirdan/sky-shooter/internal/core"
	"github.com/vovakirdan/sky-shooter/internal/shooter"
	"github.com/vovakirdan/sky-shooter/internal/storage"
)

// Title is the window caption.
const Title = "Arcade Space Shooter"

var (
	skyBlue     = color.RGBA{135, 206, 250, 255}
	playerColor = color.RGBA{40, 40, 48, 255}
	enemyColor  = color.RGBA{200, 40, 40, 255}
	cloudColor  = color.RGBA{250, 250, 250, 255}
	cloudShade  = color.RGBA{225, 232, 240, 255}
	hitBoxColor = color.RGBA{255, 255, 0, 255}
)

// keyBinding maps a physical key to an action.
type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

var keyBindings = []keyBinding{
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyO, core.ActionDebug},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// Options holds the collaborators the window runs with. Zero values are valid.
type Options struct {
	Store  *storage.Store
	Sound  *audio.SoundManager
	Logger *log.Logger
}

// App adapts a shooter.Game to ebiten.Game.
type App struct {
	game       *shooter.Game
	config     core.RuntimeConfig
	store      *storage.Store
	sound      *audio.SoundManager
	logger     *log.Logger
	frame      core.InputFrame
	state      core.GameState
	scoreSaved bool
}

// NewApp creates a window app for the game. The game is reset with cfg.
func NewApp(game *shooter.Game, cfg core.RuntimeConfig, opts Options) *App {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Sound == nil {
		opts.Sound = audio.NewSoundManager()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	return &App{
		game:   game,
		config: cfg,
		store:  opts.Store,
		sound:  opts.Sound,
		logger: opts.Logger,
		frame:  core.NewInputFrame(),
	}
}

// translateKeys records this frame's presses and releases. Only movement
// keys produce releases; the rest act on press.
func translateKeys(pressed, released func(ebiten.Key) bool, frame *core.InputFrame) {
	for _, b := range keyBindings {
		if pressed(b.key) {
			frame.Press(b.action)
		}
		if b.action.IsMovement() && released(b.key) {
			frame.Release(b.action)
		}
	}
}

// Update advances the game by one tick.
func (a *App) Update() error {
	a.frame.Clear()
	translateKeys(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased, &a.frame)

	result := a.game.Step(a.frame, 1/float64(ebiten.TPS()))
	a.state = result.State
	a.sound.HandleEvents(result.Events)

	if a.state.GameOver {
		a.saveScore()
		return ebiten.Termination
	}
	if a.state.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the playfield.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(skyBlue)

	world := a.game.World()
	debug := a.game.Session().Debug
	a.game.Registry().Each(func(e *shooter.Entity) {
		x, y, w, h := entityRect(*e, world)
		vector.DrawFilledRect(screen, x, y, w, h, entityColor(*e), false)
		if debug {
			vector.StrokeRect(screen, x, y, w, h, 1, hitBoxColor, false)
		}
	})

	if fade := a.game.Fade(); fade > 0 {
		shade := color.RGBA{0, 0, 0, uint8(160 * fade)}
		vector.DrawFilledRect(screen, 0, 0, float32(world.Width), float32(world.Height), shade, false)
	}

	ebitenutil.DebugPrint(screen, a.hud())
	if debug {
		reg := a.game.Registry()
		stats := fmt.Sprintf("TPS: %.0f  enemies=%d clouds=%d  speed x%.2f",
			ebiten.ActualTPS(), len(reg.Enemies), len(reg.Clouds), a.game.SpeedFactor())
		ebitenutil.DebugPrintAt(screen, stats, 4, int(world.Height)-20)
	}
}

func (a *App) hud() string {
	s := fmt.Sprintf("Score: %d  Dodged: %d", a.game.Score(), a.game.Dodged())
	switch {
	case a.game.Phase() == shooter.PhaseCrashing:
		s += "\nCRASH!"
	case a.game.Session().Paused:
		s += "\nPAUSED - press P to resume"
	}
	return s
}

// Layout keeps the logical screen at the world size.
func (a *App) Layout(_, _ int) (int, int) {
	w := a.game.World()
	return int(w.Width), int(w.Height)
}

// State returns the last reported game state.
func (a *App) State() core.GameState {
	return a.state
}

// saveScore stores the finished run once. Storage failures are logged, never fatal.
func (a *App) saveScore() {
	if a.scoreSaved || a.state.Score <= 0 {
		return
	}
	a.scoreSaved = true
	if a.store == nil {
		return
	}

	run := storage.Run{
		GameID:  a.game.ID(),
		Score:   a.state.Score,
		Dodged:  a.game.Dodged(),
		Seconds: a.game.Seconds(),
	}
	if _, err := a.store.SaveRun(run); err != nil {
		a.logger.Warn("could not save score", "error", err)
		return
	}
	a.logger.Info("score saved", "id", run.GameID, "score", run.Score)
}

// entityRect converts a y-up world box to y-down screen coordinates.
func entityRect(e shooter.Entity, world shooter.World) (x, y, w, h float32) {
	return float32(e.Left()), float32(world.Height - e.Top()), float32(e.W), float32(e.H)
}

func entityColor(e shooter.Entity) color.Color {
	switch e.Kind {
	case shooter.KindPlayer:
		return playerColor
	case shooter.KindEnemy:
		return enemyColor
	default:
		if e.Flipped {
			return cloudShade
		}
		return cloudColor
	}
}

// Run opens the window and blocks until the game ends or the window closes.
func Run(game *shooter.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	app := NewApp(game, cfg, opts)
	world := game.World()

	ebiten.SetWindowSize(int(world.Width), int(world.Height))
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(app.config.TickRate)

	app.sound.PlayMusic()
	defer app.sound.StopMusic()
	app.logger.Debug("window started", "id", game.ID(), "seed", cfg.Seed)

	if err := ebiten.RunGame(app); err != nil {
		return app.State(), fmt.Errorf("window: %w", err)
	}
	return app.State(), nil
}
