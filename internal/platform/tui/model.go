package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-shooter/internal/audio"
	"github.com/vovakirdan/sky-shooter/internal/core"
	"github.com/vovakirdan/sky-shooter/internal/shooter"
	"github.com/vovakirdan/sky-shooter/internal/storage"
)

// Options holds the collaborators a game model runs with. Zero values are
// valid: no persistence, silence, discarded logs, default key windows.
type Options struct {
	Store       *storage.Store
	Sound       *audio.SoundManager
	Logger      *log.Logger
	HoldWindow  time.Duration
	RepeatDelay time.Duration
	// Embedded models hand control back to a parent model when the session
	// ends instead of quitting the program.
	Embedded bool
}

// Model is the Bubble Tea model for running the shooter.
type Model struct {
	game       *shooter.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.SoundManager
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	embedded   bool
	quitting   bool // User asked to leave before the session ended
	finished   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *shooter.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Sound == nil {
		opts.Sound = audio.NewSoundManager() // Never initialized, so silent
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		sound:      opts.Sound,
		logger:     opts.Logger,
		config:     cfg,
		keys:       NewKeyMapper(opts.HoldWindow, opts.RepeatDelay),
		inputFrame: core.NewInputFrame(),
		embedded:   opts.Embedded,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.keys.Reset()
	m.sound.PlayMusic()
	m.logger.Debug("game started", "id", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, time.Now(), &m.inputFrame)
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	m.keys.Expire(now, &m.inputFrame)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.sound.HandleEvents(result.Events)
	if result.Has(core.EventCollision) {
		m.logger.Info("collision", "score", m.gameState.Score)
	}

	if m.gameState.GameOver {
		m.saveScore()
		return m.finish()
	}
	if m.gameState.Quit {
		m.quitting = true
		return m.finish()
	}

	return m, tickCmd(m.config.TickRate)
}

// finish ends the session: the program quits unless the model is embedded.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.finished = true
	m.sound.StopMusic()
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

// saveScore stores the finished run once. Storage failures are logged, never fatal.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Dodged:  m.game.Dodged(),
		Seconds: m.game.Seconds(),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "id", run.GameID, "score", run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("shooter_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.finished && !m.embedded {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Finished reports whether the session has ended by game over or quit.
func (m Model) Finished() bool {
	return m.finished
}

// IsQuitting reports whether the player left before the game was over.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game *shooter.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	opts.Embedded = false
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return core.GameState{}, nil
}
