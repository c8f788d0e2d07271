package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sky-shooter/internal/config"
	"github.com/vovakirdan/sky-shooter/internal/core"
	"github.com/vovakirdan/sky-shooter/internal/shooter"
	"github.com/vovakirdan/sky-shooter/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// quietGame never spawns on its own and ends as soon as it collides.
func quietGame() *shooter.Game {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies.Interval = 1000
	cfg.Clouds.Interval = 1000
	cfg.Session.CollisionDelay = 0
	return shooter.New(cfg, "")
}

type ticker struct {
	now time.Time
}

// next delivers one tick 100ms after the previous one.
func (tk *ticker) next(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	tk.now = tk.now.Add(100 * time.Millisecond)
	next, cmd := m.Update(TickMsg(tk.now))
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func ram(g *shooter.Game) {
	p := g.Registry().Player
	g.Registry().Add(shooter.Entity{Kind: shooter.KindEnemy, Pos: p.Pos, W: 10, H: 10})
}

func TestModelTickAdvancesGame(t *testing.T) {
	game := quietGame()
	m := NewModel(game, testRuntime, Options{})
	require.NotNil(t, m.Init())

	tk := &ticker{now: time.Unix(1000, 0)}
	var cmd tea.Cmd
	for range 12 {
		m, cmd = tk.next(t, m)
		require.NotNil(t, cmd, "a running game schedules the next tick")
	}

	assert.Equal(t, 1, game.Seconds())
	assert.Equal(t, 1, m.State().Score)
	assert.False(t, m.Finished())
	assert.Contains(t, m.View(), string(shooter.PlayerBody))
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(quietGame(), testRuntime, Options{})
	m.Init()

	m = send(t, m, runeKey('q'))
	m, cmd := (&ticker{now: time.Unix(1000, 0)}).next(t, m)

	assert.True(t, m.IsQuitting())
	assert.True(t, m.Finished())
	assert.True(t, m.State().Quit)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestEmbeddedModelDoesNotQuitProgram(t *testing.T) {
	m := NewModel(quietGame(), testRuntime, Options{Embedded: true})
	m.Init()

	m = send(t, m, runeKey('q'))
	m, cmd := (&ticker{now: time.Unix(1000, 0)}).next(t, m)

	assert.True(t, m.Finished())
	assert.Nil(t, cmd)
}

func TestModelSavesScoreOnGameOver(t *testing.T) {
	store := openTestStore(t)
	game := quietGame()
	m := NewModel(game, testRuntime, Options{Store: store})
	m.Init()

	tk := &ticker{now: time.Unix(1000, 0)}
	for range 12 {
		m, _ = tk.next(t, m)
	}
	ram(game)
	m, cmd := tk.next(t, m)

	require.True(t, m.State().GameOver)
	assert.False(t, m.IsQuitting())
	require.NotNil(t, cmd)

	scores, err := store.TopScores(shooter.ScoreID(""), 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, m.State().Score, scores[0].Score)
	assert.Equal(t, 1, scores[0].Seconds)
	assert.Equal(t, 0, scores[0].Dodged)

	// Late ticks neither step the game nor save twice
	m, cmd = tk.next(t, m)
	assert.Nil(t, cmd)
	scores, err = store.TopScores(shooter.ScoreID(""), 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	game := quietGame()
	m := NewModel(game, testRuntime, Options{Store: store})
	m.Init()

	ram(game)
	m, _ = (&ticker{now: time.Unix(1000, 0)}).next(t, m)
	require.True(t, m.State().GameOver)

	high, err := store.HighScore(shooter.ScoreID(""))
	require.NoError(t, err)
	assert.Equal(t, 0, high)
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := quietGame()
	m := NewModel(game, testRuntime, Options{})
	m.Init()

	tk := &ticker{now: time.Unix(1000, 0)}
	m, _ = tk.next(t, m)
	before := game.Registry().Player.Pos

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, before, game.Registry().Player.Pos)
	assert.Equal(t, 120, m.screen.Width())
}

func TestModelHeldKeyMovesUntilReleased(t *testing.T) {
	game := quietGame()
	m := NewModel(game, testRuntime, Options{HoldWindow: 150 * time.Millisecond, RepeatDelay: 150 * time.Millisecond})
	m.Init()
	start := game.Registry().Player.Bottom()

	// Key presses are stamped with the wall clock
	tk := &ticker{now: time.Now()}
	m = send(t, m, runeKey('w'))
	m, _ = tk.next(t, m)
	assert.Greater(t, game.Registry().Player.Bottom(), start)

	// No repeats arrive, so the key is released after the hold window
	for range 3 {
		m, _ = tk.next(t, m)
	}
	stopped := game.Registry().Player.Bottom()
	m, _ = tk.next(t, m)
	assert.Equal(t, stopped, game.Registry().Player.Bottom())
	assert.Equal(t, 0.0, game.Registry().Player.Vel.Y)
}
