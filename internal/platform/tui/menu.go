package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-shooter/internal/config"
	"github.com/vovakirdan/sky-shooter/internal/core"
	"github.com/vovakirdan/sky-shooter/internal/shooter"
	"github.com/vovakirdan/sky-shooter/internal/storage"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Preset    config.DifficultyPreset // Empty means the loaded config as-is
	Title     string
	HighScore int
}

// menuItems lists the config default followed by every preset.
func menuItems(store *storage.Store) []MenuItem {
	items := make([]MenuItem, 0, len(config.Presets)+1)
	items = append(items, MenuItem{Title: "Classic"})
	for _, p := range config.Presets {
		items = append(items, MenuItem{Preset: p, Title: presetTitle(p)})
	}

	if store != nil {
		for i := range items {
			// Missing scores just show as zero
			high, _ := store.HighScore(shooter.ScoreID(items[i].Preset))
			items[i].HighScore = high
		}
	}
	return items
}

// presetTitle returns the display name for a preset.
func presetTitle(p config.DifficultyPreset) string {
	switch p {
	case "":
		return "Classic"
	case config.DifficultyFixed:
		return "Fixed speed"
	default:
		s := string(p)
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user picks a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
	embedded       bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems(store),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(0, 0),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, m.exit()

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, m.exit()
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, m.exit()
	}

	return m, nil
}

// exit quits a standalone menu program; an embedded menu lets its parent read the result.
func (m MenuModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting && !m.embedded {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  S K Y   S H O O T E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}

		line := fmt.Sprintf("%s%-12s best %5d", cursor, item.Title, item.HighScore)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("WASD/Arrows: fly  |  P: pause  |  O: hit boxes  |  Esc/Q: quit"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.Preset = m.Selected().Preset
	}

	return result, nil
}
