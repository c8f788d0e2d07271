package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-shooter/internal/core"
)

// skyColor is the playfield background.
var skyColor = lipgloss.Color("25")

// colorStyles maps core.Color to lipgloss styles drawn over the sky.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      sky(lipgloss.Color("15")),
	core.ColorRed:          sky(lipgloss.Color("1")),
	core.ColorYellow:       sky(lipgloss.Color("3")),
	core.ColorBlue:         sky(lipgloss.Color("4")),
	core.ColorCyan:         sky(lipgloss.Color("6")),
	core.ColorWhite:        sky(lipgloss.Color("7")),
	core.ColorBrightRed:    sky(lipgloss.Color("9")).Bold(true),
	core.ColorBrightYellow: sky(lipgloss.Color("11")).Bold(true),
	core.ColorBrightCyan:   sky(lipgloss.Color("14")),
	core.ColorBrightWhite:  sky(lipgloss.Color("15")),
	core.ColorOrange:       sky(lipgloss.Color("208")),
	core.ColorGray:         sky(lipgloss.Color("245")),
}

func sky(fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg).Background(skyColor)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
