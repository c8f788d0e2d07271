package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sky-shooter/internal/core"
)

// Visual characters for rendering
const (
	PlayerBody = '█'
	PlayerNose = '►'
	EnemyBody  = '═'
	EnemyNose  = '◄'
	CloudChar  = '░'
	CloudFlip  = '▒'
	WreckChar  = '*'
	HUDDivider = '─'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, c := range g.registry.Clouds {
		g.drawCloud(dst, c)
	}
	for _, e := range g.registry.Enemies {
		g.drawEnemy(dst, e)
	}
	g.drawPlayer(dst)

	if g.session.Debug {
		g.drawHitBoxes(dst)
	}

	g.drawHUD(dst)

	switch {
	case g.phase == PhaseOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Dodged: %d", g.Score(), g.dodged), core.ColorWarning)
	case g.phase == PhaseCrashing:
		g.drawCenteredMessage(dst, "CRASH!", fmt.Sprintf("Score: %d", g.Score()), core.ColorWarning)
	case g.session.Paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorHUD)
	}
}

// CellRect maps a world box onto the character grid of dst. The world is
// y-up while rows grow downward, so the top edge maps to the smaller row.
// Every visible box covers at least one cell.
func (g *Game) CellRect(b core.Box, dst *core.Screen) core.Rect {
	cols := float64(dst.Width())
	rows := float64(dst.Height())
	w, h := g.world.Width, g.world.Height

	x0 := int(math.Floor(b.Left * cols / w))
	x1 := int(math.Ceil(b.Right() * cols / w))
	y0 := int(math.Floor((h - b.Top()) * rows / h))
	y1 := int(math.Ceil((h - b.Bottom) * rows / h))

	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (g *Game) drawCloud(dst *core.Screen, c Entity) {
	ch := CloudChar
	if c.Flipped {
		ch = CloudFlip
	}
	dst.DrawRect(g.CellRect(c.Box(), dst), ch, core.ColorCloud)
}

// drawEnemy renders a missile pointing left.
func (g *Game) drawEnemy(dst *core.Screen, e Entity) {
	r := g.CellRect(e.Box(), dst)
	dst.DrawRect(r, EnemyBody, core.ColorEnemy)
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColored(r.X, y, EnemyNose, core.ColorEnemy)
	}
}

// drawPlayer renders the jet pointing right, or its wreck while crashing.
func (g *Game) drawPlayer(dst *core.Screen) {
	r := g.CellRect(g.registry.Player.Box(), dst)

	if g.phase != PhasePlaying {
		// Flicker while the fade runs
		if int(g.fade*10)%2 == 0 {
			dst.DrawRect(r, WreckChar, core.ColorWarning)
		}
		return
	}

	dst.DrawRect(r, PlayerBody, core.ColorPlayer)
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColored(r.Right()-1, y, PlayerNose, core.ColorPlayer)
	}
}

// drawHitBoxes outlines every entity and prints live stats on the last row.
func (g *Game) drawHitBoxes(dst *core.Screen) {
	g.registry.Each(func(e *Entity) {
		dst.DrawBox(g.CellRect(e.Box(), dst), core.ColorHitBox)
	})

	p := g.registry.Player
	stats := fmt.Sprintf(" enemies=%d clouds=%d pos=(%.0f,%.0f) vel=(%.0f,%.0f) ",
		len(g.registry.Enemies), len(g.registry.Clouds), p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y)
	y := dst.Height() - 1
	dst.DrawHLine(0, y, dst.Width(), HUDDivider, core.ColorHitBox)
	dst.DrawTextColored(2, y, stats, core.ColorHitBox)
}

func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", g.Score())
	dst.DrawTextColored(2, 0, scoreText, core.ColorHUD)

	// Show enemy speed if progression is enabled
	if g.difficulty.IsEnabled() {
		speedText := fmt.Sprintf(" Spd: x%.2f ", g.SpeedFactor())
		dst.DrawTextColored(dst.Width()-len(speedText)-2, 0, speedText, core.ColorHUD)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
