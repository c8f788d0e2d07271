package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/sky-shooter/internal/core"
)

func TestHandleInputMovement(t *testing.T) {
	tests := []struct {
		name   string
		events []core.KeyEvent
		want   core.Vec
	}{
		{"up", []core.KeyEvent{{Action: core.ActionUp}}, core.Vec{Y: 5}},
		{"down", []core.KeyEvent{{Action: core.ActionDown}}, core.Vec{Y: -5}},
		{"left", []core.KeyEvent{{Action: core.ActionLeft}}, core.Vec{X: -5}},
		{"right", []core.KeyEvent{{Action: core.ActionRight}}, core.Vec{X: 5}},
		{"diagonal", []core.KeyEvent{{Action: core.ActionUp}, {Action: core.ActionRight}}, core.Vec{X: 5, Y: 5}},
		{"up then down wins down", []core.KeyEvent{{Action: core.ActionUp}, {Action: core.ActionDown}}, core.Vec{Y: -5}},
		{"press then release", []core.KeyEvent{{Action: core.ActionLeft}, {Action: core.ActionLeft, Released: true}}, core.Vec{}},
		{"release then press", []core.KeyEvent{{Action: core.ActionLeft, Released: true}, {Action: core.ActionLeft}}, core.Vec{X: -5}},
		// Releasing down also stops upward motion: no additive combination
		{"up then release down", []core.KeyEvent{{Action: core.ActionUp}, {Action: core.ActionDown, Released: true}}, core.Vec{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			player := Entity{Kind: KindPlayer}
			_, _ = HandleInput(core.InputFrame{Events: tc.events}, &player, Session{}, 5)
			assert.Equal(t, tc.want, player.Vel)
		})
	}
}

func TestHandleInputSessionToggles(t *testing.T) {
	player := Entity{Kind: KindPlayer}

	in := core.NewInputFrame()
	in.Press(core.ActionPause)
	in.Press(core.ActionDebug)
	s, res := HandleInput(in, &player, Session{}, 5)
	assert.Equal(t, Session{Paused: true, Debug: true}, s)
	assert.False(t, res.Quit)

	in.Clear()
	in.Press(core.ActionPause)
	in.Release(core.ActionDebug) // releases do not toggle
	s, _ = HandleInput(in, &player, s, 5)
	assert.Equal(t, Session{Debug: true}, s)
}

func TestHandleInputQuitAndSounds(t *testing.T) {
	player := Entity{Kind: KindPlayer}

	in := core.NewInputFrame()
	in.Press(core.ActionUp)
	in.Press(core.ActionDown)
	in.Press(core.ActionQuit)
	_, res := HandleInput(in, &player, Session{}, 5)

	assert.Equal(t, InputResult{Quit: true, MovedUp: true, MovedDown: true}, res)

	in.Clear()
	in.Release(core.ActionUp)
	_, res = HandleInput(in, &player, Session{}, 5)
	assert.Equal(t, InputResult{}, res, "releases never play sounds")
}
