package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/sky-shooter/internal/core"
)

const (
	// DefaultHoldWindow is how long a movement key counts as held after its
	// last auto-repeat.
	DefaultHoldWindow = 350 * time.Millisecond
	// DefaultRepeatDelay is how long a fresh press counts as held before the
	// first auto-repeat. Terminals wait about 500-660ms before repeating.
	DefaultRepeatDelay = 700 * time.Millisecond
)

// keyHold is the last time a movement key was seen and whether the
// terminal has started auto-repeating it.
type keyHold struct {
	last      time.Time
	repeating bool
}

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report key presses and auto-repeats but never releases. The
// mapper remembers when each movement key was last seen and synthesizes a
// release once it has been quiet for too long: the repeat delay until the
// first repeat arrives, the hold window after that.
type KeyMapper struct {
	hold        time.Duration
	repeatDelay time.Duration
	held        *intmap.Map[core.Action, keyHold]
}

// NewKeyMapper creates a key mapper with the given hold window and repeat
// delay. Non-positive values use the defaults, and the repeat delay is never
// shorter than the hold window.
func NewKeyMapper(hold, repeatDelay time.Duration) *KeyMapper {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	if repeatDelay <= 0 {
		repeatDelay = DefaultRepeatDelay
	}
	repeatDelay = max(repeatDelay, hold)
	return &KeyMapper{
		hold:        hold,
		repeatDelay: repeatDelay,
		held:        intmap.New[core.Action, keyHold](len(core.MovementActions)),
	}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit
	case "w", "up":
		return core.ActionUp
	case "s", "down":
		return core.ActionDown
	case "a", "left":
		return core.ActionLeft
	case "d", "right":
		return core.ActionRight
	case "p":
		return core.ActionPause
	case "o":
		return core.ActionDebug
	case "enter":
		return core.ActionConfirm
	case "b":
		return core.ActionBack
	}
	return core.ActionNone
}

// MapKeyToFrame records the key in frame as of now. A repeat of a held
// movement key only refreshes its hold time, so each physical press
// produces one press event.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) core.Action {
	action := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case action.IsMovement():
		km.pressMovement(action, now, frame)
	default:
		frame.Press(action)
	}
	return action
}

func (km *KeyMapper) pressMovement(action core.Action, now time.Time, frame *core.InputFrame) {
	_, ok := km.held.Get(action)
	if !ok {
		frame.Press(action)
	}
	// Seeing a held key again means the terminal is auto-repeating it
	km.held.Put(action, keyHold{last: now, repeating: ok})

	// The opposite key on the same axis is overridden, not released later
	km.held.Del(opposite(action))
}

// Expire adds a release to frame for every movement key that has been quiet
// for longer than its window.
func (km *KeyMapper) Expire(now time.Time, frame *core.InputFrame) {
	for _, a := range core.MovementActions {
		h, ok := km.held.Get(a)
		if !ok {
			continue
		}
		window := km.repeatDelay
		if h.repeating {
			window = km.hold
		}
		if now.Sub(h.last) <= window {
			continue
		}
		frame.Release(a)
		km.held.Del(a)
	}
}

// Held reports whether a movement key is currently considered down.
func (km *KeyMapper) Held(a core.Action) bool {
	_, ok := km.held.Get(a)
	return ok
}

// Reset forgets every held key without emitting releases.
func (km *KeyMapper) Reset() {
	km.held.Clear()
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
