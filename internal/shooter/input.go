package shooter

import "github.com/vovakirdan/sky-shooter/internal/core"

// InputResult reports the side effects of one frame's key events.
type InputResult struct {
	Quit      bool
	MovedUp   bool // An up press happened; frontends play the rising sound
	MovedDown bool
}

// HandleInput applies a frame's key events in order. Movement presses set
// one velocity component to ±speed and releases zero it, so the last event
// touching a component wins. Pause and debug presses toggle the session.
func HandleInput(in core.InputFrame, player *Entity, session Session, speed float64) (Session, InputResult) {
	var res InputResult

	for _, ev := range in.Events {
		if ev.Released {
			switch ev.Action {
			case core.ActionUp, core.ActionDown:
				player.Vel.Y = 0
			case core.ActionLeft, core.ActionRight:
				player.Vel.X = 0
			}
			continue
		}

		switch ev.Action {
		case core.ActionQuit:
			res.Quit = true
		case core.ActionPause:
			session.Paused = !session.Paused
		case core.ActionDebug:
			session.Debug = !session.Debug
		case core.ActionUp:
			player.Vel.Y = speed
			res.MovedUp = true
		case core.ActionDown:
			player.Vel.Y = -speed
			res.MovedDown = true
		case core.ActionLeft:
			player.Vel.X = -speed
		case core.ActionRight:
			player.Vel.X = speed
		}
	}

	return session, res
}
