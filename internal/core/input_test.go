package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionUp)
	f.Release(ActionUp)
	f.Press(ActionDown)

	if len(f.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(f.Events))
	}
	if f.Events[1] != (KeyEvent{Action: ActionUp, Released: true}) {
		t.Errorf("second event = %+v, expected Up release", f.Events[1])
	}
	if !f.Has(ActionUp) || !f.Has(ActionDown) {
		t.Error("Has should report pressed actions")
	}
	if f.Has(ActionPause) {
		t.Error("Has should not report actions that were never pressed")
	}
}

func TestInputFrameReleaseOnlyIsNotPress(t *testing.T) {
	f := NewInputFrame()
	f.Release(ActionLeft)
	if f.Has(ActionLeft) {
		t.Error("a release must not count as a press")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionPause)
	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear should drop all events, got %d", len(f.Events))
	}
}

func TestActionIsMovement(t *testing.T) {
	for _, a := range MovementActions {
		if !a.IsMovement() {
			t.Errorf("%s should be a movement action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionDebug, ActionQuit} {
		if a.IsMovement() {
			t.Errorf("%s should not be a movement action", a)
		}
	}
}
