package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || !f.Empty() {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set should mark the action")
	}
	if f.Has(ActionPause) {
		t.Error("unrelated action should not be set")
	}

	f.Clear()
	if f.Has(ActionJump) || !f.Empty() {
		t.Error("Clear should reset actions")
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	f.Set(Action(42))
	if !f.Empty() {
		t.Error("none and unknown actions should not be recorded")
	}
	if f.Has(Action(42)) {
		t.Error("Has should be false for unknown actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionBack, "Back"},
		{ActionQuit, "Quit"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
