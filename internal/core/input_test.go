package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("Zero frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionPause)
	f.Set(ActionNone)

	if !f.Has(ActionJump) || !f.Has(ActionPause) {
		t.Error("Expected jump and pause to be set")
	}
	if f.Has(ActionRestart) || f.Has(ActionNone) {
		t.Error("Unset actions should not be reported")
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionJump) {
		t.Error("Clear should empty the frame")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionRestart, "Restart"},
		{ActionPause, "Pause"},
		{ActionQuit, "Quit"},
		{Action(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.expected)
		}
	}
}
