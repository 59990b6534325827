package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionShootLeft) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionShootLeft)
	f.Set(ActionMoveUp)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionShootLeft) {
		t.Error("Clear() should remove all actions")
	}
	if !clone.Has(ActionShootLeft) || !clone.Has(ActionMoveUp) {
		t.Error("Clone() should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionMoveUp) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionMoveUp)
	if !zero.Has(ActionMoveUp) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestActionTags(t *testing.T) {
	tests := []struct {
		action   Action
		tag      string
		gameplay bool
	}{
		{ActionMoveUp, "move-up", true},
		{ActionMoveRight, "move-right", true},
		{ActionShootDown, "shoot-down", true},
		{ActionShootRight, "shoot-right", true},
		{ActionPause, "pause", false},
		{ActionNone, "none", false},
		{Action(99), "unknown", false},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.tag {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.tag)
		}
		if got := tc.action.IsGameplay(); got != tc.gameplay {
			t.Errorf("Action(%d).IsGameplay() = %v, expected %v", tc.action, got, tc.gameplay)
		}
	}
}
