package core

import (
	"reflect"
	"testing"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionRotate)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if got := f.Actions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Actions() = %v, expected %v", got, want)
	}
	if f.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", f.Len())
	}
	if !f.Has(ActionRotate) || f.Has(ActionHardDrop) {
		t.Error("Has() reported the wrong membership")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame(ActionHardDrop)
	clone := f.Clone()

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if !clone.Has(ActionHardDrop) {
		t.Error("Clone should not be affected by Clear")
	}

	actions := clone.Actions()
	actions[0] = ActionPause
	if !clone.Has(ActionHardDrop) {
		t.Error("Actions() should return a copy")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionSoftDrop, "SoftDrop"},
		{ActionHardDrop, "HardDrop"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.want)
		}
	}
}
