package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Fire should be set")
	}
	if f.Has(ActionLaunch) {
		t.Error("Launch should not be set")
	}
}

func TestInputFrameDragAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Drag(3)
	f.Drag(-5)
	f.Set(ActionLeft)

	if f.DragX != -2 {
		t.Errorf("DragX = %d, expected -2", f.DragX)
	}

	f.Clear()

	if f.DragX != 0 || f.Has(ActionLeft) {
		t.Error("Clear should reset drag and actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionLeft:      "Left",
		ActionFire:      "Fire",
		ActionNextLevel: "NextLevel",
		Action(99):      "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
