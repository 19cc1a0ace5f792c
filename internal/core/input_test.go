package core

import "testing"

func TestInputFrameSelectKeepsFirstChoice(t *testing.T) {
	f := NewInputFrame()
	if f.Choice != NoChoice {
		t.Fatalf("new frame Choice = %d, expected NoChoice", f.Choice)
	}

	f.Select(2)
	f.Select(0)

	if !f.Has(ActionSelect) {
		t.Error("Select should set ActionSelect")
	}
	if f.Choice != 2 {
		t.Errorf("Choice = %d, expected first selection 2", f.Choice)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionBack)
	f.Select(1)
	f.Clear()

	if f.Has(ActionBack) || f.Has(ActionSelect) {
		t.Error("Clear should remove all actions")
	}
	if f.Choice != NoChoice {
		t.Errorf("Clear should reset Choice, got %d", f.Choice)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Select(3)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionSelect) || clone.Choice != 3 {
		t.Errorf("clone should be independent, got %+v", clone)
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set on zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	if ActionSelect.String() != "Select" {
		t.Errorf("ActionSelect.String() = %q", ActionSelect.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
