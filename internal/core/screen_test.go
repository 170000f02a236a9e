package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'X', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(3,2) = %+v, expected {X, red}", cell)
	}

	// Plain Set uses the default color.
	s.Set(4, 2, 'Y')
	if got := s.GetCell(4, 2); got.Rune != 'Y' || got.Color != ColorDefault {
		t.Errorf("GetCell(4,2) = %+v, expected {Y, default}", got)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(10, 5)

	// None of these should panic or change state.
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank", got)
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds Set leaked into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', ColorGreen)

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, cell = %+v, expected blank default", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)

	if got := s.GetCell(2, 2).Rune; got != 'A' {
		t.Errorf("cell (2,2) = %q, expected 'A' preserved", got)
	}
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("size = %dx%d, expected 5x3", s.Width(), s.Height())
	}

	// Growing back leaves the truncated region blank.
	s.Resize(10, 5)
	if got := s.GetCell(9, 4).Rune; got != ' ' {
		t.Errorf("cell (9,4) = %q, expected blank after shrink+grow", got)
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(4, 2, 5, 5, '#', ColorBlue)

	if got := s.GetCell(5, 3); got.Rune != '#' || got.Color != ColorBlue {
		t.Errorf("in-bounds corner = %+v, expected {#, blue}", got)
	}
	if got := s.GetCell(0, 0).Rune; got != ' ' {
		t.Errorf("untouched cell = %q, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 1, "hello") // Clipped after "hel"

	if got := s.Row(1); got != "       hel" {
		t.Errorf("Row(1) = %q, expected %q", got, "       hel")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("fresh frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionLeft)
	if !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Error("set actions should be present")
	}
	if f.Has(ActionDown) {
		t.Error("unset action should be absent")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionUp) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// A zero-valued frame must be safe to query and set.
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set on zero frame should work")
	}
}
