package game

import (
	"testing"

	"github.com/termgrid/snake/internal/core"
)

func TestFacingDefaultIsUp(t *testing.T) {
	var f Facing
	if f != FacingUp {
		t.Errorf("zero Facing = %v, expected up", f)
	}
}

func TestFacingOpposites(t *testing.T) {
	pairs := map[Facing]Facing{
		FacingUp:    FacingDown,
		FacingDown:  FacingUp,
		FacingLeft:  FacingRight,
		FacingRight: FacingLeft,
	}
	for f, want := range pairs {
		if got := f.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", f, got, want)
		}
		if !f.IsOpposite(want) {
			t.Errorf("%v.IsOpposite(%v) should be true", f, want)
		}
		if f.IsOpposite(f) {
			t.Errorf("%v.IsOpposite(itself) should be false", f)
		}
	}
}

func TestFacingDelta(t *testing.T) {
	tests := []struct {
		f      Facing
		dx, dy int
	}{
		{FacingUp, 0, -1},
		{FacingDown, 0, 1},
		{FacingLeft, -1, 0},
		{FacingRight, 1, 0},
	}
	for _, tc := range tests {
		dx, dy := tc.f.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d,%d), expected (%d,%d)", tc.f, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestFacingForIsTotalOverDirections(t *testing.T) {
	tests := []struct {
		act  core.Action
		want Facing
		ok   bool
	}{
		{core.ActionUp, FacingUp, true},
		{core.ActionDown, FacingDown, true},
		{core.ActionLeft, FacingLeft, true},
		{core.ActionRight, FacingRight, true},
		{core.ActionRestart, FacingUp, false},
		{core.ActionQuit, FacingUp, false},
		{core.ActionNone, FacingUp, false},
	}
	for _, tc := range tests {
		got, ok := FacingFor(tc.act)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("FacingFor(%v) = (%v, %v), expected (%v, %v)", tc.act, got, ok, tc.want, tc.ok)
		}
	}
}
