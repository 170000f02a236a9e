package game

import "github.com/termgrid/snake/internal/core"

// facingSampleOrder fixes the scan order for simultaneous directional
// presses. Every pressed direction overwrites the facing in turn, so the
// last matching entry wins: Right beats Left beats Down beats Up.
var facingSampleOrder = [...]core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
}

// SampleFacing runs on the fast input cadence, independently of the
// movement cadence. It overwrites the snake's facing with each pressed
// directional action in facingSampleOrder. No bounds or opposite-direction
// checks are applied.
func (st *State) SampleFacing(in core.InputFrame) {
	if st.Phase != PhaseRunning {
		return
	}
	for _, act := range facingSampleOrder {
		if !in.Has(act) {
			continue
		}
		if f, ok := FacingFor(act); ok {
			st.Snake.Facing = f
		}
	}
}

// Tick runs one movement step in the fixed order: move, collide, eat,
// refresh transforms. A tick on an ended session is a no-op. The only
// randomness is the fruit respawn; given identical facing and positions the
// post-tick chain is identical.
func (st *State) Tick() {
	if st.Phase != PhaseRunning {
		return
	}

	a := st.Arena
	head := a.Get(st.Snake.Head)

	// Snapshot the chain before moving anything. The shift below must read
	// only pre-move positions, or extending the chain on the same tick
	// corrupts it.
	prevHead := head.Pos
	prevTail := st.Snake.TailPositions(a)

	dx, dy := st.Snake.Facing.Delta()
	head.Pos = Position{X: head.Pos.X + dx, Y: head.Pos.Y + dy}

	// Leader-follower shift: segment 0 takes the head's pre-move cell,
	// segment i takes segment i-1's pre-move cell.
	for i, id := range st.Snake.Tail {
		if i == 0 {
			a.Get(id).Pos = prevHead
		} else {
			a.Get(id).Pos = prevTail[i-1]
		}
	}

	// No wraparound: one out-of-bounds head move ends the session. The
	// final score stays readable on the state.
	if !head.Pos.InBounds(st.Grid) {
		st.Phase = PhaseGameOver
		return
	}

	if head.Pos == st.Fruit.Pos(a) {
		st.Fruit.Respawn(a, st.rng, st.Grid)
		st.Score.Add1()
		st.Snake.Grow(a, prevHead, st.Grid.CellSize)
	}

	RefreshTransforms(a, st.Grid.CellSize, st.WinW, st.WinH)
}
