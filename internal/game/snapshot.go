package game

// Snapshot captures the observable session state for determinism testing
// and for the platform's HUD/overlays.
type Snapshot struct {
	Phase   Phase
	Score   int
	TailLen int
	HeadX   int
	HeadY   int
	Facing  Facing
	FruitX  int
	FruitY  int
}

// Snapshot returns the current session snapshot.
func (st *State) Snapshot() Snapshot {
	head := st.Snake.HeadPos(st.Arena)
	fruit := st.Fruit.Pos(st.Arena)
	return Snapshot{
		Phase:   st.Phase,
		Score:   st.Score.Score(),
		TailLen: st.Snake.Len(),
		HeadX:   head.X,
		HeadY:   head.Y,
		Facing:  st.Snake.Facing,
		FruitX:  fruit.X,
		FruitY:  fruit.Y,
	}
}
