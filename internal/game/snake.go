package game

// Snake is the head entity plus the ordered tail chain. Tail index 0 is the
// segment immediately behind the head; the head itself never appears in the
// tail. Segments are appended only, one per fruit eaten, so the tail length
// always equals the score.
type Snake struct {
	Head   EntityID
	Facing Facing
	Tail   []EntityID
}

// NewSnake allocates the head entity at start and returns a snake with an
// empty tail, facing up.
func NewSnake(a *Arena, start Position, size float64) *Snake {
	head := a.Alloc(Entity{Pos: start, Size: size})
	return &Snake{Head: head, Facing: FacingUp}
}

// HeadPos returns the head's current cell.
func (s *Snake) HeadPos(a *Arena) Position {
	return a.Get(s.Head).Pos
}

// TailPositions returns the tail cells in chain order. Used as the pre-move
// snapshot for the leader-follower shift.
func (s *Snake) TailPositions(a *Arena) []Position {
	if len(s.Tail) == 0 {
		return nil
	}
	ps := make([]Position, len(s.Tail))
	for i, id := range s.Tail {
		ps[i] = a.Get(id).Pos
	}
	return ps
}

// Grow appends one segment at the given cell to the end of the chain.
func (s *Snake) Grow(a *Arena, at Position, size float64) {
	id := a.Alloc(Entity{Pos: at, Size: size})
	s.Tail = append(s.Tail, id)
}

// Len returns the tail length (segments behind the head).
func (s *Snake) Len() int {
	return len(s.Tail)
}
