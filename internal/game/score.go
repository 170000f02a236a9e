package game

// ScoreBoard is a monotonic counter: one point per fruit eaten, never
// decremented, reset only by starting a new session.
type ScoreBoard struct {
	score int
}

// Add1 records one eaten fruit.
func (s *ScoreBoard) Add1() {
	s.score++
}

// Score returns the current total.
func (s *ScoreBoard) Score() int {
	return s.score
}
