package game

import (
	"math/rand"
)

// Phase is the session's position in its tiny state machine. A session is
// created running and ends in exactly one way: the head leaves the grid.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseGameOver Phase = "game_over"
)

// State bundles everything one game session mutates: the entity arena, the
// snake chain, the fruit, the score and the phase. The grid and window size
// are fixed at creation and read-only from here on.
type State struct {
	Grid  Grid
	WinW  float64
	WinH  float64
	Arena *Arena
	Snake *Snake
	Fruit Fruit
	Score ScoreBoard
	Phase Phase

	rng *rand.Rand
}

// NewState creates a fresh session: head centered on the grid with an empty
// tail, fruit at a random cell (which may coincide with the snake), score 0.
// Render transforms are computed so every entity is drawable before the
// first tick.
func NewState(winW, winH float64, divisor int, seed int64) (*State, error) {
	grid, err := NewGrid(winW, winH, divisor)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	arena := NewArena()
	snake := NewSnake(arena, Center(grid), grid.CellSize)
	fruit := NewFruit(arena, rng, grid, grid.CellSize)

	st := &State{
		Grid:  grid,
		WinW:  winW,
		WinH:  winH,
		Arena: arena,
		Snake: snake,
		Fruit: fruit,
		Phase: PhaseRunning,
		rng:   rng,
	}
	RefreshTransforms(arena, grid.CellSize, winW, winH)
	return st, nil
}
