// Package game implements the snake gameplay core: the grid coordinate
// space, the snake chain, fruit and scoring, and the fixed-cadence tick
// engine. It contains no TUI dependencies so the logic stays pure and
// testable; the platform layer owns input devices and drawing.
package game

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultDivisor is how many cells the smaller window axis is split into.
const DefaultDivisor = 20

// Grid defines the playfield coordinate space: Width x Height square cells,
// each CellSize screen units on a side. Immutable after creation; derived
// once from the window size at startup.
type Grid struct {
	CellSize float64
	Width    int
	Height   int
}

// NewGrid derives the grid from a window. The cell size is the smaller
// window axis divided by divisor, and the cell counts are however many whole
// cells fit on each axis.
func NewGrid(winW, winH float64, divisor int) (Grid, error) {
	if winW <= 0 || winH <= 0 {
		return Grid{}, fmt.Errorf("game: window %gx%g is not positive", winW, winH)
	}
	if divisor <= 0 {
		divisor = DefaultDivisor
	}

	cell := math.Min(winW, winH) / float64(divisor)
	g := Grid{
		CellSize: cell,
		Width:    int(winW / cell),
		Height:   int(winH / cell),
	}
	if g.Width <= 0 || g.Height <= 0 {
		return Grid{}, fmt.Errorf("game: window %gx%g too small for divisor %d", winW, winH, divisor)
	}
	return g, nil
}

// Position is an integer cell coordinate. It may sit outside the grid for
// exactly one head move before collision is evaluated.
type Position struct {
	X, Y int
}

// InBounds returns true iff the position lies in [0,Width) x [0,Height).
func (p Position) InBounds(g Grid) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// Center returns the cell at the middle of the grid.
func Center(g Grid) Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}

// RandomPosition returns a uniformly random cell within the grid.
func RandomPosition(rng *rand.Rand, g Grid) Position {
	return Position{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
}
