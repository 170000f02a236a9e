package game

import "math/rand"

// Fruit occupies a single cell; at most one exists per session. Eating it
// relocates the same entity in place, it is never destroyed.
type Fruit struct {
	ID EntityID
}

// NewFruit allocates the fruit entity at a random cell.
func NewFruit(a *Arena, rng *rand.Rand, g Grid, size float64) Fruit {
	id := a.Alloc(Entity{Pos: RandomPosition(rng, g), Size: size})
	return Fruit{ID: id}
}

// Pos returns the fruit's current cell.
func (f Fruit) Pos(a *Arena) Position {
	return a.Get(f.ID).Pos
}

// Respawn moves the fruit to a uniformly random cell within the grid.
// Cells occupied by the snake are not excluded, so the fruit can land under
// the snake and be eaten on a later pass.
func (f Fruit) Respawn(a *Arena, rng *rand.Rand, g Grid) {
	a.Get(f.ID).Pos = RandomPosition(rng, g)
}
