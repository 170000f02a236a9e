package game

import "fmt"

// EntityID is a handle into the Arena.
type EntityID int

// Entity is anything drawable on the grid: it carries a cell position, a
// render size in screen units, and the render state recomputed each
// movement tick.
type Entity struct {
	Pos    Position
	Size   float64
	Render RenderState
}

// Arena owns every drawable entity in a session. Handles index an
// append-only slice; entities are never freed for the lifetime of a session,
// so a handle stays valid once allocated. A handle that does not resolve is
// a programming error and panics.
type Arena struct {
	entities []Entity
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc stores the entity and returns its handle.
func (a *Arena) Alloc(e Entity) EntityID {
	a.entities = append(a.entities, e)
	return EntityID(len(a.entities) - 1)
}

// Get resolves a handle to its entity. Panics on a dangling handle.
func (a *Arena) Get(id EntityID) *Entity {
	if id < 0 || int(id) >= len(a.entities) {
		panic(fmt.Sprintf("game: dangling entity handle %d (arena has %d)", id, len(a.entities)))
	}
	return &a.entities[id]
}

// Len returns the number of entities allocated.
func (a *Arena) Len() int {
	return len(a.entities)
}

// Each calls fn for every entity in allocation order.
func (a *Arena) Each(fn func(id EntityID, e *Entity)) {
	for i := range a.entities {
		fn(EntityID(i), &a.entities[i])
	}
}
