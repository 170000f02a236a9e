package game

import "testing"

func TestArenaAllocGet(t *testing.T) {
	a := NewArena()
	id := a.Alloc(Entity{Pos: Position{X: 1, Y: 2}, Size: 4})

	if a.Len() != 1 {
		t.Errorf("Len = %d, expected 1", a.Len())
	}
	if got := a.Get(id).Pos; got != (Position{X: 1, Y: 2}) {
		t.Errorf("Get(%d).Pos = %v, expected (1,2)", id, got)
	}

	// Handles stay valid as the arena grows.
	for i := 0; i < 10; i++ {
		a.Alloc(Entity{})
	}
	if got := a.Get(id).Pos; got != (Position{X: 1, Y: 2}) {
		t.Errorf("handle invalidated by growth: Pos = %v", got)
	}
}

func TestArenaDanglingHandlePanics(t *testing.T) {
	a := NewArena()
	a.Alloc(Entity{})

	defer func() {
		if recover() == nil {
			t.Error("Get with a dangling handle should panic")
		}
	}()
	a.Get(EntityID(5))
}

func TestArenaEachVisitsAll(t *testing.T) {
	a := NewArena()
	for i := 0; i < 3; i++ {
		a.Alloc(Entity{Pos: Position{X: i}})
	}

	var seen []int
	a.Each(func(id EntityID, e *Entity) {
		seen = append(seen, e.Pos.X)
	})

	if len(seen) != 3 {
		t.Fatalf("visited %d entities, expected 3", len(seen))
	}
	for i, x := range seen {
		if x != i {
			t.Errorf("visit order: seen[%d] = %d, expected %d", i, x, i)
		}
	}
}
