package game

// RenderState is the screen-space placement of an entity: a scale equal to
// the cell size on both axes plus a translation in window coordinates with
// the origin at the window center, y up.
type RenderState struct {
	ScaleX, ScaleY         float64
	TranslateX, TranslateY float64
}

// GridToReal maps a cell coordinate to centered screen space. Grid (0,0)
// lands on the top-left cell center such that the full grid is horizontally
// and vertically centered in the window. Pure, no error cases.
func GridToReal(pos Position, cellSize, winW, winH float64) (x, y float64) {
	x = (-winW+cellSize)/2 + float64(pos.X)*cellSize
	y = (winH-cellSize)/2 - float64(pos.Y)*cellSize
	return x, y
}

// RefreshTransforms recomputes the render state of every entity from its
// current position. Idempotent; grid positions only change on movement
// ticks, so running it once per tick after movement and growth is enough.
func RefreshTransforms(a *Arena, cellSize, winW, winH float64) {
	a.Each(func(_ EntityID, e *Entity) {
		x, y := GridToReal(e.Pos, cellSize, winW, winH)
		e.Render = RenderState{
			ScaleX:     e.Size,
			ScaleY:     e.Size,
			TranslateX: x,
			TranslateY: y,
		}
	})
}
