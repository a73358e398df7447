package boundary

import "github.com/mkostin/pathgrid/internal/grid"

// Marker colors, HSL. Terrain colors come from the tiles themselves.
var (
	overlayColor = hsl{280, 60, 50}
	pathColor    = hsl{50, 100, 60}
	startColor   = hsl{120, 100, 45}
	goalColor    = hsl{0, 100, 50}
	pointerColor = hsl{0, 0, 90}
)

type hsl struct{ h, s, l int }

// renderFrame emits the current world as a sequence of outbound draw
// calls: terrain, explored overlay, path, then markers. All calls happen
// within the active Tick and never concurrently. Callers must hold the
// mutex.
func (c *Core) renderFrame() {
	cw, ch := c.cellSize()
	size := cw
	if ch < size {
		size = ch
	}

	g := c.world.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cell := grid.C(x, y)
			tile, err := g.TileAt(cell)
			if err != nil {
				continue
			}
			h, s, l := tile.Terrain.HSL()
			c.draw(LayerTerrain, cell, cw, ch, size, hsl{h, s, l}, 1.0)
		}
	}

	if c.engine.ShowOverlay && c.world.Searched() {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				cell := grid.C(x, y)
				if c.world.Explored(cell) {
					c.draw(LayerOverlay, cell, cw, ch, size, overlayColor, 0.35)
				}
			}
		}
	}

	for _, cell := range c.world.Path {
		c.draw(LayerPath, cell, cw, ch, size, pathColor, 1.0)
	}

	c.draw(LayerMarkers, c.world.Start, cw, ch, size, startColor, 1.0)
	c.draw(LayerMarkers, c.world.Goal, cw, ch, size, goalColor, 1.0)
	if px, py, ok := c.engine.Pointer(); ok {
		cell := c.cellAt(px, py)
		if g.InBounds(cell) {
			c.draw(LayerMarkers, cell, cw, ch, size, pointerColor, 0.5)
		}
	}
}

func (c *Core) draw(layer int, cell grid.Coord, cw, ch, size float64, color hsl, alpha float64) {
	c.host.DrawPrimitive(layer,
		float64(cell.X)*cw, float64(cell.Y)*ch, size,
		color.h, color.s, color.l, alpha)
}
