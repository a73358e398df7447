// Package grid provides the tile grid the pathfinding world runs on.
// It is pure data and coordinate math with no rendering or search logic,
// keeping it independently testable.
package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

// Terrain identifies the kind of ground a tile holds. Terrain determines
// both the movement cost and the color used when the tile is drawn.
type Terrain uint8

const (
	TerrainPlain Terrain = iota
	TerrainSand
	TerrainForest
	TerrainRock
	TerrainWater // impassable
)

// String returns the string representation of a terrain kind.
func (t Terrain) String() string {
	switch t {
	case TerrainPlain:
		return "plain"
	case TerrainSand:
		return "sand"
	case TerrainForest:
		return "forest"
	case TerrainRock:
		return "rock"
	case TerrainWater:
		return "water"
	default:
		return "unknown"
	}
}

// Cost returns the movement cost of entering a tile with this terrain.
// Impassable terrain returns 0. The minimum passable cost is 1.0 so the
// Manhattan heuristic stays admissible for 4-directional movement.
func (t Terrain) Cost() float64 {
	switch t {
	case TerrainPlain:
		return 1.0
	case TerrainSand:
		return 1.3
	case TerrainForest:
		return 1.5
	case TerrainRock:
		return 2.0
	default:
		return 0
	}
}

// Passable returns true if the terrain can be walked on.
func (t Terrain) Passable() bool {
	return t != TerrainWater
}

// HSL returns the hue/saturation/lightness color metadata for rendering.
// The values are only consumed by draw calls; search never reads them.
func (t Terrain) HSL() (h, s, l int) {
	switch t {
	case TerrainPlain:
		return 100, 45, 38
	case TerrainSand:
		return 45, 55, 55
	case TerrainForest:
		return 130, 55, 25
	case TerrainRock:
		return 0, 0, 45
	case TerrainWater:
		return 215, 60, 30
	default:
		return 0, 0, 50
	}
}

// Tile is a single grid cell. Tiles are created at generation time and
// never mutated afterwards.
type Tile struct {
	Terrain Terrain
}

// Cost returns the movement cost of entering this tile.
func (t Tile) Cost() float64 {
	return t.Terrain.Cost()
}

// Passable returns true if this tile can be walked on.
func (t Tile) Passable() bool {
	return t.Terrain.Passable()
}

// Grid is a bounded rectangular tile map. Cells are stored in row-major
// order: index = y*W + x. The grid is immutable after generation;
// regeneration replaces it wholesale.
type Grid struct {
	W     int
	H     int
	Seed  uint64
	tiles []Tile
}

// terrain distribution used by Generate. Water makes roughly a fifth of
// the map impassable, enough to force detours without making no-path the
// common case.
var terrainTable = []struct {
	terrain Terrain
	weight  float64
}{
	{TerrainPlain, 0.48},
	{TerrainWater, 0.20},
	{TerrainForest, 0.14},
	{TerrainSand, 0.10},
	{TerrainRock, 0.08},
}

// Generate creates a w×h grid with pseudo-randomly assigned terrain,
// deterministic for a given seed.
func Generate(w, h int, seed uint64) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d", w, h)
	}

	g := &Grid{
		W:     w,
		H:     h,
		Seed:  seed,
		tiles: make([]Tile, w*h),
	}

	r := newRNG(seed)
	for i := range g.tiles {
		g.tiles[i] = Tile{Terrain: pickTerrain(r.float())}
	}
	return g, nil
}

// NewUniform creates a grid with every cell set to the given terrain.
// Used by tests and by callers that build fixtures by hand.
func NewUniform(w, h int, t Terrain) *Grid {
	g := &Grid{W: w, H: h, tiles: make([]Tile, w*h)}
	for i := range g.tiles {
		g.tiles[i] = Tile{Terrain: t}
	}
	return g
}

func pickTerrain(roll float64) Terrain {
	acc := 0.0
	for _, e := range terrainTable {
		acc += e.weight
		if roll < acc {
			return e.terrain
		}
	}
	return TerrainPlain
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// TileAt returns the tile at the given coordinate.
// Returns ErrOutOfBounds for coordinates outside [0,W)×[0,H).
func (g *Grid) TileAt(c Coord) (Tile, error) {
	if !g.InBounds(c) {
		return Tile{}, fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, c, g.W, g.H)
	}
	return g.tiles[g.index(c)], nil
}

// SetTerrain overwrites a cell's terrain. Only intended for tests and
// fixtures; live grids are never mutated after generation.
func (g *Grid) SetTerrain(c Coord, t Terrain) {
	if g.InBounds(c) {
		g.tiles[g.index(c)] = Tile{Terrain: t}
	}
}

// Passable returns true if the coordinate is in bounds and walkable.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.tiles[g.index(c)].Passable()
}

// Neighbors returns the in-bounds, passable coordinates adjacent to c,
// always in N, E, S, W order so downstream tie-breaking is deterministic.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range AllDirs() {
		n := c.Step(d)
		if g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// PassableCount returns the number of walkable cells.
func (g *Grid) PassableCount() int {
	count := 0
	for _, t := range g.tiles {
		if t.Passable() {
			count++
		}
	}
	return count
}

// FirstPassable scans row-major from the top-left and returns the first
// walkable coordinate. Used to derive a default start position.
func (g *Grid) FirstPassable() (Coord, bool) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.Passable(c) {
				return c, true
			}
		}
	}
	return Coord{}, false
}

// LastPassable scans row-major from the bottom-right and returns the first
// walkable coordinate. Used to derive a default goal position.
func (g *Grid) LastPassable() (Coord, bool) {
	for y := g.H - 1; y >= 0; y-- {
		for x := g.W - 1; x >= 0; x-- {
			c := C(x, y)
			if g.Passable(c) {
				return c, true
			}
		}
	}
	return Coord{}, false
}

// Equal returns true if two grids have the same dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}
