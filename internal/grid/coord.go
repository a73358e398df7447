package grid

import "fmt"

// Coord represents a 2D coordinate on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Adjacent returns true if the other coordinate is exactly one
// 4-directional step away.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

// Dir represents a 4-directional movement direction.
type Dir uint8

// Directions in neighbor-expansion order. Keeping this order fixed makes
// search tie-breaking reproducible across runs.
const (
	DirNorth Dir = iota
	DirEast
	DirSouth
	DirWest
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNorth:
		return "North"
	case DirEast:
		return "East"
	case DirSouth:
		return "South"
	case DirWest:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirEast:
		return 1, 0
	case DirSouth:
		return 0, 1
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// AllDirs returns the four directions in expansion order (N, E, S, W).
func AllDirs() []Dir {
	return []Dir{DirNorth, DirEast, DirSouth, DirWest}
}
