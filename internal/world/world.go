// Package world owns the simulation state: the grid, the start and goal
// positions, and the A* search over them. It performs no rendering and has
// no knowledge of the host boundary.
package world

import (
	"errors"
	"fmt"

	"github.com/mkostin/pathgrid/internal/grid"
)

// ErrImpassable is returned when a start or goal coordinate references a
// blocked tile.
var ErrImpassable = errors.New("world: coordinate is impassable")

// State holds the grid, endpoints, the most recent path, and the retained
// search bookkeeping. It is not safe for concurrent use; the boundary layer
// serializes access.
type State struct {
	Grid  *grid.Grid
	Start grid.Coord
	Goal  grid.Coord

	// Result of the most recent search. Valid until the next search or
	// regeneration.
	Path     []grid.Coord
	Cost     float64
	Found    bool
	Expanded int
	searched bool

	book bookkeeping
}

// New creates a world over a freshly generated grid with default start and
// goal positions (first and last passable cells in row-major order).
func New(w, h int, seed uint64) (*State, error) {
	g, err := grid.Generate(w, h, seed)
	if err != nil {
		return nil, err
	}
	s := &State{Grid: g}
	s.deriveEndpoints()
	return s, nil
}

// NewWithGrid creates a world over an existing grid. Used by tests and the
// headless solver.
func NewWithGrid(g *grid.Grid) *State {
	s := &State{Grid: g}
	s.deriveEndpoints()
	return s
}

func (s *State) deriveEndpoints() {
	if c, ok := s.Grid.FirstPassable(); ok {
		s.Start = c
	}
	if c, ok := s.Grid.LastPassable(); ok {
		s.Goal = c
	}
}

// validate checks that a coordinate is usable as a search endpoint.
func (s *State) validate(c grid.Coord) error {
	tile, err := s.Grid.TileAt(c)
	if err != nil {
		return err
	}
	if !tile.Passable() {
		return fmt.Errorf("%w: %s (%s)", ErrImpassable, c, tile.Terrain)
	}
	return nil
}

// SetStart moves the start position. The stored path is invalidated; the
// caller decides when to search again.
func (s *State) SetStart(c grid.Coord) error {
	if err := s.validate(c); err != nil {
		return err
	}
	s.Start = c
	s.invalidate()
	return nil
}

// SetGoal moves the goal position.
func (s *State) SetGoal(c grid.Coord) error {
	if err := s.validate(c); err != nil {
		return err
	}
	s.Goal = c
	s.invalidate()
	return nil
}

// Regenerate replaces the grid wholesale with a new one generated from the
// given seed, re-derives default endpoints, and invalidates any prior path.
func (s *State) Regenerate(seed uint64) error {
	g, err := grid.Generate(s.Grid.W, s.Grid.H, seed)
	if err != nil {
		return err
	}
	s.Grid = g
	s.deriveEndpoints()
	s.invalidate()
	return nil
}

func (s *State) invalidate() {
	s.Path = nil
	s.Cost = 0
	s.Found = false
	s.Expanded = 0
	s.searched = false
	s.book = bookkeeping{}
}

// Search computes the lowest-cost path from Start to Goal, or determines
// that none exists. Errors are reserved for unusable endpoints; an
// exhausted search is a normal Found=false result.
func (s *State) Search() (Result, error) {
	if err := s.validate(s.Start); err != nil {
		return Result{}, fmt.Errorf("world: start: %w", err)
	}
	if err := s.validate(s.Goal); err != nil {
		return Result{}, fmt.Errorf("world: goal: %w", err)
	}

	if s.Start == s.Goal {
		res := Result{Path: []grid.Coord{s.Start}, Cost: 0, Expanded: 0, Found: true}
		s.store(res, bookkeeping{
			closed: map[grid.Coord]bool{s.Start: true},
			gScore: map[grid.Coord]float64{s.Start: 0},
		})
		return res, nil
	}

	res, book := astar(s.Grid, s.Start, s.Goal)
	s.store(res, book)
	return res, nil
}

func (s *State) store(res Result, book bookkeeping) {
	s.Path = res.Path
	s.Cost = res.Cost
	s.Found = res.Found
	s.Expanded = res.Expanded
	s.searched = true
	s.book = book
}

// Searched returns true if a search has run since the last invalidation.
func (s *State) Searched() bool {
	return s.searched
}

// Explored returns true if the coordinate was closed during the most
// recent search. Used for overlay rendering.
func (s *State) Explored(c grid.Coord) bool {
	return s.book.closed != nil && s.book.closed[c]
}

// ExploredCount returns how many coordinates the last search closed.
func (s *State) ExploredCount() int {
	return len(s.book.closed)
}

// OnPath returns true if the coordinate lies on the current path.
func (s *State) OnPath(c grid.Coord) bool {
	for _, p := range s.Path {
		if p == c {
			return true
		}
	}
	return false
}
