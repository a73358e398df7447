package world

import (
	"container/heap"

	"github.com/mkostin/pathgrid/internal/grid"
)

// Result contains the outcome of one A* run. Found=false with a nil error
// means the search ran to completion and no route exists; callers must
// distinguish that from a search that failed to run at all.
type Result struct {
	Path     []grid.Coord
	Cost     float64
	Expanded int
	Found    bool
}

// heuristic estimates the remaining cost between two coordinates.
// Manhattan distance times the minimum step cost (1.0) never overestimates
// for 4-directional movement, which keeps the result optimal.
func heuristic(a, b grid.Coord) float64 {
	return float64(a.Manhattan(b))
}

// bookkeeping is the search state retained on the world after a run, used
// by the host-facing overlay rendering.
type bookkeeping struct {
	closed map[grid.Coord]bool
	gScore map[grid.Coord]float64
}

// astar runs the search over g from start to goal. Both endpoints are
// assumed validated (in bounds, passable) by the caller.
func astar(g *grid.Grid, start, goal grid.Coord) (Result, bookkeeping) {
	open := make(frontier, 0, 64)
	heap.Init(&open)

	var seq uint64
	push := func(c grid.Coord, gCost, fCost float64) *pqItem {
		seq++
		item := &pqItem{coord: c, g: gCost, f: fCost, seq: seq}
		heap.Push(&open, item)
		return item
	}

	inOpen := make(map[grid.Coord]*pqItem)
	cameFrom := make(map[grid.Coord]grid.Coord)
	book := bookkeeping{
		closed: make(map[grid.Coord]bool),
		gScore: map[grid.Coord]float64{start: 0},
	}

	inOpen[start] = push(start, 0, heuristic(start, goal))

	expanded := 0
	for open.Len() > 0 {
		current := heap.Pop(&open).(*pqItem)
		delete(inOpen, current.coord)
		if book.closed[current.coord] {
			continue
		}
		book.closed[current.coord] = true
		expanded++

		if current.coord == goal {
			return Result{
				Path:     reconstructPath(cameFrom, goal, start),
				Cost:     current.g,
				Expanded: expanded,
				Found:    true,
			}, book
		}

		for _, n := range g.Neighbors(current.coord) {
			if book.closed[n] {
				continue
			}
			tile, err := g.TileAt(n)
			if err != nil {
				continue
			}
			stepCost := tile.Cost()
			if stepCost < 0 {
				// Negative costs are a programming error; skip the tile
				// rather than corrupt the frontier.
				continue
			}
			tentative := current.g + stepCost
			if prev, seen := book.gScore[n]; seen && tentative >= prev {
				continue
			}
			book.gScore[n] = tentative
			cameFrom[n] = current.coord

			f := tentative + heuristic(n, goal)
			if item, ok := inOpen[n]; ok {
				// Revised g: update in place and re-rank. The item takes a
				// fresh sequence number since this counts as a re-insertion.
				seq++
				item.g = tentative
				item.f = f
				item.seq = seq
				heap.Fix(&open, item.index)
			} else {
				inOpen[n] = push(n, tentative, f)
			}
		}
	}

	return Result{Expanded: expanded, Found: false}, book
}

// reconstructPath rebuilds the start→goal path by walking predecessor
// links backwards, then reversing.
func reconstructPath(cameFrom map[grid.Coord]grid.Coord, goal, start grid.Coord) []grid.Coord {
	path := []grid.Coord{goal}
	current := goal
	for current != start {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
