package world

import "github.com/mkostin/pathgrid/internal/grid"

// pqItem is one frontier entry. seq records the insertion order so that
// nodes with equal f expand in the order they were discovered.
type pqItem struct {
	coord grid.Coord
	g     float64
	f     float64
	seq   uint64
	index int
}

// frontier is a container/heap priority queue over *pqItem ordered by
// f-cost, with insertion-order tie-breaking.
type frontier []*pqItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}
