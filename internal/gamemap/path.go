package gamemap

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// astar adapts the map to gruid's A* search with 8-way movement.
type astar struct {
	m       *Map
	nb      paths.Neighbors
	goal    gruid.Point
	blocked func(Point) bool
}

func (a *astar) passable(p gruid.Point) bool {
	if !a.m.IsWalkable(p.X, p.Y) {
		return false
	}
	if p == a.goal || a.blocked == nil {
		return true
	}
	return !a.blocked(fromGrid(p))
}

func (a *astar) Neighbors(p gruid.Point) []gruid.Point {
	return a.nb.All(p, a.passable)
}

func (a *astar) Cost(p, q gruid.Point) int { return 1 }

func (a *astar) Estimation(p, q gruid.Point) int {
	return paths.DistanceChebyshev(p, q)
}

// PathTo returns the shortest walkable path from one tile to another,
// including both endpoints, or nil when none exists. blocked marks extra
// obstacles; the destination is always treated as passable.
func (m *Map) PathTo(from, to Point, blocked func(Point) bool) []Point {
	if m.pr == nil {
		m.pr = paths.NewPathRange(gruid.NewRange(0, 0, m.Width, m.Height))
	}
	a := &astar{m: m, goal: to.grid(), blocked: blocked}
	path := m.pr.AstarPath(a, from.grid(), to.grid())
	if path == nil {
		return nil
	}
	out := make([]Point, len(path))
	for i, p := range path {
		out[i] = fromGrid(p)
	}
	return out
}

// BlockedAt reports whether the indexed blocking bitmap marks (x, y).
// Out-of-bounds tiles count as blocked.
func (m *Map) BlockedAt(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Blocked[m.Idx(x, y)]
}
