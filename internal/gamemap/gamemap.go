package gamemap

import (
	"fmt"
	"slices"

	"dungeon-crawl/internal/ecs"

	"codeberg.org/anaseto/gruid/paths"
)

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// NewRect returns the rectangle with top-left (x, y) and the given size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Map holds the tile grid, room list and per-tile state for one dungeon level.
// Blocked and TileContent are derived every turn by map indexing and are not
// persisted.
type Map struct {
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	Depth       int              `json:"depth"`
	Tiles       []TileKind       `json:"tiles"`
	Rooms       []Rect           `json:"rooms"`
	Revealed    []bool           `json:"revealed"`
	Visible     []bool           `json:"visible"`
	Blocked     []bool           `json:"-"`
	TileContent [][]ecs.EntityID `json:"-"`

	pr *paths.PathRange
}

// New creates a Map filled with walls.
func New(width, height, depth int) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gamemap: invalid size %dx%d", width, height))
	}
	n := width * height
	m := &Map{
		Width:    width,
		Height:   height,
		Depth:    depth,
		Tiles:    make([]TileKind, n),
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
	}
	m.ResetIndex()
	return m
}

// Idx converts (x, y) to a flat tile index.
func (m *Map) Idx(x, y int) int {
	return y*m.Width + x
}

// Len returns the number of tiles.
func (m *Map) Len() int { return m.Width * m.Height }

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile kind at (x, y). Panics if out of bounds.
func (m *Map) At(x, y int) TileKind {
	return m.Tiles[m.Idx(x, y)]
}

// Set replaces the tile at (x, y).
func (m *Map) Set(x, y int, k TileKind) {
	m.Tiles[m.Idx(x, y)] = k
}

// IsWalkable returns true when (x, y) is in bounds and not a wall.
func (m *Map) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.At(x, y).Walkable()
}

// IsOpaque returns true when (x, y) is out of bounds or blocks sight.
func (m *Map) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.At(x, y).Opaque()
}

// IsVisible reports whether the player currently sees (x, y).
func (m *Map) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Visible[m.Idx(x, y)]
}

// IsRevealed reports whether the player has ever seen (x, y).
func (m *Map) IsRevealed(x, y int) bool {
	return m.InBounds(x, y) && m.Revealed[m.Idx(x, y)]
}

// ResetIndex allocates empty derived state. Called on creation and after a
// map is decoded from a snapshot.
func (m *Map) ResetIndex() {
	n := m.Len()
	m.Blocked = make([]bool, n)
	m.TileContent = make([][]ecs.EntityID, n)
	if len(m.Revealed) != n {
		m.Revealed = make([]bool, n)
	}
	if len(m.Visible) != n {
		m.Visible = make([]bool, n)
	}
	m.pr = nil
}

// PopulateBlocked resets the blocking bitmap to the walls of the map.
func (m *Map) PopulateBlocked() {
	for i, k := range m.Tiles {
		m.Blocked[i] = !k.Walkable()
	}
}

// ClearContent empties every tile's occupant list.
func (m *Map) ClearContent() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ClearVisible marks every tile as not currently visible.
func (m *Map) ClearVisible() {
	clear(m.Visible)
}

// Content returns the entities indexed on (x, y).
func (m *Map) Content(x, y int) []ecs.EntityID {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.TileContent[m.Idx(x, y)]
}

// Clone returns a deep copy of the persistent parts of the map.
func (m *Map) Clone() *Map {
	c := &Map{
		Width:    m.Width,
		Height:   m.Height,
		Depth:    m.Depth,
		Tiles:    slices.Clone(m.Tiles),
		Rooms:    slices.Clone(m.Rooms),
		Revealed: slices.Clone(m.Revealed),
		Visible:  slices.Clone(m.Visible),
	}
	c.ResetIndex()
	return c
}

// Validate reports an error when decoded data does not describe a map.
func (m *Map) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid map size %dx%d", m.Width, m.Height)
	}
	n := m.Width * m.Height
	if len(m.Tiles) != n {
		return fmt.Errorf("tile count %d does not match %dx%d", len(m.Tiles), m.Width, m.Height)
	}
	if len(m.Revealed) != n || len(m.Visible) != n {
		return fmt.Errorf("visibility layers do not match %dx%d", m.Width, m.Height)
	}
	return nil
}
