package gamemap

import "testing"

// openMap creates a map whose interior is floor, surrounded by a wall border.
func openMap(w, h int) *Map {
	m := New(w, h, 1)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, TileFloor)
		}
	}
	return m
}

func TestInBounds(t *testing.T) {
	m := New(10, 8, 1)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIdxIsRowMajor(t *testing.T) {
	m := New(80, 43, 1)
	if got := m.Idx(3, 2); got != 2*80+3 {
		t.Fatalf("Idx(3,2) = %d; want %d", got, 2*80+3)
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5, 1)
	// all walls initially
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	m.Set(2, 2, TileFloor)
	if !m.IsWalkable(2, 2) {
		t.Error("floor tile should be walkable")
	}
	m.Set(3, 3, TileDownStairs)
	if !m.IsWalkable(3, 3) {
		t.Error("stairs should be walkable")
	}
	// out of bounds
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestNewRect(t *testing.T) {
	r := NewRect(3, 4, 6, 8)
	if r != (Rect{3, 4, 9, 12}) {
		t.Fatalf("NewRect = %+v", r)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
	edge := Rect{4, 0, 8, 4}
	if !a.Intersects(edge) {
		t.Error("shared edge counts as intersection")
	}
}

func TestPopulateBlockedAndContent(t *testing.T) {
	m := openMap(6, 6)
	m.PopulateBlocked()
	if !m.BlockedAt(0, 0) {
		t.Error("border wall should be blocked")
	}
	if m.BlockedAt(2, 2) {
		t.Error("floor should not be blocked")
	}
	if !m.BlockedAt(-1, 2) {
		t.Error("out of bounds should count as blocked")
	}

	idx := m.Idx(2, 2)
	m.TileContent[idx] = append(m.TileContent[idx], 5, 6)
	if got := m.Content(2, 2); len(got) != 2 {
		t.Fatalf("Content = %v", got)
	}
	m.ClearContent()
	if got := m.Content(2, 2); len(got) != 0 {
		t.Fatalf("Content after clear = %v", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := openMap(6, 6)
	m.Rooms = []Rect{{1, 1, 3, 3}}
	m.Revealed[7] = true
	c := m.Clone()

	m.Set(2, 2, TileWall)
	m.Revealed[7] = false
	m.Rooms[0].X1 = 9

	if c.At(2, 2) != TileFloor {
		t.Error("clone tiles share storage with original")
	}
	if !c.Revealed[7] {
		t.Error("clone revealed shares storage with original")
	}
	if c.Rooms[0].X1 != 1 {
		t.Error("clone rooms share storage with original")
	}
	if len(c.TileContent) != c.Len() {
		t.Error("clone should have empty tile content allocated")
	}
}

func TestValidate(t *testing.T) {
	m := openMap(5, 5)
	if err := m.Validate(); err != nil {
		t.Fatalf("valid map: %v", err)
	}
	m.Tiles = m.Tiles[:3]
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for truncated tiles")
	}
	if err := (&Map{}).Validate(); err == nil {
		t.Fatal("expected error for zero-size map")
	}
}
