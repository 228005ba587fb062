package render

import "dungeon-crawl/internal/gamemap"

// Camera translates between map coordinates and screen coordinates.
// Every map tile is one terminal column wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera of the given viewport size looking at (0,0).
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Center puts map position (cx, cy) in the middle of the view, then clamps
// the offset so a map that fits on screen never scrolls.
func (c *Camera) Center(cx, cy, mapW, mapH int) {
	c.OffsetX = clampOffset(cx-c.ViewWidth/2, mapW, c.ViewWidth)
	c.OffsetY = clampOffset(cy-c.ViewHeight/2, mapH, c.ViewHeight)
}

func clampOffset(off, size, view int) int {
	if size <= view {
		return 0
	}
	return max(0, min(off, size-view))
}

// WorldToScreen converts map (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to map coordinates. ok is false
// outside the viewport.
func (c *Camera) ScreenToWorld(sx, sy int) (p gamemap.Point, ok bool) {
	if sx < 0 || sx >= c.ViewWidth || sy < 0 || sy >= c.ViewHeight {
		return gamemap.Point{}, false
	}
	return gamemap.Pt(sx+c.OffsetX, sy+c.OffsetY), true
}
