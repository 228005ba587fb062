package system

import "dungeon-crawl/internal/component"

// MapIndex rebuilds the blocking bitmap and per-tile occupant lists from
// the walls and every positioned entity.
func MapIndex(ctx *Context) {
	w, m := ctx.World, ctx.Map
	m.PopulateBlocked()
	m.ClearContent()
	for _, id := range w.Query(component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !m.InBounds(pos.X, pos.Y) {
			continue
		}
		idx := m.Idx(pos.X, pos.Y)
		if w.Has(id, component.CBlocksTile) {
			m.Blocked[idx] = true
		}
		m.TileContent[idx] = append(m.TileContent[idx], id)
	}
}
