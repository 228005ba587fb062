package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/gamemap"
)

// Visibility recomputes dirty viewsheds. The player's view also refreshes
// the map's visible and revealed flags.
func Visibility(ctx *Context) {
	w, m := ctx.World, ctx.Map
	for _, id := range w.Query(component.CViewshed, component.CPosition) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		vs.Dirty = false
		vs.VisibleTiles = m.FieldOfView(gamemap.Pt(pos.X, pos.Y), vs.Range)
		w.Add(id, vs)

		if !w.Has(id, component.CPlayer) {
			continue
		}
		m.ClearVisible()
		for _, p := range vs.VisibleTiles {
			idx := m.Idx(p.X, p.Y)
			m.Revealed[idx] = true
			m.Visible[idx] = true
		}
	}
}
