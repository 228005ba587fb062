package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// meleeReach is the distance within which a monster attacks instead of moving.
const meleeReach = 1.5

// MonsterAI lets every monster act once. It does nothing outside the
// monster turn.
//
// A confused monster loses its turn. A monster that sees the player either
// attacks when adjacent or takes one step along the shortest path. Steps
// taken earlier in the same pass are tracked locally so two monsters never
// claim one tile, since the blocking index is only rebuilt afterwards.
func MonsterAI(ctx *Context) {
	if !ctx.MonsterTurn {
		return
	}
	w, m := ctx.World, ctx.Map
	target := ctx.PlayerPos

	vacated := mapset.New[gamemap.Point]()
	claimed := mapset.New[gamemap.Point]()
	blocked := func(p gamemap.Point) bool {
		if claimed.Has(p) {
			return true
		}
		return m.BlockedAt(p.X, p.Y) && !vacated.Has(p)
	}

	for _, id := range w.Query(component.CMonster, component.CViewshed, component.CPosition) {
		if c := w.Get(id, component.CConfusion); c != nil {
			conf := c.(component.Confusion)
			conf.Turns--
			if conf.Turns < 1 {
				w.Remove(id, component.CConfusion)
			} else {
				w.Add(id, conf)
			}
			continue
		}

		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if vs.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		here := gamemap.Pt(pos.X, pos.Y)
		if here.DistanceSq(target) > vs.Range*vs.Range || !vs.Sees(target) {
			continue
		}

		if here.Distance(target) < meleeReach {
			w.Add(id, component.WantsToMelee{Target: ctx.Player})
			continue
		}

		path := m.PathTo(here, target, blocked)
		if len(path) < 2 {
			continue
		}
		next := path[1]
		if next == target {
			continue
		}
		vacated.Put(here)
		claimed.Remove(here)
		claimed.Put(next)
		vacated.Remove(next)

		w.Add(id, component.Position{X: next.X, Y: next.Y})
		vs.Dirty = true
		w.Add(id, vs)
	}
}
