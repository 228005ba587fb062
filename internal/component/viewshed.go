package component

import (
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/gamemap"
)

const CViewshed ecs.ComponentType = 5

// Viewshed is the set of tiles an entity can currently see. Dirty requests a
// recompute on the next visibility pass.
type Viewshed struct {
	VisibleTiles []gamemap.Point `json:"visible_tiles"`
	Range        int             `json:"range"`
	Dirty        bool            `json:"dirty"`
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }

// Sees reports whether p is in the visible set.
func (v Viewshed) Sees(p gamemap.Point) bool {
	for _, q := range v.VisibleTiles {
		if q == p {
			return true
		}
	}
	return false
}
