package game

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/factory"
	"dungeon-crawl/internal/gamemap"
	"dungeon-crawl/internal/generate"
	"dungeon-crawl/internal/logger"
	"dungeon-crawl/internal/system"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// goToNextLevel replaces the level with a deeper one. Only the player and
// what the player carries or wears survive. The player arrives at the first
// room's center and recovers half of max HP.
func (g *Game) goToNextLevel() {
	w := g.sim.World
	player := g.sim.Player

	keep := mapset.New[ecs.EntityID]()
	keep.Put(player)
	for _, id := range system.Backpack(w, player) {
		keep.Put(id)
	}
	for _, id := range system.EquippedBy(w, player) {
		keep.Put(id)
	}
	removed := 0
	for _, id := range w.Entities() {
		if !keep.Has(id) {
			w.DestroyEntity(id)
			removed++
		}
	}

	depth := g.sim.Map.Depth + 1
	gmap := generate.Generate(g.levelConfig(depth))
	for _, room := range gmap.Rooms[1:] {
		factory.SpawnRoom(w, gmap, g.rng, room)
	}
	cx, cy := gmap.Rooms[0].Center()
	w.Add(player, component.Position{X: cx, Y: cy})
	g.sim.Map = gmap
	g.sim.PlayerPos = gamemap.Pt(cx, cy)

	if c := w.Get(player, component.CViewshed); c != nil {
		vs := c.(component.Viewshed)
		vs.Dirty = true
		w.Add(player, vs)
	}
	if c := w.Get(player, component.CCombatStats); c != nil {
		stats := c.(component.CombatStats)
		stats.HP = min(stats.MaxHP, stats.HP+stats.MaxHP/2)
		w.Add(player, stats)
	}

	g.stats.Depth = max(g.stats.Depth, depth)
	g.sim.Log.Add("You descend to the next level, and take a moment to heal.")
	logger.Log.WithFields(logrus.Fields{
		"depth":   depth,
		"removed": removed,
		"rooms":   len(gmap.Rooms),
	}).Info("entered next level")
}
