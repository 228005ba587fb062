package system

import (
	"dungeon-crawl/internal/logger"

	"github.com/sirupsen/logrus"
)

// System is one named pass over the world.
type System struct {
	Name string
	Run  func(*Context)
}

// Pipeline is the fixed order systems run in each pass.
var Pipeline = []System{
	{Name: "visibility", Run: Visibility},
	{Name: "monster_ai", Run: MonsterAI},
	{Name: "map_index", Run: MapIndex},
	{Name: "melee", Run: MeleeCombat},
	{Name: "damage", Run: Damage},
	{Name: "pickup", Run: ItemCollection},
	{Name: "use", Run: ItemUse},
	{Name: "drop", Run: ItemDrop},
	{Name: "remove_equipment", Run: ItemRemove},
}

// RunSystems runs every system once, committing deferred commands after each.
func RunSystems(ctx *Context) {
	ctx.mustBeReady()
	for _, s := range Pipeline {
		s.Run(ctx)
		if n := ctx.World.Maintain(); n > 0 {
			logger.Log.WithFields(logrus.Fields{
				"system":   s.Name,
				"commands": n,
			}).Debug("committed deferred commands")
		}
	}
}
