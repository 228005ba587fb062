package system

import (
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/gamelog"
	"dungeon-crawl/internal/gamemap"
	"dungeon-crawl/internal/rng"
)

// Context is the shared state every system reads and writes during a pass.
type Context struct {
	World     *ecs.World
	Map       *gamemap.Map
	Player    ecs.EntityID
	PlayerPos gamemap.Point
	Rand      *rng.RNG
	Log       *gamelog.Log

	// MonsterTurn is true only while the monster AI pass may act.
	MonsterTurn bool
	// PlayerDead latches once the death sweep has reported the player.
	PlayerDead bool
	// PlayerHitBy names the last entity that damaged the player.
	PlayerHitBy string
}

// mustBeReady panics when a pass is started without a world, a map or a
// live player.
func (c *Context) mustBeReady() {
	if c.World == nil || c.Map == nil {
		panic("system: context has no world or map")
	}
	if !c.World.Alive(c.Player) {
		panic("system: player entity is not alive")
	}
	if c.Log == nil {
		c.Log = gamelog.New()
	}
}
