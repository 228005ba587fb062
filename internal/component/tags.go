package component

import "dungeon-crawl/internal/ecs"

const (
	CPlayer     ecs.ComponentType = 3
	CMonster    ecs.ComponentType = 4
	CBlocksTile ecs.ComponentType = 7
	CItem       ecs.ComponentType = 11
	CConsumable ecs.ComponentType = 12
)

// Player marks the player-controlled entity.
type Player struct{}

func (Player) Type() ecs.ComponentType { return CPlayer }

// Monster marks a hostile that acts during the monster turn.
type Monster struct{}

func (Monster) Type() ecs.ComponentType { return CMonster }

// BlocksTile marks an entity that occupies its tile.
type BlocksTile struct{}

func (BlocksTile) Type() ecs.ComponentType { return CBlocksTile }

// Item marks an entity that can be picked up.
type Item struct{}

func (Item) Type() ecs.ComponentType { return CItem }

// Consumable marks an item destroyed once one of its effects applies.
type Consumable struct{}

func (Consumable) Type() ecs.ComponentType { return CConsumable }
