package component

import "dungeon-crawl/internal/ecs"

// Item effect capabilities. They are independent and may be combined on
// one item entity.
const (
	CRanged          ecs.ComponentType = 16
	CInflictsDamage  ecs.ComponentType = 17
	CAreaOfEffect    ecs.ComponentType = 18
	CProvidesHealing ecs.ComponentType = 19
	CConfusion       ecs.ComponentType = 20
)

// Ranged items need a target tile within Range of the user.
type Ranged struct {
	Range int `json:"range"`
}

func (Ranged) Type() ecs.ComponentType { return CRanged }

type InflictsDamage struct {
	Damage int `json:"damage"`
}

func (InflictsDamage) Type() ecs.ComponentType { return CInflictsDamage }

type AreaOfEffect struct {
	Radius int `json:"radius"`
}

func (AreaOfEffect) Type() ecs.ComponentType { return CAreaOfEffect }

type ProvidesHealing struct {
	HealAmount int `json:"heal_amount"`
}

func (ProvidesHealing) Type() ecs.ComponentType { return CProvidesHealing }

// Confusion on an item is the number of turns it inflicts; on a creature
// it is the number of turns left to skip.
type Confusion struct {
	Turns int `json:"turns"`
}

func (Confusion) Type() ecs.ComponentType { return CConfusion }
