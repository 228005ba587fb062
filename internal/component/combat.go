package component

import "dungeon-crawl/internal/ecs"

const (
	CCombatStats  ecs.ComponentType = 8
	CSufferDamage ecs.ComponentType = 9
	CWantsToMelee ecs.ComponentType = 10
)

// CombatStats may hold a negative HP between the damage pass and the death
// sweep.
type CombatStats struct {
	MaxHP   int `json:"max_hp"`
	HP      int `json:"hp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

func (CombatStats) Type() ecs.ComponentType { return CCombatStats }

// SufferDamage accumulates every hit an entity takes in one turn.
type SufferDamage struct {
	Amounts []int `json:"amounts"`
}

func (SufferDamage) Type() ecs.ComponentType { return CSufferDamage }

// Total sums the pending amounts.
func (s SufferDamage) Total() int {
	total := 0
	for _, a := range s.Amounts {
		total += a
	}
	return total
}

// WantsToMelee is an attack intent placed on the attacker.
type WantsToMelee struct {
	Target ecs.EntityID `json:"target"`
}

func (WantsToMelee) Type() ecs.ComponentType { return CWantsToMelee }
