package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
)

// PowerBonus sums the melee bonuses of everything owner has equipped.
func PowerBonus(w *ecs.World, owner ecs.EntityID) int {
	total := 0
	for _, id := range w.Query(component.CEquipped, component.CMeleePowerBonus) {
		if w.Get(id, component.CEquipped).(component.Equipped).Owner == owner {
			total += w.Get(id, component.CMeleePowerBonus).(component.MeleePowerBonus).Power
		}
	}
	return total
}

// DefenseBonus sums the defense bonuses of everything owner has equipped.
func DefenseBonus(w *ecs.World, owner ecs.EntityID) int {
	total := 0
	for _, id := range w.Query(component.CEquipped, component.CDefenseBonus) {
		if w.Get(id, component.CEquipped).(component.Equipped).Owner == owner {
			total += w.Get(id, component.CDefenseBonus).(component.DefenseBonus).Defense
		}
	}
	return total
}

// MeleeDamage is the damage attacker deals to defender in one hit, never
// negative.
func MeleeDamage(w *ecs.World, attacker, defender ecs.EntityID) int {
	a := w.Get(attacker, component.CCombatStats).(component.CombatStats)
	d := w.Get(defender, component.CCombatStats).(component.CombatStats)
	return max(0, a.Power+PowerBonus(w, attacker)-(d.Defense+DefenseBonus(w, defender)))
}
