package system

import "dungeon-crawl/internal/component"

// MeleeCombat resolves every attack intent. Dead attackers and targets that
// are gone or already dead are skipped. All intents are cleared afterwards.
func MeleeCombat(ctx *Context) {
	w := ctx.World
	for _, id := range w.Query(component.CWantsToMelee, component.CCombatStats) {
		wants := w.Get(id, component.CWantsToMelee).(component.WantsToMelee)
		if w.Get(id, component.CCombatStats).(component.CombatStats).HP <= 0 {
			continue
		}
		tc := w.Get(wants.Target, component.CCombatStats)
		if tc == nil || tc.(component.CombatStats).HP <= 0 {
			continue
		}

		attacker := component.NameOf(w, id)
		victim := component.NameOf(w, wants.Target)
		damage := MeleeDamage(w, id, wants.Target)
		if damage == 0 {
			ctx.Log.Addf("%s is unable to hurt %s", attacker, victim)
			continue
		}
		ctx.Log.Addf("%s hits %s, for %d hp.", attacker, victim, damage)
		InflictDamage(ctx, id, wants.Target, damage)
	}
	w.Clear(component.CWantsToMelee)
}
