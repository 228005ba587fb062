package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/logger"
)

// InflictDamage queues amount against target for the next damage pass.
func InflictDamage(ctx *Context, source, target ecs.EntityID, amount int) {
	w := ctx.World
	if !w.Alive(target) || amount <= 0 {
		return
	}
	var sd component.SufferDamage
	if c := w.Get(target, component.CSufferDamage); c != nil {
		sd = c.(component.SufferDamage)
	}
	sd.Amounts = append(sd.Amounts, amount)
	w.Add(target, sd)
	if target == ctx.Player {
		ctx.PlayerHitBy = component.NameOf(w, source)
	}
}

// Damage subtracts all queued damage from hit points.
func Damage(ctx *Context) {
	w := ctx.World
	for _, id := range w.Query(component.CSufferDamage, component.CCombatStats) {
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		stats.HP -= w.Get(id, component.CSufferDamage).(component.SufferDamage).Total()
		w.Add(id, stats)
	}
	w.Clear(component.CSufferDamage)
}

// DeleteTheDead destroys every non-player entity at zero or fewer hit
// points and returns their names. The player is never destroyed; playerDied
// is true only the first time the player is found dead.
func DeleteTheDead(ctx *Context) (killed []string, playerDied bool) {
	w := ctx.World
	for _, id := range w.Query(component.CCombatStats) {
		if w.Get(id, component.CCombatStats).(component.CombatStats).HP >= 1 {
			continue
		}
		if id == ctx.Player || w.Has(id, component.CPlayer) {
			if !ctx.PlayerDead {
				ctx.Log.Add("You are dead")
				ctx.PlayerDead = true
				playerDied = true
			}
			continue
		}
		if w.Has(id, component.CName) {
			name := component.NameOf(w, id)
			ctx.Log.Addf("%s is dead", name)
			killed = append(killed, name)
		}
		w.QueueDestroy(id)
	}
	if n := w.Maintain(); n > 0 {
		logger.Log.WithField("destroyed", n).Debug("removed dead entities")
	}
	return killed, playerDied
}
