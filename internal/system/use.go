package system

import (
	"slices"

	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// ItemUse applies every use intent. An item's effects are applied in the
// order equip, heal, damage, confuse. A consumable is destroyed once any of
// its effects landed.
func ItemUse(ctx *Context) {
	w := ctx.World
	for _, user := range w.Query(component.CWantsToUseItem) {
		use := w.Get(user, component.CWantsToUseItem).(component.WantsToUseItem)
		if !w.Alive(use.Item) {
			continue
		}
		item := use.Item
		itemName := component.NameOf(w, item)
		targets := useTargets(ctx, user, use)
		used := false

		if c := w.Get(item, component.CEquippable); c != nil && len(targets) > 0 {
			equip(ctx, targets[0], item, c.(component.Equippable).Slot)
		}

		if c := w.Get(item, component.CProvidesHealing); c != nil {
			heal := c.(component.ProvidesHealing).HealAmount
			for _, t := range targets {
				sc := w.Get(t, component.CCombatStats)
				if sc == nil {
					continue
				}
				stats := sc.(component.CombatStats)
				stats.HP = min(stats.MaxHP, stats.HP+heal)
				w.Add(t, stats)
				if user == ctx.Player {
					ctx.Log.Addf("You use the %s, healing for %d.", itemName, heal)
				}
				used = true
			}
		}

		if c := w.Get(item, component.CInflictsDamage); c != nil {
			damage := c.(component.InflictsDamage).Damage
			for _, t := range targets {
				if !w.Has(t, component.CCombatStats) {
					continue
				}
				InflictDamage(ctx, user, t, damage)
				if user == ctx.Player {
					ctx.Log.Addf("You use the %s on %s, dealing %d damage.", itemName, component.NameOf(w, t), damage)
				}
				used = true
			}
		}

		if c := w.Get(item, component.CConfusion); c != nil {
			turns := c.(component.Confusion).Turns
			for _, t := range targets {
				if !w.Has(t, component.CCombatStats) {
					continue
				}
				w.QueueAdd(t, component.Confusion{Turns: turns})
				if user == ctx.Player {
					ctx.Log.Addf("You use the %s on %s, confusing them.", itemName, component.NameOf(w, t))
				}
				used = true
			}
		}

		if used && w.Has(item, component.CConsumable) {
			w.QueueDestroy(item)
		}
	}
	w.Clear(component.CWantsToUseItem)
}

// useTargets resolves who an item affects: the user when untargeted, the
// occupants of the target tile, or everything inside the blast when the
// item has an area of effect.
func useTargets(ctx *Context, user ecs.EntityID, use component.WantsToUseItem) []ecs.EntityID {
	if use.Target == nil {
		return []ecs.EntityID{user}
	}
	w, m := ctx.World, ctx.Map
	t := *use.Target

	c := w.Get(use.Item, component.CAreaOfEffect)
	if c == nil {
		if !m.InBounds(t.X, t.Y) {
			return nil
		}
		return slices.Clone(m.Content(t.X, t.Y))
	}

	seen := mapset.New[ecs.EntityID]()
	var targets []ecs.EntityID
	for _, p := range m.FieldOfView(gamemap.Pt(t.X, t.Y), c.(component.AreaOfEffect).Radius) {
		if p.X <= 0 || p.X >= m.Width-1 || p.Y <= 0 || p.Y >= m.Height-1 {
			continue
		}
		for _, id := range m.Content(p.X, p.Y) {
			if seen.Has(id) {
				continue
			}
			seen.Put(id)
			targets = append(targets, id)
		}
	}
	return targets
}

// equip wears item on target, sending whatever held the same slot back to
// the target's backpack.
func equip(ctx *Context, target, item ecs.EntityID, slot component.EquipmentSlot) {
	w := ctx.World
	for _, other := range w.Query(component.CEquipped) {
		if other == item {
			continue
		}
		eq := w.Get(other, component.CEquipped).(component.Equipped)
		if eq.Owner != target || eq.Slot != slot {
			continue
		}
		w.Remove(other, component.CEquipped)
		w.Add(other, component.InBackpack{Owner: target})
		if target == ctx.Player {
			ctx.Log.Addf("You unequip the %s.", component.NameOf(w, other))
		}
	}
	w.Remove(item, component.CInBackpack)
	w.Add(item, component.Equipped{Owner: target, Slot: slot})
	if target == ctx.Player {
		ctx.Log.Addf("You equip the %s.", component.NameOf(w, item))
	}
}
