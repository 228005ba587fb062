package system

import "dungeon-crawl/internal/component"

// ItemCollection moves picked-up items from the floor into the collector's
// backpack.
func ItemCollection(ctx *Context) {
	w := ctx.World
	for _, id := range w.Query(component.CWantsToPickUpItem) {
		pick := w.Get(id, component.CWantsToPickUpItem).(component.WantsToPickUpItem)
		if !w.Alive(pick.Item) || !w.Alive(pick.CollectedBy) {
			continue
		}
		w.Remove(pick.Item, component.CPosition)
		w.Add(pick.Item, component.InBackpack{Owner: pick.CollectedBy})
		if pick.CollectedBy == ctx.Player {
			ctx.Log.Addf("You pick up the %s.", component.NameOf(w, pick.Item))
		}
	}
	w.Clear(component.CWantsToPickUpItem)
}

// ItemDrop places dropped items on the dropper's tile.
func ItemDrop(ctx *Context) {
	w := ctx.World
	for _, id := range w.Query(component.CWantsToDropItem, component.CPosition) {
		drop := w.Get(id, component.CWantsToDropItem).(component.WantsToDropItem)
		if !w.Alive(drop.Item) {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		w.Remove(drop.Item, component.CInBackpack)
		w.Remove(drop.Item, component.CEquipped)
		w.Add(drop.Item, component.Position{X: pos.X, Y: pos.Y})
		if id == ctx.Player {
			ctx.Log.Addf("You drop the %s.", component.NameOf(w, drop.Item))
		}
	}
	w.Clear(component.CWantsToDropItem)
}

// ItemRemove moves unequipped items back into the owner's backpack.
func ItemRemove(ctx *Context) {
	w := ctx.World
	for _, id := range w.Query(component.CWantsToRemoveEquipment) {
		rm := w.Get(id, component.CWantsToRemoveEquipment).(component.WantsToRemoveEquipment)
		if !w.Alive(rm.Item) {
			continue
		}
		w.Remove(rm.Item, component.CEquipped)
		w.Add(rm.Item, component.InBackpack{Owner: id})
		if id == ctx.Player {
			ctx.Log.Addf("You unequip the %s.", component.NameOf(w, rm.Item))
		}
	}
	w.Clear(component.CWantsToRemoveEquipment)
}
