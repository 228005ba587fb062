package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/gamemap"
)

// MoveResult describes the outcome of TryMovePlayer.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, blocking entity or out of bounds
	MoveAttack                    // bumped something that fights back
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveAttack:
		return "attack"
	}
	return "unknown"
}

// SpendsTurn reports whether the result ends the player's turn.
func (r MoveResult) SpendsTurn() bool { return r != MoveBlocked }

// TryMovePlayer moves the player by (dx, dy). Bumping a combatant queues a
// melee attack instead.
func TryMovePlayer(ctx *Context, dx, dy int) MoveResult {
	w, m := ctx.World, ctx.Map
	pc := w.Get(ctx.Player, component.CPosition)
	if pc == nil {
		return MoveBlocked
	}
	pos := pc.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy
	if !m.InBounds(nx, ny) {
		return MoveBlocked
	}

	for _, id := range m.Content(nx, ny) {
		if id == ctx.Player || !w.Has(id, component.CCombatStats) {
			continue
		}
		w.Add(ctx.Player, component.WantsToMelee{Target: id})
		return MoveAttack
	}

	if !m.IsWalkable(nx, ny) || m.BlockedAt(nx, ny) {
		return MoveBlocked
	}
	w.Add(ctx.Player, component.Position{X: nx, Y: ny})
	if c := w.Get(ctx.Player, component.CViewshed); c != nil {
		vs := c.(component.Viewshed)
		vs.Dirty = true
		w.Add(ctx.Player, vs)
	}
	ctx.PlayerPos = gamemap.Pt(nx, ny)
	return MoveOK
}

// PickUp queues picking up the first item on the player's tile. It reports
// whether there was anything to pick up.
func PickUp(ctx *Context) bool {
	w := ctx.World
	pos := ctx.PlayerPos
	for _, id := range w.Query(component.CItem, component.CPosition) {
		p := w.Get(id, component.CPosition).(component.Position)
		if p.X == pos.X && p.Y == pos.Y {
			w.Add(ctx.Player, component.WantsToPickUpItem{CollectedBy: ctx.Player, Item: id})
			return true
		}
	}
	ctx.Log.Add("There is nothing here to pick up.")
	return false
}

// OnStairs reports whether the player stands on a down staircase.
func OnStairs(ctx *Context) bool {
	return ctx.Map.At(ctx.PlayerPos.X, ctx.PlayerPos.Y) == gamemap.TileDownStairs
}

// TryDescend reports whether the player may take the stairs, logging a
// message when not.
func TryDescend(ctx *Context) bool {
	if OnStairs(ctx) {
		return true
	}
	ctx.Log.Add("There is no way down from here.")
	return false
}

// UseItem queues using item, optionally on a target tile.
func UseItem(ctx *Context, item ecs.EntityID, target *gamemap.Point) {
	ctx.World.Add(ctx.Player, component.WantsToUseItem{Item: item, Target: target})
}

// DropItem queues dropping item on the player's tile.
func DropItem(ctx *Context, item ecs.EntityID) {
	ctx.World.Add(ctx.Player, component.WantsToDropItem{Item: item})
}

// RemoveEquipment queues moving a worn item back into the backpack.
func RemoveEquipment(ctx *Context, item ecs.EntityID) {
	ctx.World.Add(ctx.Player, component.WantsToRemoveEquipment{Item: item})
}

// Backpack lists the items owner carries, in entity order.
func Backpack(w *ecs.World, owner ecs.EntityID) []ecs.EntityID {
	var items []ecs.EntityID
	for _, id := range w.Query(component.CInBackpack) {
		if w.Get(id, component.CInBackpack).(component.InBackpack).Owner == owner {
			items = append(items, id)
		}
	}
	return items
}

// EquippedBy lists the items owner wears, in entity order.
func EquippedBy(w *ecs.World, owner ecs.EntityID) []ecs.EntityID {
	var items []ecs.EntityID
	for _, id := range w.Query(component.CEquipped) {
		if w.Get(id, component.CEquipped).(component.Equipped).Owner == owner {
			items = append(items, id)
		}
	}
	return items
}
