package game

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/gamemap"
	"dungeon-crawl/internal/system"
)

// MenuResult is the outcome of feeding one input to an item menu.
type MenuResult uint8

const (
	MenuNoResponse MenuResult = iota
	MenuCancel
	MenuSelected
)

// itemMenu resolves a letter against items; 'a' is the first entry.
func itemMenu(items []ecs.EntityID, in Input) (MenuResult, ecs.EntityID) {
	switch in.Kind {
	case InputCancel:
		return MenuCancel, ecs.NilEntity
	case InputLetter:
		idx := int(in.Letter - 'a')
		if idx >= 0 && idx < len(items) {
			return MenuSelected, items[idx]
		}
	}
	return MenuNoResponse, ecs.NilEntity
}

// menuOrder lists the main-menu entries the player can cycle through.
func (g *Game) menuOrder() []MenuSelection {
	if g.hasSave() {
		return []MenuSelection{SelectNewGame, SelectLoadGame, SelectQuit}
	}
	return []MenuSelection{SelectNewGame, SelectQuit}
}

// cycleMenu moves the main-menu highlight one entry up or down.
func (g *Game) cycleMenu(sel MenuSelection, delta int) MenuSelection {
	order := g.menuOrder()
	cur := 0
	for i, s := range order {
		if s == sel {
			cur = i
		}
	}
	n := len(order)
	return order[((cur+delta)%n+n)%n]
}

// MenuEntries returns the main-menu entries in display order.
func (g *Game) MenuEntries() []MenuSelection { return g.menuOrder() }

// MenuItems lists what the open item menu shows, in selection order.
func (g *Game) MenuItems() []ecs.EntityID {
	switch g.state.Kind {
	case StateShowInventory, StateShowDropItem:
		return system.Backpack(g.sim.World, g.sim.Player)
	case StateShowRemoveEquipment:
		return system.EquippedBy(g.sim.World, g.sim.Player)
	}
	return nil
}

// MenuTitle names the open item menu.
func (g *Game) MenuTitle() string {
	switch g.state.Kind {
	case StateShowInventory:
		return "Inventory"
	case StateShowDropItem:
		return "Drop Which Item?"
	case StateShowRemoveEquipment:
		return "Remove Which Item?"
	}
	return ""
}

// ItemName returns the display name of an entity.
func (g *Game) ItemName(id ecs.EntityID) string {
	return component.NameOf(g.sim.World, id)
}

// ValidTargets lists the tiles the open targeting prompt accepts: tiles the
// player sees within the item's range.
func (g *Game) ValidTargets() []gamemap.Point {
	if g.state.Kind != StateShowTargeting {
		return nil
	}
	c := g.sim.World.Get(g.sim.Player, component.CViewshed)
	if c == nil {
		return nil
	}
	var out []gamemap.Point
	for _, p := range c.(component.Viewshed).VisibleTiles {
		if p.Distance(g.sim.PlayerPos) <= float64(g.state.Range) {
			out = append(out, p)
		}
	}
	return out
}

func (g *Game) isValidTarget(p gamemap.Point) bool {
	for _, q := range g.ValidTargets() {
		if q == p {
			return true
		}
	}
	return false
}
