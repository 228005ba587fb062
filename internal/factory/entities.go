package factory

import (
	"dungeon-crawl/assets"
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the player entity at (x, y). The player does not block
// its tile so monsters can path onto it as a goal.
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	def := assets.PlayerDef
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     def.Color,
		BGColor:     tcell.ColorBlack,
		RenderOrder: assets.OrderPlayer,
	})
	w.Add(id, component.Player{})
	w.Add(id, component.Viewshed{Range: def.ViewRange, Dirty: true})
	w.Add(id, component.Name{Value: def.Name})
	w.Add(id, component.CombatStats{MaxHP: def.MaxHP, HP: def.MaxHP, Defense: def.Defense, Power: def.Power})
	return id
}

// NewMonster creates a hostile from a creature template.
func NewMonster(w *ecs.World, def assets.CreatureDef, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     def.Color,
		BGColor:     tcell.ColorBlack,
		RenderOrder: assets.OrderMonster,
	})
	w.Add(id, component.Viewshed{Range: def.ViewRange, Dirty: true})
	w.Add(id, component.Monster{})
	w.Add(id, component.Name{Value: def.Name})
	w.Add(id, component.BlocksTile{})
	w.Add(id, component.CombatStats{MaxHP: def.MaxHP, HP: def.MaxHP, Defense: def.Defense, Power: def.Power})
	return id
}

// NewItem creates an item lying on the floor at (x, y). Only the effects
// set in def are attached.
func NewItem(w *ecs.World, def assets.ItemDef, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	addItemComponents(w, id, def)
	return id
}

// NewItemInBackpack creates an item already carried by owner.
func NewItemInBackpack(w *ecs.World, def assets.ItemDef, owner ecs.EntityID) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.InBackpack{Owner: owner})
	addItemComponents(w, id, def)
	return id
}

func addItemComponents(w *ecs.World, id ecs.EntityID, def assets.ItemDef) {
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     def.Color,
		BGColor:     tcell.ColorBlack,
		RenderOrder: assets.OrderItem,
	})
	w.Add(id, component.Name{Value: def.Name})
	w.Add(id, component.Item{})
	if def.Consumable {
		w.Add(id, component.Consumable{})
	}
	if def.Heal > 0 {
		w.Add(id, component.ProvidesHealing{HealAmount: def.Heal})
	}
	if def.Range > 0 {
		w.Add(id, component.Ranged{Range: def.Range})
	}
	if def.Damage > 0 {
		w.Add(id, component.InflictsDamage{Damage: def.Damage})
	}
	if def.Radius > 0 {
		w.Add(id, component.AreaOfEffect{Radius: def.Radius})
	}
	if def.Confusion > 0 {
		w.Add(id, component.Confusion{Turns: def.Confusion})
	}
	if def.Slot != 0 {
		w.Add(id, component.Equippable{Slot: def.Slot})
	}
	if def.PowerBonus != 0 {
		w.Add(id, component.MeleePowerBonus{Power: def.PowerBonus})
	}
	if def.DefenseBonus != 0 {
		w.Add(id, component.DefenseBonus{Defense: def.DefenseBonus})
	}
}
