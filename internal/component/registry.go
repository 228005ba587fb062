package component

import (
	"encoding/json"
	"fmt"
	"slices"

	"dungeon-crawl/internal/ecs"
)

type codec struct {
	name   string
	decode func(json.RawMessage) (ecs.Component, error)
}

func decodeAs[T ecs.Component](raw json.RawMessage) (ecs.Component, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// registry lists every persisted component. Keys in a snapshot are the
// names, so type numbers may change without breaking saves.
var registry = map[ecs.ComponentType]codec{
	CPosition:               {"position", decodeAs[Position]},
	CRenderable:             {"renderable", decodeAs[Renderable]},
	CPlayer:                 {"player", decodeAs[Player]},
	CMonster:                {"monster", decodeAs[Monster]},
	CViewshed:               {"viewshed", decodeAs[Viewshed]},
	CName:                   {"name", decodeAs[Name]},
	CBlocksTile:             {"blocks_tile", decodeAs[BlocksTile]},
	CCombatStats:            {"combat_stats", decodeAs[CombatStats]},
	CSufferDamage:           {"suffer_damage", decodeAs[SufferDamage]},
	CWantsToMelee:           {"wants_to_melee", decodeAs[WantsToMelee]},
	CItem:                   {"item", decodeAs[Item]},
	CConsumable:             {"consumable", decodeAs[Consumable]},
	CEquippable:             {"equippable", decodeAs[Equippable]},
	CEquipped:               {"equipped", decodeAs[Equipped]},
	CInBackpack:             {"in_backpack", decodeAs[InBackpack]},
	CRanged:                 {"ranged", decodeAs[Ranged]},
	CInflictsDamage:         {"inflicts_damage", decodeAs[InflictsDamage]},
	CAreaOfEffect:           {"area_of_effect", decodeAs[AreaOfEffect]},
	CProvidesHealing:        {"provides_healing", decodeAs[ProvidesHealing]},
	CConfusion:              {"confusion", decodeAs[Confusion]},
	CWantsToPickUpItem:      {"wants_to_pick_up_item", decodeAs[WantsToPickUpItem]},
	CWantsToUseItem:         {"wants_to_use_item", decodeAs[WantsToUseItem]},
	CWantsToDropItem:        {"wants_to_drop_item", decodeAs[WantsToDropItem]},
	CWantsToRemoveEquipment: {"wants_to_remove_equipment", decodeAs[WantsToRemoveEquipment]},
	CMeleePowerBonus:        {"melee_power_bonus", decodeAs[MeleePowerBonus]},
	CDefenseBonus:           {"defense_bonus", decodeAs[DefenseBonus]},
	CSerializationHelper:    {"serialization_helper", decodeAs[SerializationHelper]},
}

var byName = func() map[string]ecs.ComponentType {
	m := make(map[string]ecs.ComponentType, len(registry))
	for t, c := range registry {
		m[c.name] = t
	}
	return m
}()

// TypeName returns the persisted name of a component type.
func TypeName(t ecs.ComponentType) (string, bool) {
	c, ok := registry[t]
	return c.name, ok
}

// Decode rebuilds a component from its persisted name and JSON body.
func Decode(name string, raw json.RawMessage) (ecs.Component, error) {
	t, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown component %q", name)
	}
	c, err := registry[t].decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return c, nil
}

// Types returns every registered component type in ascending order.
func Types() []ecs.ComponentType {
	out := make([]ecs.ComponentType, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
