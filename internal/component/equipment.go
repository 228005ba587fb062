package component

import "dungeon-crawl/internal/ecs"

const (
	CEquippable      ecs.ComponentType = 13
	CEquipped        ecs.ComponentType = 14
	CInBackpack      ecs.ComponentType = 15
	CMeleePowerBonus ecs.ComponentType = 25
	CDefenseBonus    ecs.ComponentType = 26
)

// EquipmentSlot is where an equippable item is worn.
type EquipmentSlot uint8

const (
	SlotMelee EquipmentSlot = iota + 1
	SlotShield
)

func (s EquipmentSlot) String() string {
	switch s {
	case SlotMelee:
		return "melee"
	case SlotShield:
		return "shield"
	}
	return "none"
}

type Equippable struct {
	Slot EquipmentSlot `json:"slot"`
}

func (Equippable) Type() ecs.ComponentType { return CEquippable }

// Equipped marks an item worn by Owner. At most one item per (Owner, Slot).
type Equipped struct {
	Owner ecs.EntityID  `json:"owner"`
	Slot  EquipmentSlot `json:"slot"`
}

func (Equipped) Type() ecs.ComponentType { return CEquipped }

// InBackpack marks an item carried by Owner. Never combined with Position
// or Equipped.
type InBackpack struct {
	Owner ecs.EntityID `json:"owner"`
}

func (InBackpack) Type() ecs.ComponentType { return CInBackpack }

// MeleePowerBonus adds to the owner's power while the item is equipped.
type MeleePowerBonus struct {
	Power int `json:"power"`
}

func (MeleePowerBonus) Type() ecs.ComponentType { return CMeleePowerBonus }

// DefenseBonus adds to the owner's defense while the item is equipped.
type DefenseBonus struct {
	Defense int `json:"defense"`
}

func (DefenseBonus) Type() ecs.ComponentType { return CDefenseBonus }
