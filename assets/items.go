package assets

import (
	"dungeon-crawl/internal/component"

	"github.com/gdamore/tcell/v2"
)

// ItemDef describes one item template. Zero-valued effect fields are not
// attached to the spawned entity.
type ItemDef struct {
	Name         string
	Glyph        string
	Color        tcell.Color
	Consumable   bool
	Heal         int
	Damage       int
	Range        int
	Radius       int
	Confusion    int
	Slot         component.EquipmentSlot
	PowerBonus   int
	DefenseBonus int
}

var HealthPotion = ItemDef{
	Name: "Health Potion", Glyph: GlyphPotion, Color: tcell.ColorFuchsia,
	Consumable: true, Heal: 8,
}

var MagicMissileScroll = ItemDef{
	Name: "Magic Missile Scroll", Glyph: GlyphScroll, Color: tcell.ColorDarkCyan,
	Consumable: true, Range: 6, Damage: 8,
}

var FireballScroll = ItemDef{
	Name: "Fireball Scroll", Glyph: GlyphScroll, Color: tcell.ColorOrange,
	Consumable: true, Range: 6, Damage: 20, Radius: 3,
}

var ConfusionScroll = ItemDef{
	Name: "Confusion Scroll", Glyph: GlyphScroll, Color: tcell.ColorPink,
	Consumable: true, Range: 6, Confusion: 4,
}

var Dagger = ItemDef{
	Name: "Dagger", Glyph: GlyphDagger, Color: tcell.ColorDarkCyan,
	Slot: component.SlotMelee, PowerBonus: 2,
}

var Shield = ItemDef{
	Name: "Shield", Glyph: GlyphShield, Color: tcell.ColorDarkCyan,
	Slot: component.SlotShield, DefenseBonus: 1,
}

// itemRolls maps a 1d6 roll to the item spawned.
var itemRolls = [6]ItemDef{
	HealthPotion,
	FireballScroll,
	ConfusionScroll,
	MagicMissileScroll,
	Dagger,
	Shield,
}

// ItemForRoll returns the template for a 1d6 roll. Out-of-range rolls fall
// back to a health potion.
func ItemForRoll(roll int) ItemDef {
	if roll < 1 || roll > len(itemRolls) {
		return HealthPotion
	}
	return itemRolls[roll-1]
}
