package assets

import "github.com/gdamore/tcell/v2"

// Glyphs used for entities.
const (
	GlyphPlayer       = "@"
	GlyphOrc          = "o"
	GlyphGoblin       = "g"
	GlyphPotion       = "¡"
	GlyphScroll       = ")"
	GlyphDagger       = "/"
	GlyphShield       = "("
	GlyphWall         = "#"
	GlyphFloor        = "."
	GlyphStairsDown   = ">"
	GlyphTargetCursor = "X"
)

// Render orders: lower is drawn on top.
const (
	OrderPlayer  = 0
	OrderMonster = 1
	OrderItem    = 2
)

// CreatureDef holds the canonical stats of the player or a monster.
type CreatureDef struct {
	Name      string
	Glyph     string
	Color     tcell.Color
	MaxHP     int
	Defense   int
	Power     int
	ViewRange int
}

var PlayerDef = CreatureDef{
	Name: "Player", Glyph: GlyphPlayer, Color: tcell.ColorYellow,
	MaxHP: 30, Defense: 2, Power: 5, ViewRange: 8,
}

var Orc = CreatureDef{
	Name: "Orc", Glyph: GlyphOrc, Color: tcell.ColorRed,
	MaxHP: 16, Defense: 1, Power: 4, ViewRange: 8,
}

var Goblin = CreatureDef{
	Name: "Goblin", Glyph: GlyphGoblin, Color: tcell.ColorRed,
	MaxHP: 16, Defense: 1, Power: 4, ViewRange: 8,
}

// MonsterForRoll picks the monster for a 1d3 roll: a 1 is an orc.
func MonsterForRoll(roll int) CreatureDef {
	if roll == 1 {
		return Orc
	}
	return Goblin
}

// Per-room spawn caps. Counts are rolled as 1d(max+2)-3, so most rooms
// hold fewer.
const (
	MaxMonsters = 4
	MaxItems    = 2
)
