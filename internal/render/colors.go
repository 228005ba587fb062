package render

import (
	"dungeon-crawl/assets"
	"dungeon-crawl/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// LevelTiles holds the colors used to draw one dungeon level's terrain.
// Revealed tiles outside the player's view use the Dim colors.
type LevelTiles struct {
	Wall     tcell.Color
	Floor    tcell.Color
	Stairs   tcell.Color
	DimWall  tcell.Color
	DimFloor tcell.Color
}

// TileThemes is indexed by (depth-1) modulo its length.
var TileThemes = []LevelTiles{
	{
		Wall:     tcell.ColorGreen,
		Floor:    tcell.ColorTeal,
		Stairs:   tcell.ColorAqua,
		DimWall:  tcell.ColorGray,
		DimFloor: tcell.ColorDimGray,
	},
	{
		// cold stone
		Wall:     tcell.ColorSteelBlue,
		Floor:    tcell.ColorLightSlateGray,
		Stairs:   tcell.ColorAqua,
		DimWall:  tcell.ColorGray,
		DimFloor: tcell.ColorDimGray,
	},
	{
		Wall:     tcell.ColorOlive,
		Floor:    tcell.ColorDarkKhaki,
		Stairs:   tcell.ColorAqua,
		DimWall:  tcell.ColorGray,
		DimFloor: tcell.ColorDimGray,
	},
	{
		// deep levels
		Wall:     tcell.ColorMaroon,
		Floor:    tcell.ColorRosyBrown,
		Stairs:   tcell.ColorAqua,
		DimWall:  tcell.ColorGray,
		DimFloor: tcell.ColorDimGray,
	},
}

func themeFor(depth int) LevelTiles {
	n := len(TileThemes)
	return TileThemes[((depth-1)%n+n)%n]
}

// tileGlyph returns the glyph and color for a tile; lit is false for tiles
// that are revealed but not currently visible.
func (t LevelTiles) tileGlyph(k gamemap.TileKind, lit bool) (string, tcell.Color) {
	switch k {
	case gamemap.TileWall:
		if lit {
			return assets.GlyphWall, t.Wall
		}
		return assets.GlyphWall, t.DimWall
	case gamemap.TileDownStairs:
		if lit {
			return assets.GlyphStairsDown, t.Stairs
		}
		return assets.GlyphStairsDown, t.DimFloor
	}
	if lit {
		return assets.GlyphFloor, t.Floor
	}
	return assets.GlyphFloor, t.DimFloor
}
