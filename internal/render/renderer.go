package render

import (
	"dungeon-crawl/assets"
	"dungeon-crawl/internal/game"
	"dungeon-crawl/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved for the HUD below the map.
const hudRows = 7

// Renderer draws a game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	cursor gamemap.Point
	hover  bool
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0)}
	r.Resize()
	return r
}

// Resize fits the map viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(0, h-hudRows)
}

// ScreenToMap converts a screen cell to the map tile under it.
func (r *Renderer) ScreenToMap(sx, sy int) (gamemap.Point, bool) {
	return r.camera.ScreenToWorld(sx, sy)
}

// SetCursor records the map tile under the mouse for the targeting prompt.
func (r *Renderer) SetCursor(p gamemap.Point, ok bool) {
	r.cursor, r.hover = p, ok
}

// Draw renders the screen for the game's current run state.
func (r *Renderer) Draw(g *game.Game) {
	r.screen.Clear()
	switch g.State().Kind {
	case game.StateMainMenu:
		r.drawMainMenu(g)
	case game.StateGameOver:
		r.drawGameOver(g)
	default:
		pos := g.PlayerPos()
		r.camera.Center(pos.X, pos.Y, g.Map().Width, g.Map().Height)
		r.drawMap(g.Map())
		r.drawEntities(g)
		r.DrawHUD(g)
		switch g.State().Kind {
		case game.StateShowInventory, game.StateShowDropItem, game.StateShowRemoveEquipment:
			r.drawItemMenu(g)
		case game.StateShowTargeting:
			r.drawTargets(g)
		}
	}
	r.screen.Show()
}

// drawMap renders revealed tiles, lit or dim depending on visibility.
func (r *Renderer) drawMap(m *gamemap.Map) {
	theme := themeFor(m.Depth)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.IsRevealed(x, y) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph, fg := theme.tileGlyph(m.At(x, y), m.IsVisible(x, y))
			r.putGlyph(sx, sy, glyph, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
		}
	}
}

// drawEntities paints the draw list in order, so the lowest render order
// ends up on top.
func (r *Renderer) drawEntities(g *game.Game) {
	for _, d := range g.DrawList() {
		sx, sy, onScreen := r.camera.WorldToScreen(d.Pos.X, d.Pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(d.Renderable.FGColor).Background(d.Renderable.BGColor)
		r.putGlyph(sx, sy, d.Renderable.Glyph, style)
	}
}

// drawTargets highlights the tiles the targeting prompt accepts.
func (r *Renderer) drawTargets(g *game.Game) {
	for _, p := range g.ValidTargets() {
		sx, sy, onScreen := r.camera.WorldToScreen(p.X, p.Y)
		if !onScreen {
			continue
		}
		mainc, combc, style, _ := r.screen.GetContent(sx, sy)
		r.screen.SetContent(sx, sy, mainc, combc, style.Background(tcell.ColorBlue))
	}
	if r.hover {
		if sx, sy, onScreen := r.camera.WorldToScreen(r.cursor.X, r.cursor.Y); onScreen {
			r.putGlyph(sx, sy, assets.GlyphTargetCursor, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow))
		}
	}
	r.drawText(0, 0, "Select Target (click a tile, Escape to cancel)", tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

// putGlyph draws a single glyph at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
