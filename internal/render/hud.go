package render

import (
	"fmt"

	"dungeon-crawl/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hpBarWidth is the width of the health bar in columns.
const hpBarWidth = 20

// DrawHUD renders the status line and the newest log entries below the map.
func (r *Renderer) DrawHUD(g *game.Game) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	s := g.PlayerStats()
	hpText := fmt.Sprintf(" HP: %d / %d ", s.HP, s.MaxHP)
	col := r.drawText(0, hudY+1, hpText, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	r.drawBar(col, hudY+1, s.HP, s.MaxHP)

	status := fmt.Sprintf("  Power: %d  Defense: %d  Depth: %d", s.Power, s.Defense, g.Map().Depth)
	r.drawText(col+hpBarWidth, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	for i, msg := range g.Log().Last(hudRows - 2) {
		r.drawText(1, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawBar(x, y, value, maxValue int) {
	filled := 0
	if maxValue > 0 {
		filled = max(0, min(hpBarWidth, value*hpBarWidth/maxValue))
	}
	for i := 0; i < hpBarWidth; i++ {
		bg := tcell.ColorMaroon
		if i < filled {
			bg = tcell.ColorRed
		}
		r.screen.SetContent(x+i, y, ' ', nil, tcell.StyleDefault.Background(bg))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}
