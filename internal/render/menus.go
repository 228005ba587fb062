package render

import (
	"fmt"
	"slices"

	"dungeon-crawl/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func (r *Renderer) centered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText(max(0, (w-runewidth.StringWidth(text))/2), y, text, style)
}

func (r *Renderer) drawMainMenu(g *game.Game) {
	_, h := r.screen.Size()
	y := max(0, h/2-4)
	r.centered(y, "Dungeon Crawl", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	r.centered(y+1, "Use Up/Down and Enter", tcell.StyleDefault.Foreground(tcell.ColorGray))

	sel := g.State().Selection
	for i, entry := range g.MenuEntries() {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if entry == sel {
			style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
		}
		r.centered(y+3+i, entry.String(), style)
	}
}

// drawItemMenu draws a lettered box listing the open menu's items.
func (r *Renderer) drawItemMenu(g *game.Game) {
	items := g.MenuItems()
	title := g.MenuTitle()
	footer := "ESCAPE to cancel"

	width := max(runewidth.StringWidth(title), runewidth.StringWidth(footer)) + 4
	lines := make([]string, len(items))
	for i, id := range items {
		lines[i] = fmt.Sprintf("(%c) %s", 'a'+rune(i), g.ItemName(id))
		width = max(width, runewidth.StringWidth(lines[i])+4)
	}

	_, h := r.screen.Size()
	top := max(0, (h-hudRows-len(items))/2-1)
	left := 15
	frame := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	r.drawBox(left, top, width, len(items)+2, frame)
	r.drawText(left+2, top, title, frame.Foreground(tcell.ColorYellow))
	r.drawText(left+2, top+len(items)+1, footer, frame.Foreground(tcell.ColorYellow))
	for i, line := range lines {
		r.drawText(left+2, top+1+i, line, frame)
	}
}

func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			ch := ' '
			switch {
			case row == 0 || row == h-1:
				ch = '─'
			case col == 0 || col == w-1:
				ch = '│'
			}
			r.screen.SetContent(x+col, y+row, ch, nil, style)
		}
	}
}

// drawGameOver shows the finished run's summary.
func (r *Renderer) drawGameOver(g *game.Game) {
	_, h := r.screen.Size()
	stats := g.Stats()
	y := max(0, h/2-6)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)

	r.centered(y, "Your journey has ended!", red)
	r.centered(y+2, fmt.Sprintf("Slain by: %s", stats.CauseOfDeath), white)
	r.centered(y+3, fmt.Sprintf("Deepest level: %d   Turns: %d", stats.Depth, stats.Turns), white)

	names := make([]string, 0, len(stats.Kills))
	for name := range stats.Kills {
		names = append(names, name)
	}
	slices.Sort(names)
	row := y + 5
	for _, name := range names {
		r.centered(row, fmt.Sprintf("%s x%d", name, stats.Kills[name]), white)
		row++
	}
	r.centered(row+1, "Press any key to return to the menu.", gray)
}
