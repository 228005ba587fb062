// Package term runs the game in a terminal: it draws each frame and feeds
// decoded key and mouse events to the game.
package term

import (
	"dungeon-crawl/internal/game"
	"dungeon-crawl/internal/logger"
	"dungeon-crawl/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Run drives g on screen until the player quits or the screen is closed.
// The caller owns the screen and finalizes it.
func Run(screen tcell.Screen, g *game.Game) {
	r := render.NewRenderer(screen)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	for {
		g.Advance()
		r.Draw(g)

		var in game.Input
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			r.Resize()
			continue
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				logger.Log.Info("interrupted")
				return
			}
			in = KeyToInput(g.State().Kind, ev)
		case *tcell.EventMouse:
			r.SetCursor(r.ScreenToMap(ev.Position()))
			in = MouseToInput(g.State().Kind, ev, r.ScreenToMap)
		}
		if in.Kind == game.InputNone {
			continue
		}
		if g.Tick(in) {
			logger.Log.Info("player quit")
			return
		}
	}
}
