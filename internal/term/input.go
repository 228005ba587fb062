package term

import (
	"dungeon-crawl/internal/game"
	"dungeon-crawl/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// KeyToInput maps a tcell key event to a game input for the given run
// state. Keys with no meaning in that state map to InputNone.
func KeyToInput(state game.StateKind, ev *tcell.EventKey) game.Input {
	switch state {
	case game.StateMainMenu:
		return menuKey(ev)
	case game.StateAwaitingInput:
		return playKey(ev)
	case game.StateShowInventory, game.StateShowDropItem, game.StateShowRemoveEquipment:
		if ev.Key() == tcell.KeyEscape {
			return game.Press(game.InputCancel)
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() >= 'a' && ev.Rune() <= 'z' {
			return game.Letter(ev.Rune())
		}
	case game.StateShowTargeting:
		if ev.Key() == tcell.KeyEscape {
			return game.Press(game.InputCancel)
		}
	case game.StateGameOver:
		return game.Press(game.InputConfirm)
	}
	return game.Input{}
}

func menuKey(ev *tcell.EventKey) game.Input {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Press(game.InputUp)
	case tcell.KeyDown:
		return game.Press(game.InputDown)
	case tcell.KeyEnter:
		return game.Press(game.InputConfirm)
	case tcell.KeyEscape:
		return game.Press(game.InputCancel)
	}
	switch ev.Rune() {
	case 'k', 'K':
		return game.Press(game.InputUp)
	case 'j', 'J':
		return game.Press(game.InputDown)
	}
	return game.Input{}
}

func playKey(ev *tcell.EventKey) game.Input {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Move(0, -1)
	case tcell.KeyDown:
		return game.Move(0, 1)
	case tcell.KeyRight:
		return game.Move(1, 0)
	case tcell.KeyLeft:
		return game.Move(-1, 0)
	case tcell.KeyHome:
		return game.Move(-1, -1)
	case tcell.KeyPgUp:
		return game.Move(1, -1)
	case tcell.KeyEnd:
		return game.Move(-1, 1)
	case tcell.KeyPgDn:
		return game.Move(1, 1)
	case tcell.KeyEscape:
		return game.Press(game.InputSave)
	case tcell.KeyRune:
	default:
		return game.Input{}
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k':
		return game.Move(0, -1)
	case 'j':
		return game.Move(0, 1)
	case 'l':
		return game.Move(1, 0)
	case 'h':
		return game.Move(-1, 0)
	case 'y':
		return game.Move(-1, -1)
	case 'u':
		return game.Move(1, -1)
	case 'b':
		return game.Move(-1, 1)
	case 'n':
		return game.Move(1, 1)
	case '.', ' ':
		return game.Press(game.InputWait)
	case ',', 'g':
		return game.Press(game.InputPickUp)
	case 'i':
		return game.Press(game.InputInventory)
	case 'd':
		return game.Press(game.InputDrop)
	case 'R':
		return game.Press(game.InputRemove)
	case '>':
		return game.Press(game.InputDescend)
	}
	return game.Input{}
}

// MouseToInput maps a mouse event to a game input. Only a left click on a
// map tile while targeting means anything; toMap converts screen cells to
// map tiles.
func MouseToInput(state game.StateKind, ev *tcell.EventMouse, toMap func(x, y int) (gamemap.Point, bool)) game.Input {
	if state != game.StateShowTargeting || ev.Buttons()&tcell.Button1 == 0 {
		return game.Input{}
	}
	p, ok := toMap(ev.Position())
	if !ok {
		return game.Press(game.InputCancel)
	}
	return game.Target(p)
}
