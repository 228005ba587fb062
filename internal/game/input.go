package game

import "dungeon-crawl/internal/gamemap"

// InputKind is a player-requested action, already decoded from the
// terminal.
type InputKind uint8

const (
	InputNone InputKind = iota
	InputMove
	InputWait
	InputPickUp
	InputInventory
	InputDrop
	InputRemove
	InputDescend
	InputSave
	InputUp
	InputDown
	InputConfirm
	InputCancel
	InputLetter
	InputTarget
)

// Input is one decoded action. DX/DY are set for InputMove, Letter for
// InputLetter and Point for InputTarget.
type Input struct {
	Kind   InputKind
	DX, DY int
	Letter rune
	Point  gamemap.Point
}

// Move returns a movement input.
func Move(dx, dy int) Input { return Input{Kind: InputMove, DX: dx, DY: dy} }

// Letter returns a menu letter input.
func Letter(r rune) Input { return Input{Kind: InputLetter, Letter: r} }

// Target returns a confirmed click on map tile p.
func Target(p gamemap.Point) Input { return Input{Kind: InputTarget, Point: p} }

// Press returns an input without payload.
func Press(k InputKind) Input { return Input{Kind: k} }
