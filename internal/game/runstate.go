package game

import (
	"context"
	"errors"
	"fmt"

	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/logger"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
)

// StateKind is the phase of the run-state machine.
type StateKind uint8

const (
	StateMainMenu StateKind = iota
	StatePreRun
	StateAwaitingInput
	StatePlayerTurn
	StateMonsterTurn
	StateShowInventory
	StateShowDropItem
	StateShowTargeting
	StateShowRemoveEquipment
	StateSaveGame
	StateNextLevel
	StateGameOver
)

var stateNames = [...]string{
	StateMainMenu:            "main_menu",
	StatePreRun:              "pre_run",
	StateAwaitingInput:       "awaiting_input",
	StatePlayerTurn:          "player_turn",
	StateMonsterTurn:         "monster_turn",
	StateShowInventory:       "show_inventory",
	StateShowDropItem:        "show_drop_item",
	StateShowTargeting:       "show_targeting",
	StateShowRemoveEquipment: "show_remove_equipment",
	StateSaveGame:            "save_game",
	StateNextLevel:           "next_level",
	StateGameOver:            "game_over",
}

func (k StateKind) String() string {
	if int(k) < len(stateNames) {
		return stateNames[k]
	}
	return fmt.Sprintf("state(%d)", k)
}

// MenuSelection is the highlighted main-menu entry.
type MenuSelection uint8

const (
	SelectNewGame MenuSelection = iota
	SelectLoadGame
	SelectQuit
)

func (s MenuSelection) String() string {
	switch s {
	case SelectNewGame:
		return "Begin New Game"
	case SelectLoadGame:
		return "Load Game"
	case SelectQuit:
		return "Quit"
	}
	return "?"
}

// RunState is the current phase plus the data some phases carry.
type RunState struct {
	Kind      StateKind
	Selection MenuSelection // StateMainMenu
	Range     int           // StateShowTargeting
	Item      ecs.EntityID  // StateShowTargeting
}

// transitions lists, per phase, every phase it may move to.
var transitions = map[StateKind][]StateKind{
	StateMainMenu:      {StatePreRun},
	StatePreRun:        {StateAwaitingInput, StateGameOver},
	StateAwaitingInput: {StatePlayerTurn, StateShowInventory, StateShowDropItem, StateShowRemoveEquipment, StateSaveGame, StateNextLevel, StateGameOver},
	StatePlayerTurn:    {StateMonsterTurn, StateGameOver},
	StateMonsterTurn:   {StateAwaitingInput, StateGameOver},

	StateShowInventory:       {StateAwaitingInput, StatePlayerTurn, StateShowTargeting},
	StateShowDropItem:        {StateAwaitingInput, StatePlayerTurn},
	StateShowRemoveEquipment: {StateAwaitingInput, StatePlayerTurn},
	StateShowTargeting:       {StateAwaitingInput, StatePlayerTurn},

	StateSaveGame:  {StateMainMenu, StateAwaitingInput},
	StateNextLevel: {StatePreRun},
	StateGameOver:  {StateMainMenu},
}

// machine guards phase changes with an fsm so an illegal jump is caught at
// the point it happens.
type machine struct {
	f *fsm.FSM
}

func newMachine() *machine {
	sources := make(map[StateKind][]string)
	for src := StateMainMenu; src <= StateGameOver; src++ {
		for _, dst := range transitions[src] {
			sources[dst] = append(sources[dst], src.String())
		}
	}
	var events fsm.Events
	for dst := StateMainMenu; dst <= StateGameOver; dst++ {
		events = append(events, fsm.EventDesc{Name: dst.String(), Src: sources[dst], Dst: dst.String()})
	}
	f := fsm.NewFSM(StateMainMenu.String(), events, fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			logger.Log.WithFields(logrus.Fields{
				"from": e.Src,
				"to":   e.Dst,
			}).Debug("run state changed")
		},
	})
	return &machine{f: f}
}

// enter moves to kind, panicking on a transition the graph does not allow.
func (m *machine) enter(kind StateKind) {
	if m.f.Current() == kind.String() {
		return
	}
	err := m.f.Event(context.Background(), kind.String())
	var noop fsm.NoTransitionError
	if err != nil && !errors.As(err, &noop) {
		panic(fmt.Sprintf("game: illegal run state change %s -> %s: %v", m.f.Current(), kind, err))
	}
}

// can reports whether kind is reachable from the current phase.
func (m *machine) can(kind StateKind) bool {
	return m.f.Current() == kind.String() || m.f.Can(kind.String())
}
