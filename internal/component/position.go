package component

import "dungeon-crawl/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is a tile coordinate. Items held in a backpack have none.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (Position) Type() ecs.ComponentType { return CPosition }
