package component

import (
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/gamemap"
)

const CSerializationHelper ecs.ComponentType = 27

// SerializationHelper carries the map inside a snapshot. It exists only
// while a save is written or a load is applied.
type SerializationHelper struct {
	Map *gamemap.Map `json:"map"`
}

func (SerializationHelper) Type() ecs.ComponentType { return CSerializationHelper }
