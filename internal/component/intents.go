package component

import (
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/gamemap"
)

// One-turn intents. Each is placed on the acting entity and cleared by the
// system that consumes it.
const (
	CWantsToPickUpItem      ecs.ComponentType = 21
	CWantsToUseItem         ecs.ComponentType = 22
	CWantsToDropItem        ecs.ComponentType = 23
	CWantsToRemoveEquipment ecs.ComponentType = 24
)

type WantsToPickUpItem struct {
	CollectedBy ecs.EntityID `json:"collected_by"`
	Item        ecs.EntityID `json:"item"`
}

func (WantsToPickUpItem) Type() ecs.ComponentType { return CWantsToPickUpItem }

// WantsToUseItem targets the user when Target is nil.
type WantsToUseItem struct {
	Item   ecs.EntityID   `json:"item"`
	Target *gamemap.Point `json:"target,omitempty"`
}

func (WantsToUseItem) Type() ecs.ComponentType { return CWantsToUseItem }

type WantsToDropItem struct {
	Item ecs.EntityID `json:"item"`
}

func (WantsToDropItem) Type() ecs.ComponentType { return CWantsToDropItem }

type WantsToRemoveEquipment struct {
	Item ecs.EntityID `json:"item"`
}

func (WantsToRemoveEquipment) Type() ecs.ComponentType { return CWantsToRemoveEquipment }
