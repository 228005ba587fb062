package component

import "dungeon-crawl/internal/ecs"

const CName ecs.ComponentType = 6

type Name struct {
	Value string `json:"value"`
}

func (Name) Type() ecs.ComponentType { return CName }

// NameOf returns the entity's display name, or "something" when it has none.
func NameOf(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, CName); c != nil {
		return c.(Name).Value
	}
	return "something"
}
