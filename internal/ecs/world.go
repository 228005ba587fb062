package ecs

import (
	"fmt"
	"slices"
)

// World is the central entity registry and component store.
// Each component type lives in its own sparse set. Structural changes made
// while a system iterates go through the command buffer and land at Maintain.
type World struct {
	nextID  EntityID
	alive   map[EntityID]bool
	stores  map[ComponentType]*store
	pending []command
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[EntityID]bool),
		stores: make(map[ComponentType]*store),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Restore marks a specific ID alive. Used when reloading a snapshot so that
// back-references between entities keep pointing at the same identities.
func (w *World) Restore(id EntityID) {
	if id == NilEntity {
		panic("ecs: restore of nil entity")
	}
	w.alive[id] = true
	if id >= w.nextID {
		w.nextID = id + 1
	}
}

// DestroyEntity marks the entity dead and removes all its components.
// Destroying a dead entity is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, s := range w.stores {
		s.remove(id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Add attaches a component to an entity, replacing any previous value of the
// same type. Adding to a dead entity is a programming error.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		panic(fmt.Sprintf("ecs: add component %d to dead entity %d", c.Type(), id))
	}
	w.set(id, c)
}

func (w *World) set(id EntityID, c Component) {
	t := c.Type()
	s := w.stores[t]
	if s == nil {
		s = newStore()
		w.stores[t] = s
	}
	s.set(id, c)
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	s := w.stores[t]
	if s == nil {
		return nil
	}
	c, _ := s.get(id)
	return c
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if s := w.stores[t]; s != nil {
		s.remove(id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	s := w.stores[t]
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Count returns how many entities carry a component of type t.
func (w *World) Count(t ComponentType) int {
	if s := w.stores[t]; s != nil {
		return s.len()
	}
	return 0
}

// Clear removes every component of type t from every entity.
func (w *World) Clear(t ComponentType) {
	if s := w.stores[t]; s != nil {
		s.clear()
	}
}

// Query returns all alive entities that have every listed component type,
// in ascending ID order. The result is a snapshot: mutating the world while
// ranging over it is safe.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	var smallest *store
	for _, t := range types {
		s := w.stores[t]
		if s == nil {
			return nil
		}
		if smallest == nil || s.len() < smallest.len() {
			smallest = s
		}
	}
	var result []EntityID
	for _, id := range smallest.ids {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// Entities returns every live entity in ascending ID order.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.alive))
	for id := range w.alive {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Components returns every component attached to id, ordered by type key.
func (w *World) Components(id EntityID) []Component {
	var out []Component
	for _, s := range w.stores {
		if c, ok := s.get(id); ok {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Component) int { return int(a.Type()) - int(b.Type()) })
	return out
}

// Reset deletes every entity, drops pending commands and restarts ID
// allocation.
func (w *World) Reset() {
	w.nextID = 1
	w.alive = make(map[EntityID]bool)
	w.stores = make(map[ComponentType]*store)
	w.pending = nil
}
