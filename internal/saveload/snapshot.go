package saveload

import (
	"encoding/json"
	"fmt"

	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/gamemap"
	"dungeon-crawl/internal/logger"

	"github.com/sirupsen/logrus"
)

// Version is bumped whenever the snapshot layout changes incompatibly.
const Version = 1

// Snapshot is the persisted form of a world. Components are keyed by their
// registered names.
type Snapshot struct {
	Version  int            `json:"version"`
	Entities []EntityRecord `json:"entities"`
}

// EntityRecord holds one entity and its components.
type EntityRecord struct {
	ID         ecs.EntityID               `json:"id"`
	Components map[string]json.RawMessage `json:"components"`
}

// Loaded is what a restored world needs beyond the entities themselves.
type Loaded struct {
	Map       *gamemap.Map
	Player    ecs.EntityID
	PlayerPos gamemap.Point
}

// Encode captures every live entity plus the map. The map travels inside a
// temporary serialization-helper entity which is gone again on return.
func Encode(w *ecs.World, m *gamemap.Map) ([]byte, error) {
	helper := w.CreateEntity()
	w.Add(helper, component.SerializationHelper{Map: m.Clone()})
	defer w.DestroyEntity(helper)

	snap := Snapshot{Version: Version}
	for _, id := range w.Entities() {
		rec := EntityRecord{ID: id, Components: make(map[string]json.RawMessage)}
		for _, c := range w.Components(id) {
			name, ok := component.TypeName(c.Type())
			if !ok {
				return nil, fmt.Errorf("component type %d is not registered", c.Type())
			}
			raw, err := json.Marshal(c)
			if err != nil {
				return nil, fmt.Errorf("encode %s of entity %d: %w", name, id, err)
			}
			rec.Components[name] = raw
		}
		snap.Entities = append(snap.Entities, rec)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"entities": len(snap.Entities),
		"bytes":    len(data),
	}).Debug("encoded snapshot")
	return data, nil
}

type staged struct {
	id    ecs.EntityID
	comps []ecs.Component
}

// Decode replaces the contents of w with the snapshot in data. Entity IDs
// are preserved. Nothing in w changes unless the whole snapshot is valid.
func Decode(data []byte, w *ecs.World) (*Loaded, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if snap.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformed, snap.Version)
	}

	var (
		entities []staged
		gmap     *gamemap.Map
		player   = ecs.NilEntity
		seen     = make(map[ecs.EntityID]bool, len(snap.Entities))
	)
	for _, rec := range snap.Entities {
		if rec.ID == ecs.NilEntity || seen[rec.ID] {
			return nil, fmt.Errorf("%w: bad or duplicate entity id %d", ErrMalformed, rec.ID)
		}
		seen[rec.ID] = true

		st := staged{id: rec.ID}
		isHelper := false
		for name, raw := range rec.Components {
			c, err := component.Decode(name, raw)
			if err != nil {
				return nil, fmt.Errorf("%w: entity %d: %v", ErrMalformed, rec.ID, err)
			}
			switch v := c.(type) {
			case component.SerializationHelper:
				if v.Map == nil {
					return nil, fmt.Errorf("%w: serialization helper without a map", ErrMalformed)
				}
				gmap = v.Map
				isHelper = true
			case component.Player:
				player = rec.ID
			}
			st.comps = append(st.comps, c)
		}
		if !isHelper {
			entities = append(entities, st)
		}
	}
	if gmap == nil {
		return nil, fmt.Errorf("%w: no map", ErrMalformed)
	}
	if err := gmap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if player == ecs.NilEntity {
		return nil, fmt.Errorf("%w: no player", ErrMalformed)
	}

	var pos gamemap.Point
	found := false
	for _, st := range entities {
		if st.id != player {
			continue
		}
		for _, c := range st.comps {
			if p, ok := c.(component.Position); ok {
				pos, found = gamemap.Pt(p.X, p.Y), true
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: player has no position", ErrMalformed)
	}

	w.Reset()
	for _, st := range entities {
		w.Restore(st.id)
		for _, c := range st.comps {
			w.Add(st.id, c)
		}
	}
	gmap.ResetIndex()

	logger.Log.WithFields(logrus.Fields{
		"entities": len(entities),
		"depth":    gmap.Depth,
	}).Debug("decoded snapshot")
	return &Loaded{Map: gmap, Player: player, PlayerPos: pos}, nil
}
