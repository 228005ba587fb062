package ecs

type commandKind uint8

const (
	cmdCreate commandKind = iota
	cmdAdd
	cmdRemove
	cmdDestroy
)

// command is one deferred structural change recorded during a system pass.
type command struct {
	kind  commandKind
	id    EntityID
	ctype ComponentType
	comps []Component
}

// QueueCreate reserves an entity ID and records its creation with the given
// components. The entity becomes alive at the next Maintain.
func (w *World) QueueCreate(comps ...Component) EntityID {
	id := w.nextID
	w.nextID++
	w.pending = append(w.pending, command{kind: cmdCreate, id: id, comps: comps})
	return id
}

// QueueAdd records a component insertion applied at the next Maintain.
func (w *World) QueueAdd(id EntityID, c Component) {
	w.pending = append(w.pending, command{kind: cmdAdd, id: id, comps: []Component{c}})
}

// QueueRemove records a component removal applied at the next Maintain.
func (w *World) QueueRemove(id EntityID, t ComponentType) {
	w.pending = append(w.pending, command{kind: cmdRemove, id: id, ctype: t})
}

// QueueDestroy records an entity deletion applied at the next Maintain.
func (w *World) QueueDestroy(id EntityID) {
	w.pending = append(w.pending, command{kind: cmdDestroy, id: id})
}

// Pending reports how many deferred commands are waiting for Maintain.
func (w *World) Pending() int { return len(w.pending) }

// Maintain applies every deferred command in the order it was recorded and
// returns the number applied. Commands addressing an entity that died
// earlier in the batch are dropped.
func (w *World) Maintain() int {
	if len(w.pending) == 0 {
		return 0
	}
	cmds := w.pending
	w.pending = nil
	applied := 0
	for _, cmd := range cmds {
		switch cmd.kind {
		case cmdCreate:
			w.alive[cmd.id] = true
			for _, c := range cmd.comps {
				w.set(cmd.id, c)
			}
		case cmdAdd:
			if !w.alive[cmd.id] {
				continue
			}
			w.set(cmd.id, cmd.comps[0])
		case cmdRemove:
			if !w.alive[cmd.id] {
				continue
			}
			w.Remove(cmd.id, cmd.ctype)
		case cmdDestroy:
			if !w.alive[cmd.id] {
				continue
			}
			w.DestroyEntity(cmd.id)
		}
		applied++
	}
	return applied
}
