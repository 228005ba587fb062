package ecs

// store is a sparse set holding every component of one type.
// index maps an entity to its slot in the dense ids/data slices.
type store struct {
	index map[EntityID]int
	ids   []EntityID
	data  []Component
}

func newStore() *store {
	return &store{
		index: make(map[EntityID]int),
		ids:   make([]EntityID, 0, 64),
		data:  make([]Component, 0, 64),
	}
}

// set inserts or replaces the component for id.
func (s *store) set(id EntityID, c Component) {
	if i, ok := s.index[id]; ok {
		s.data[i] = c
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.data = append(s.data, c)
}

func (s *store) get(id EntityID) (Component, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.data[i], true
}

// remove swaps the last element into the freed slot.
func (s *store) remove(id EntityID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	last := len(s.ids) - 1
	if i != last {
		s.ids[i] = s.ids[last]
		s.data[i] = s.data[last]
		s.index[s.ids[i]] = i
	}
	s.ids = s.ids[:last]
	s.data[last] = nil
	s.data = s.data[:last]
	delete(s.index, id)
	return true
}

func (s *store) len() int { return len(s.ids) }

func (s *store) clear() {
	s.index = make(map[EntityID]int)
	s.ids = s.ids[:0]
	clear(s.data)
	s.data = s.data[:0]
}
