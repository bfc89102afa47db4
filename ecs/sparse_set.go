package ecs

// SparseSet stores one component kind keyed by entity id. Iteration follows
// dense order, which is insertion order until a removal moves the last slot
// into the hole.
type SparseSet struct {
	dense []slot
	// sparse[id-1] is the dense index plus one; zero marks an absent id.
	sparse []int32
}

type slot struct {
	id    entityID
	value any
}

func (s *SparseSet) index(id entityID) (int, bool) {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return 0, false
	}
	i := int(s.sparse[id-1]) - 1
	return i, i >= 0
}

func (s *SparseSet) Contains(id entityID) bool {
	_, ok := s.index(id)
	return ok
}

func (s *SparseSet) Value(id entityID) (any, bool) {
	i, ok := s.index(id)
	if !ok {
		return nil, false
	}
	return s.dense[i].value, true
}

// Put inserts v for id or replaces the stored value.
func (s *SparseSet) Put(id entityID, v any) {
	if id == 0 {
		return
	}
	if i, ok := s.index(id); ok {
		s.dense[i].value = v
		return
	}
	if grow := int(id) - len(s.sparse); grow > 0 {
		s.sparse = append(s.sparse, make([]int32, grow)...)
	}
	s.dense = append(s.dense, slot{id: id, value: v})
	s.sparse[id-1] = int32(len(s.dense))
}

// Delete removes id and reports whether it was present.
func (s *SparseSet) Delete(id entityID) bool {
	i, ok := s.index(id)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[i] = moved
	s.sparse[moved.id-1] = int32(i + 1)
	s.dense[last] = slot{}
	s.dense = s.dense[:last]
	s.sparse[id-1] = 0
	return true
}

// IDs snapshots the stored ids in dense order.
func (s *SparseSet) IDs() []entityID {
	if s == nil {
		return nil
	}
	out := make([]entityID, len(s.dense))
	for i, sl := range s.dense {
		out[i] = sl.id
	}
	return out
}

// Intersect returns the ids of s, in dense order, that every other set also
// holds.
func (s *SparseSet) Intersect(others ...*SparseSet) []entityID {
	if s == nil {
		return nil
	}
	out := make([]entityID, 0, len(s.dense))
next:
	for _, sl := range s.dense {
		for _, o := range others {
			if !o.Contains(sl.id) {
				continue next
			}
		}
		out = append(out, sl.id)
	}
	return out
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
