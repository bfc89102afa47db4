package ecs

import "fmt"

type (
	entityID   uint32
	generation uint32
)

// Entity packs an id (low half) with the generation it was issued under
// (high half). Destroying an entity bumps the generation, so handles kept
// past a destroy never match the recycled id.
type Entity uint64

func newEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID           { return entityID(e & 0xffffffff) }
func (e Entity) generation() generation { return generation(e >> 32) }

func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.id(), e.generation())
}

// entityStore hands out ids starting at 1, so the zero Entity is never
// alive. Freed ids are reused last-in first-out.
type entityStore struct {
	slots []entitySlot
	free  []entityID
	count int
}

type entitySlot struct {
	gen   generation
	alive bool
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id, s.free = s.free[n-1], s.free[:n-1]
	} else {
		s.slots = append(s.slots, entitySlot{})
		id = entityID(len(s.slots))
	}
	slot := &s.slots[id-1]
	slot.alive = true
	s.count++
	return newEntity(id, slot.gen)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	slot := &s.slots[e.id()-1]
	slot.alive = false
	slot.gen++
	s.free = append(s.free, e.id())
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	cur, ok := s.handle(e.id())
	return ok && cur == e
}

// handle returns the live Entity for a raw id.
func (s *entityStore) handle(id entityID) (Entity, bool) {
	if id == 0 || int(id) > len(s.slots) || !s.slots[id-1].alive {
		return 0, false
	}
	return newEntity(id, s.slots[id-1].gen), true
}

func (s *entityStore) len() int {
	return len(s.slots)
}
