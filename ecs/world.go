package ecs

import "pacman/ecs/component"

// World owns entities, component storage, and the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components. Returns
// false if the handle was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(int(e.id()))
	}
	return true
}

// IsAlive reports whether the handle refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	return w.entities.alive()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) entityByID(id int) (Entity, bool) {
	eid := entityID(id)
	if eid == 0 || int(eid) > len(w.entities.gens) {
		return 0, false
	}
	return makeEntity(eid, w.entities.gens[eid-1]), true
}
