package ecs

import "pacman/ecs/component"

// Add attaches a component to an entity, replacing any previous value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).set(int(e.id()), value)
	return nil
}

// Get returns the entity's component of the given kind, if present.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !kind.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.store(kind.ID()).get(int(e.id()))
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the entity carries the component kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !kind.Valid() || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID()).has(int(e.id()))
}

// Remove detaches the component kind from the entity.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !kind.Valid() || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID()).remove(int(e.id()))
}

// First returns some entity carrying the kind. Meant for singletons.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if !kind.Valid() {
		return 0, false
	}
	for _, id := range w.store(kind.ID()).ids() {
		if e, ok := w.entityByID(id); ok {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every entity carrying the kind. The iteration works on a
// snapshot, so the callback may add or destroy entities.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if !kind.Valid() || fn == nil {
		return
	}
	ids := append([]int(nil), w.store(kind.ID()).ids()...)
	for _, id := range ids {
		e, ok := w.entityByID(id)
		if !ok {
			continue
		}
		v, ok := Get(w, e, kind)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 visits every entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

// Query returns entities carrying every given component id, iterating the
// smallest store.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	smallest := w.store(ids[0])
	for _, id := range ids[1:] {
		if s := w.store(id); s.len() < smallest.len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.len())
outer:
	for _, eid := range smallest.ids() {
		for _, id := range ids {
			if !w.store(id).has(eid) {
				continue outer
			}
		}
		if e, ok := w.entityByID(eid); ok {
			out = append(out, e)
		}
	}
	return out
}
