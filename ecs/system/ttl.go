package system

import (
	"pacman/ecs"
	"pacman/ecs/component"
)

// TTLs destroys short-lived entities (score popups) when their timer runs
// out.
type TTLs struct{}

func NewTTLs() *TTLs {
	return &TTLs{}
}

func (s *TTLs) Update(w *ecs.World) {
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, t *component.TTL) {
		t.Ticks--
		if t.Ticks <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
