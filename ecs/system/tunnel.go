package system

import (
	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/maze"
)

// Tunnel wraps characters that leave the board through a tunnel to the
// opposite side. Entities tagged NoWrap (HUD, signs) are left alone.
type Tunnel struct {
	m *maze.Map
}

func NewTunnel(m *maze.Map) *Tunnel {
	return &Tunnel{m: m}
}

func (s *Tunnel) Update(w *ecs.World) {
	ecs.ForEach2(w, component.PositionComponent.Kind(), component.HeadingComponent.Kind(),
		func(e ecs.Entity, pos *component.Position, _ *component.Heading) {
			if ecs.Has(w, e, component.NoWrapComponent.Kind()) {
				return
			}
			pos.Loc = s.m.Wrap(pos.Loc)
		})
}
