// Package entity spawns the game's entities: board, pellets, characters,
// and HUD. Spawners return the created entity so callers can keep handles
// to singletons.
package entity

import (
	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/ecs/render"
	"pacman/maze"
)

// SpawnBoard creates the static maze backdrop.
func SpawnBoard(w *ecs.World, m *maze.Map, reg *render.Registry) ecs.Entity {
	e := ecs.CreateEntity(w)
	center := maze.Loc(float64(m.Width())/2-0.5, float64(m.Height())/2-0.5)
	ecs.Add(w, e, component.BoardComponent.Kind(), &component.Board{})
	ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Loc: center})
	ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: reg.Board})
	ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerBoard})
	ecs.Add(w, e, component.NoWrapComponent.Kind(), &component.NoWrap{})
	return e
}

// SpawnPellets creates one entity per pellet spawn. Energizers blink.
func SpawnPellets(w *ecs.World, m *maze.Map, reg *render.Registry) int {
	count := 0
	for _, spawn := range m.Pellets() {
		e := ecs.CreateEntity(w)
		ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Loc: spawn.Loc})
		ecs.Add(w, e, component.PelletComponent.Kind(), &component.Pellet{Power: spawn.Power})
		img := reg.Pellet
		if spawn.Power {
			img = reg.PowerPellet
			ecs.Add(w, e, component.BlinkComponent.Kind(), &component.Blink{IntervalTicks: 13})
		}
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img})
		ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPellets})
		ecs.Add(w, e, component.NoWrapComponent.Kind(), &component.NoWrap{})
		count++
	}
	return count
}
