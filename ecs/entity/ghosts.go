package entity

import (
	"pacman/assets"
	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/ecs/render"
	"pacman/levels"
	"pacman/maze"
)

// GhostSpec is one ghost's placement: where it spawns, where it rests in
// the house, and which corner it scatters to.
type GhostSpec struct {
	Name    component.GhostName
	Spawn   maze.Location
	Home    maze.Location
	Scatter maze.Location
}

// DefaultGhostSpecs places the four ghosts the classic way: Blinky outside
// the door, the rest waiting inside.
func DefaultGhostSpecs(m *maze.Map) []GhostSpec {
	center := m.HouseCenter()
	return []GhostSpec{
		{
			Name:    component.Blinky,
			Spawn:   m.HouseExit(),
			Home:    center,
			Scatter: maze.Loc(float64(m.Width())-3, float64(m.Height())+1),
		},
		{
			Name:    component.Pinky,
			Spawn:   center,
			Home:    center,
			Scatter: maze.Loc(2, float64(m.Height())+1),
		},
		{
			Name:    component.Inky,
			Spawn:   center.Sub(maze.Loc(2, 0)),
			Home:    center.Sub(maze.Loc(2, 0)),
			Scatter: maze.Loc(float64(m.Width())-1, -1),
		},
		{
			Name:    component.Clyde,
			Spawn:   center.Add(maze.Loc(2, 0)),
			Home:    center.Add(maze.Loc(2, 0)),
			Scatter: maze.Loc(0, -1),
		},
	}
}

// SpawnGhosts creates the ghosts for a level. Exit counters come from the
// current level's tuning.
func SpawnGhosts(w *ecs.World, specs []GhostSpec, reg *render.Registry, lv *levels.Levels) []ecs.Entity {
	out := make([]ecs.Entity, 0, len(specs))
	for _, spec := range specs {
		e := ecs.CreateEntity(w)

		ghost := &component.Ghost{
			Name:          spec.Name,
			ScatterTarget: spec.Scatter,
			Home:          spec.Home,
		}
		heading := maze.Up
		switch spec.Name {
		case component.Blinky:
			ghost.Mode = component.ModeScatter
			ghost.Directions = []maze.Direction{maze.Left}
			heading = maze.Left
		case component.Inky:
			ghost.Mode = component.ModeInHouse
			ghost.ExitDots = lv.InkyHomeExitDots()
		case component.Clyde:
			ghost.Mode = component.ModeInHouse
			ghost.ExitDots = lv.ClydeHomeExitDots()
		default:
			ghost.Mode = component.ModeInHouse
		}

		ecs.Add(w, e, component.GhostComponent.Kind(), ghost)
		ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Loc: spec.Spawn})
		ecs.Add(w, e, component.HeadingComponent.Kind(), &component.Heading{Dir: heading})
		ecs.Add(w, e, component.SpeedComponent.Kind(), component.NewSpeed(lv.GhostNormalSpeed()))
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
		ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerGhosts})
		ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
			Sheet: reg.GhostSheet(spec.Name, ghost.Mode, false),
			Defs: map[string]component.AnimationDef{
				"walk": {
					Name: "walk", FrameCount: 2, FPS: 8, Loop: true,
					FrameW: assets.SpriteSize, FrameH: assets.SpriteSize,
				},
			},
			Current: "walk",
			Playing: true,
		})

		out = append(out, e)
	}
	return out
}
