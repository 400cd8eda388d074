package system

import (
	"pacman/assets"
	"pacman/ecs"
	"pacman/ecs/component"
)

const sixteenGhostBonus = 12000

// Collision resolves player/ghost contact on shared tiles: frightened
// ghosts are eaten for chained points, anything else kills the player.
type Collision struct{}

func NewCollision() *Collision {
	return &Collision{}
}

func (s *Collision) Update(w *ecs.World) {
	session := currentSession(w)
	if session == nil {
		return
	}
	playerLoc, _ := playerTile(w)

	died := false
	ecs.ForEach(w, component.GhostComponent.Kind(), func(e ecs.Entity, g *component.Ghost) {
		pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
		if !ok {
			return
		}
		heading, _ := ecs.Get(w, e, component.HeadingComponent.Kind())
		if heading == nil || pos.Loc.Tile(heading.Dir) != playerLoc {
			return
		}

		switch g.Mode {
		case component.ModeFrightened:
			points := 200 << session.GhostChain
			if session.GhostChain < 3 {
				session.GhostChain++
			}
			session.Score += points
			session.GhostsEatenTotal++
			if session.GhostsEatenTotal == 16 {
				session.Score += sixteenGhostBonus
			}
			session.PauseTicks = TicksPerSecond

			g.Mode = component.ModeEyes
			g.FrightTicks = 0
			g.Flashing = false
			g.Directions = nil

			triggerPlayerSound(w, assets.SoundGhostEat)
			w.Events().Push(ecs.Event{Type: EventGhostEaten, Data: GhostEaten{Points: points}})
		case component.ModeEyes, component.ModeInHouse, component.ModeLeavingHouse:
			// Harmless.
		default:
			died = true
		}
	})

	if died {
		w.Events().Push(ecs.Event{Type: EventPlayerDied})
	}
}
