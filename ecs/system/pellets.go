package system

import (
	"pacman/assets"
	"pacman/ecs"
	"pacman/ecs/component"
)

const (
	pelletPoints = 10
	powerPoints  = 50
)

// Pellets eats the dot under the player, scores it, feeds the ghost house
// dot counters, and fires energizers.
type Pellets struct{}

func NewPellets() *Pellets {
	return &Pellets{}
}

func (s *Pellets) Update(w *ecs.World) {
	session := currentSession(w)
	if session == nil {
		return
	}
	playerLoc, _ := playerTile(w)

	ecs.ForEach2(w, component.PelletComponent.Kind(), component.PositionComponent.Kind(),
		func(e ecs.Entity, p *component.Pellet, pos *component.Position) {
			if pos.Loc != playerLoc {
				return
			}
			power := p.Power
			ecs.DestroyEntity(w, e)

			session.PelletsEaten++
			session.PelletsLeft--
			sound := assets.SoundWaka
			if power {
				session.Score += powerPoints
				FrightenGhosts(w, session)
				sound = assets.SoundEnergizer
			} else {
				session.Score += pelletPoints
			}

			feedHouseCounter(w)
			triggerPlayerSound(w, sound)
			w.Events().Push(ecs.Event{Type: EventPelletEaten, Data: PelletEaten{Power: power}})
			if session.PelletsLeft <= 0 {
				w.Events().Push(ecs.Event{Type: EventLevelCleared})
			}
		})
}

// feedHouseCounter gives the pellet to the preferred waiting ghost: Pinky
// before Inky before Clyde. Blinky never waits.
func feedHouseCounter(w *ecs.World) {
	var best *component.Ghost
	ecs.ForEach(w, component.GhostComponent.Kind(), func(_ ecs.Entity, g *component.Ghost) {
		if g.Mode != component.ModeInHouse {
			return
		}
		if best == nil || g.Name < best.Name {
			best = g
		}
	})
	if best != nil {
		best.DotCounter++
	}
}

func triggerPlayerSound(w *ecs.World, name string) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	if a, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
		a.Trigger(name)
	}
}
