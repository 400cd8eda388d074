package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"pacman/assets"
	"pacman/ecs"
	"pacman/ecs/component"
)

// SpawnSession attaches the shared session state to a fresh world. The
// session outlives its worlds; each level build re-registers it.
func SpawnSession(w *ecs.World, sess *component.Session) ecs.Entity {
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.SessionComponent.Kind(), sess)
	return e
}

// SpawnSiren creates the background loop player with every track preloaded
// and the first siren selected but not yet playing.
func SpawnSiren(w *ecs.World) (ecs.Entity, error) {
	tracks := []string{
		assets.TrackSiren1,
		assets.TrackSiren2,
		assets.TrackSiren3,
		assets.TrackSiren4,
		assets.TrackSiren5,
		assets.TrackFright,
		assets.TrackEyes,
	}
	players := make(map[string]*audio.Player, len(tracks))
	for _, name := range tracks {
		p, err := assets.LoopPlayer(name)
		if err != nil {
			return 0, fmt.Errorf("entity: siren track: %w", err)
		}
		players[name] = p
	}

	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.SirenPlayerComponent.Kind(), &component.SirenPlayer{
		Players:      players,
		CurrentTrack: assets.TrackSiren1,
		FadeStep:     0.05,
	})
	return e, nil
}
