package entity

import (
	"fmt"

	"pacman/assets"
	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/ecs/render"
	"pacman/maze"
)

// PlayerStart is where the player appears, between two columns below the
// ghost house.
func PlayerStart(m *maze.Map) maze.Location {
	return maze.Loc(float64(m.Width())/2-0.5, 7)
}

// SpawnPlayer creates the player with its chomp animation and sound bank.
func SpawnPlayer(w *ecs.World, m *maze.Map, reg *render.Registry) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{})
	ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Loc: PlayerStart(m)})
	ecs.Add(w, e, component.HeadingComponent.Kind(), &component.Heading{Dir: maze.Right})
	ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Want: maze.Right})
	ecs.Add(w, e, component.SpeedComponent.Kind(), component.NewSpeed(0.8))
	ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlayer})
	ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Sheet: reg.Pacman,
		Defs: map[string]component.AnimationDef{
			// A blocked pacman holds the half-open mouth.
			"idle": {
				Name: "idle", ColStart: 1, FrameCount: 1,
				FrameW: assets.SpriteSize, FrameH: assets.SpriteSize,
			},
			"chomp": {
				Name: "chomp", FrameCount: 3, FPS: 15, Loop: true,
				FrameW: assets.SpriteSize, FrameH: assets.SpriteSize,
			},
		},
		Current: "idle",
		Playing: true,
	})

	bank, err := soundBank(
		assets.SoundWaka,
		assets.SoundEnergizer,
		assets.SoundGhostEat,
		assets.SoundDeath,
		assets.SoundFruit,
		assets.SoundExtraLife,
	)
	if err != nil {
		return 0, fmt.Errorf("entity: player sounds: %w", err)
	}
	ecs.Add(w, e, component.AudioComponent.Kind(), bank)

	return e, nil
}

func soundBank(names ...string) (*component.Audio, error) {
	bank := &component.Audio{Names: names}
	for _, name := range names {
		p, err := assets.Player(name)
		if err != nil {
			return nil, err
		}
		bank.Players = append(bank.Players, p)
		bank.Volume = append(bank.Volume, 1)
		bank.Play = append(bank.Play, false)
		bank.Stop = append(bank.Stop, false)
	}
	return bank, nil
}
