package system

import (
	"pacman/ecs"
	"pacman/ecs/component"
)

// Audio services one-shot effect requests: systems set Play/Stop flags on
// an entity's Audio component, this system rewinds and starts the players.
type Audio struct{}

func NewAudio() *Audio {
	return &Audio{}
}

func (s *Audio) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		for i := range a.Names {
			if i >= len(a.Players) || a.Players[i] == nil {
				continue
			}
			p := a.Players[i]
			if i < len(a.Stop) && a.Stop[i] {
				a.Stop[i] = false
				p.Pause()
			}
			if i < len(a.Play) && a.Play[i] {
				a.Play[i] = false
				if i < len(a.Volume) {
					p.SetVolume(a.Volume[i])
				}
				p.Rewind()
				p.Play()
			}
		}
	})
}
