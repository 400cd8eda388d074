package system

import (
	"pacman/assets"
	"pacman/ecs"
	"pacman/ecs/component"
)

// Siren keeps exactly one background loop running: eyes returning home
// beats frightened, frightened beats the pellet-count siren. Track changes
// fade the old loop out before the new one starts.
type Siren struct{}

func NewSiren() *Siren {
	return &Siren{}
}

func (s *Siren) Update(w *ecs.World) {
	session := currentSession(w)
	if session == nil {
		return
	}
	e, ok := ecs.First(w, component.SirenPlayerComponent.Kind())
	if !ok {
		return
	}
	sp, _ := ecs.Get(w, e, component.SirenPlayerComponent.Kind())

	desired := assets.SirenForPellets(session.PelletsEaten)
	if frightActive(w) {
		desired = assets.TrackFright
	}
	if eyesActive(w) {
		desired = assets.TrackEyes
	}

	step := sp.FadeStep
	if step <= 0 {
		step = 0.05
	}

	if desired != sp.CurrentTrack && !sp.PendingActive {
		sp.PendingTrack = desired
		sp.PendingActive = true
	}

	current := sp.Players[sp.CurrentTrack]
	switch {
	case sp.PendingActive:
		sp.CurrentVolume -= step
		if sp.CurrentVolume <= 0 {
			sp.CurrentVolume = 0
			if current != nil {
				current.Pause()
			}
			sp.CurrentTrack = sp.PendingTrack
			sp.PendingActive = false
			if next := sp.Players[sp.CurrentTrack]; next != nil {
				next.SetVolume(0)
				next.Play()
			}
		}
	case sp.CurrentVolume < 1:
		sp.CurrentVolume += step
		if sp.CurrentVolume > 1 {
			sp.CurrentVolume = 1
		}
	}

	if p := sp.Players[sp.CurrentTrack]; p != nil {
		p.SetVolume(sp.CurrentVolume)
		if !sp.PendingActive && !p.IsPlaying() {
			p.Play()
		}
	}
}

func eyesActive(w *ecs.World) bool {
	active := false
	ecs.ForEach(w, component.GhostComponent.Kind(), func(_ ecs.Entity, g *component.Ghost) {
		if g.Mode == component.ModeEyes {
			active = true
		}
	})
	return active
}
