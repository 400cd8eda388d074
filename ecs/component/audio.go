package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds an entity's sound effects. Systems set Play/Stop flags; the
// audio system services them once per tick.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Trigger requests playback of a named effect.
func (a *Audio) Trigger(name string) {
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return
		}
	}
}

var AudioComponent = NewComponent[Audio]()

// SirenPlayer owns the single looping background track. Only one track
// plays at a time; switches fade the old track out first.
type SirenPlayer struct {
	Players map[string]*audio.Player

	CurrentTrack  string
	CurrentVolume float64

	PendingTrack  string
	PendingActive bool
	FadeStep      float64
}

var SirenPlayerComponent = NewComponent[SirenPlayer]()
