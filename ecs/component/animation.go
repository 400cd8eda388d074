package component

import "github.com/hajimehoshi/ebiten/v2"

// AnimationDef describes one clip on a horizontal strip sheet.
type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

// Animation advances frames on a sheet and writes them into the sprite.
type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

// Play switches to a clip, restarting it if it was not current.
func (a *Animation) Play(name string) {
	if a.Current == name && a.Playing {
		return
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
}

var AnimationComponent = NewComponent[Animation]()
