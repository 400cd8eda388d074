package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/maze"
)

const stickDeadzone = 0.5

// Input samples the keyboard and any standard-layout gamepad into the
// player's Input component. Arrows and WASD both steer; the most recently
// listed pressed source wins.
type Input struct {
	pads []ebiten.GamepadID
}

func NewInput() *Input {
	return &Input{}
}

func (s *Input) Update(w *ecs.World) {
	s.pads = ebiten.AppendGamepadIDs(s.pads[:0])
	padDir, padOK := s.padDirection()

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		for _, b := range []struct {
			keys []ebiten.Key
			dir  maze.Direction
		}{
			{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, maze.Left},
			{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, maze.Right},
			{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, maze.Up},
			{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, maze.Down},
		} {
			for _, k := range b.keys {
				if ebiten.IsKeyPressed(k) {
					in.Want = b.dir
					in.Pressed = true
				}
			}
		}
		if padOK {
			in.Want = padDir
			in.Pressed = true
		}
	})
}

// padDirection reads the d-pad and left stick of the first standard-layout
// gamepad that is being pushed.
func (s *Input) padDirection() (maze.Direction, bool) {
	for _, id := range s.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		switch {
		case ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft):
			return maze.Left, true
		case ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight):
			return maze.Right, true
		case ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop):
			return maze.Up, true
		case ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom):
			return maze.Down, true
		}

		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if x*x+y*y < stickDeadzone*stickDeadzone {
			continue
		}
		if x*x > y*y {
			if x < 0 {
				return maze.Left, true
			}
			return maze.Right, true
		}
		// Stick y grows downward.
		if y < 0 {
			return maze.Up, true
		}
		return maze.Down, true
	}
	return maze.Left, false
}
