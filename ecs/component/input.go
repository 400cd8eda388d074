package component

import "pacman/maze"

// Input stores the direction the player asked for this frame.
type Input struct {
	Want    maze.Direction
	Pressed bool
}

var InputComponent = NewComponent[Input]()
