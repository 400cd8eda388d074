package component

import "pacman/maze"

// Position is a board location in tile units.
type Position struct {
	Loc maze.Location
}

var PositionComponent = NewComponent[Position]()

// Heading is the direction a character currently moves in.
type Heading struct {
	Dir maze.Direction
}

var HeadingComponent = NewComponent[Heading]()
