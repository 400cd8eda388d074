package component

import "pacman/maze"

// GhostName identifies one of the four ghosts.
type GhostName int

const (
	Blinky GhostName = iota
	Pinky
	Inky
	Clyde
)

func (n GhostName) String() string {
	switch n {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	default:
		return "clyde"
	}
}

// GhostMode is a ghost's behavior state.
type GhostMode int

const (
	ModeInHouse GhostMode = iota
	ModeLeavingHouse
	ModeScatter
	ModeChase
	ModeFrightened
	ModeEyes
)

func (m GhostMode) String() string {
	switch m {
	case ModeInHouse:
		return "in_house"
	case ModeLeavingHouse:
		return "leaving_house"
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	default:
		return "eyes"
	}
}

// Ghost carries one ghost's identity and planning state. Directions is the
// planned queue: index 0 is the move being executed, index 1 the committed
// move through the next tile; the planner appends one more each tile edge.
type Ghost struct {
	Name GhostName
	Mode GhostMode

	Directions []maze.Direction

	// ScatterTarget is the fixed corner this ghost retreats to.
	ScatterTarget maze.Location
	// Home is the in-house resting spot (and revive point for eyes).
	Home maze.Location

	// DotCounter counts pellets eaten while this ghost waits in the house.
	DotCounter int
	// ExitDots is the pellet count that releases this ghost.
	ExitDots int

	// FrightTicks counts down frightened mode; Flashing is the tail end.
	FrightTicks int
	Flashing    bool
}

var GhostComponent = NewComponent[Ghost]()
