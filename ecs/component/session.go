package component

import "pacman/levels"

// Session is the singleton game session state.
type Session struct {
	Score     int
	HighScore int
	Lives     int

	Levels levels.Levels

	// PelletsEaten counts pellets eaten this level; PelletsLeft counts
	// pellets still on the board.
	PelletsEaten int
	PelletsLeft  int

	// GhostChain counts ghosts eaten on the current energizer (0-4).
	GhostChain int
	// GhostsEatenTotal counts ghosts eaten this level; 16 awards a bonus.
	GhostsEatenTotal int

	ExtraLifeAwarded bool

	// PauseTicks freezes the game loop briefly after a ghost is eaten.
	PauseTicks int
}

var SessionComponent = NewComponent[Session]()
