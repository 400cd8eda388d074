package component

import "pacman/levels"

// Bonus is the fruit that appears mid-level.
type Bonus struct {
	Symbol levels.Symbol
	// Ticks counts down until the fruit despawns.
	Ticks int
}

var BonusComponent = NewComponent[Bonus]()
