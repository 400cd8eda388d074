// Package system holds the fixed-tick gameplay systems. Systems communicate
// through components; one-shot notifications for the outer game loop go
// through the world event queue.
package system

import "pacman/levels"

// Event types drained by the game loop after each tick.
const (
	EventPelletEaten  = "pellet_eaten"
	EventGhostEaten   = "ghost_eaten"
	EventFruitEaten   = "fruit_eaten"
	EventPlayerDied   = "player_died"
	EventExtraLife    = "extra_life"
	EventLevelCleared = "level_cleared"
)

// PelletEaten is the payload for EventPelletEaten.
type PelletEaten struct {
	Power bool
}

// GhostEaten is the payload for EventGhostEaten.
type GhostEaten struct {
	Points int
}

// FruitEaten is the payload for EventFruitEaten.
type FruitEaten struct {
	Symbol levels.Symbol
	Points int
}
