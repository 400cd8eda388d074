package component

// Player marks the player entity.
type Player struct {
	// Blocked is set while a wall stops the player at a tile center.
	Blocked bool
	// DeadTicks counts down the death animation; zero means alive.
	DeadTicks int
}

var PlayerComponent = NewComponent[Player]()
