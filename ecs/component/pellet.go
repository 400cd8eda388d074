package component

// Pellet is a dot on the board; Power marks an energizer.
type Pellet struct {
	Power bool
}

var PelletComponent = NewComponent[Pellet]()
