package component

// Blink toggles the sprite's visibility on a fixed tick interval.
type Blink struct {
	IntervalTicks int
	Timer         int
}

var BlinkComponent = NewComponent[Blink]()
