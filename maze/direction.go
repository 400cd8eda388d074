package maze

// Direction is one of the four grid headings.
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions returns all headings in planning order.
func Directions() [4]Direction {
	return [4]Direction{Left, Up, Right, Down}
}

// Vector returns the unit location delta for the heading. Y grows upward.
func (d Direction) Vector() Location {
	switch d {
	case Up:
		return Location{X: 0, Y: 1}
	case Left:
		return Location{X: -1, Y: 0}
	case Down:
		return Location{X: 0, Y: -1}
	default:
		return Location{X: 1, Y: 0}
	}
}

// Opposite returns the reversed heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Horizontal reports whether the heading moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Rotation returns the sprite rotation in radians for a sprite drawn facing left.
func (d Direction) Rotation() float64 {
	const quarter = 3.14159265358979323846 / 2
	switch d {
	case Left:
		return 0
	case Down:
		return quarter
	case Right:
		return 2 * quarter
	default:
		return 3 * quarter
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}
