package maze

import "math"

// AdvancementDelta is the distance a character covers in one full-speed tick,
// in tiles. All locations stay on multiples of this delta, which is exactly
// representable in a float64, so equality checks below are exact.
const AdvancementDelta = 1.0 / 8.0

// Location is a position on the board in tile units. Integer coordinates are
// tile centers; y grows upward.
type Location struct {
	X float64
	Y float64
}

// Loc is shorthand for a literal location.
func Loc(x, y float64) Location {
	return Location{X: x, Y: y}
}

func (l Location) Add(o Location) Location {
	return Location{X: l.X + o.X, Y: l.Y + o.Y}
}

func (l Location) Sub(o Location) Location {
	return Location{X: l.X - o.X, Y: l.Y - o.Y}
}

func (l Location) Scale(f float64) Location {
	return Location{X: l.X * f, Y: l.Y * f}
}

// DistSq returns the squared distance to o.
func (l Location) DistSq(o Location) float64 {
	dx := l.X - o.X
	dy := l.Y - o.Y
	return dx*dx + dy*dy
}

// Tile returns the center of the tile the location is inside of when moving
// in the given direction. A location exactly between two tiles belongs to the
// tile it is entering.
func (l Location) Tile(d Direction) Location {
	in := l.Add(d.Vector().Scale(0.01))
	return Location{X: math.Round(in.X), Y: math.Round(in.Y)}
}

// NextTile returns the center of the tile after the current one in the given
// direction.
func (l Location) NextTile(d Direction) Location {
	return l.Tile(d).Add(d.Vector())
}

// Advance moves the location one advancement delta in the given direction.
func (l Location) Advance(d Direction) Location {
	return l.Add(d.Vector().Scale(AdvancementDelta))
}

// IsTileCenter reports whether the location sits exactly on a tile center.
func (l Location) IsTileCenter() bool {
	return fract(l.X) == 0 && fract(l.Y) == 0
}

// fract returns the fractional part of v, in [0, 1).
func fract(v float64) float64 {
	return v - math.Floor(v)
}
