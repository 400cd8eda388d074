package maze

import (
	_ "embed"
	"fmt"
	"math"
	"strings"
)

// Tile is one cell of the board.
type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TileGhostHouse
	TileGhostHouseDoor
)

// PelletSpawn marks a cell that starts the level with a pellet on it.
type PelletSpawn struct {
	Loc   Location
	Power bool
}

// Map is the parsed board. Tiles are addressed by rounded location, y up.
type Map struct {
	width   int
	height  int
	tiles   []Tile
	pellets []PelletSpawn

	doorX     float64
	doorY     float64
	houseMinX float64
	houseMaxX float64
	houseY    float64
}

//go:embed board.txt
var boardText string

// Default parses the embedded board. The board ships with the binary, so a
// parse failure is a programming error.
func Default() *Map {
	m, err := Parse(boardText)
	if err != nil {
		panic(fmt.Sprintf("maze: embedded board: %v", err))
	}
	return m
}

// Parse reads an ASCII board. Rows run top to bottom; every row must have the
// same length. '#' walls, ' ' corridor, '.' pellet, 'o' energizer, 'H' ghost
// house interior, 'D' house door.
func Parse(text string) (*Map, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("maze: empty board")
	}
	height := len(lines)
	width := len(lines[0])

	m := &Map{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}

	var doorXs, doorYs []float64
	var houseXs, houseYs []float64

	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("maze: row %d has length %d, want %d", row, len(line), width)
		}
		y := height - 1 - row
		for x := 0; x < width; x++ {
			var t Tile
			switch line[x] {
			case '#', 'W':
				t = TileWall
			case ' ':
				t = TileEmpty
			case '.':
				t = TileEmpty
				m.pellets = append(m.pellets, PelletSpawn{Loc: Loc(float64(x), float64(y))})
			case 'o':
				t = TileEmpty
				m.pellets = append(m.pellets, PelletSpawn{Loc: Loc(float64(x), float64(y)), Power: true})
			case 'H':
				t = TileGhostHouse
				houseXs = append(houseXs, float64(x))
				houseYs = append(houseYs, float64(y))
			case 'D':
				t = TileGhostHouseDoor
				doorXs = append(doorXs, float64(x))
				doorYs = append(doorYs, float64(y))
			default:
				return nil, fmt.Errorf("maze: invalid character %q at row %d col %d", line[x], row, x)
			}
			m.tiles[y*width+x] = t
		}
	}

	if len(doorXs) == 0 || len(houseXs) == 0 {
		return nil, fmt.Errorf("maze: board has no ghost house")
	}
	m.doorX = mean(doorXs)
	m.doorY = mean(doorYs)
	m.houseMinX = minOf(houseXs)
	m.houseMaxX = maxOf(houseXs)
	m.houseY = mean(houseYs)

	return m, nil
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

// Pellets returns the pellet spawn list for a fresh level.
func (m *Map) Pellets() []PelletSpawn {
	out := make([]PelletSpawn, len(m.pellets))
	copy(out, m.pellets)
	return out
}

// HouseCenter is where revived ghosts wait, between the door and the floor.
func (m *Map) HouseCenter() Location {
	return Loc(m.doorX, m.houseY)
}

// HouseExit is the first corridor tile above the door.
func (m *Map) HouseExit() Location {
	return Loc(m.doorX, m.doorY+1)
}

// DoorCenter is the middle of the ghost house door.
func (m *Map) DoorCenter() Location {
	return Loc(m.doorX, m.doorY)
}

func (m *Map) at(loc Location) (Tile, bool) {
	x := math.Round(loc.X)
	y := math.Round(loc.Y)
	if x < 0 || y < 0 || int(x) >= m.width || int(y) >= m.height {
		return TileEmpty, false
	}
	return m.tiles[int(y)*m.width+int(x)], true
}

// Blocked reports whether characters cannot enter the tile at loc. Tiles
// outside the board count as open so the tunnel keeps working.
func (m *Map) Blocked(loc Location) bool {
	t, ok := m.at(loc)
	if !ok {
		return false
	}
	return t != TileEmpty
}

// BlockedForEyes is Blocked for eaten ghosts, which may pass the door and
// enter the house.
func (m *Map) BlockedForEyes(loc Location) bool {
	t, ok := m.at(loc)
	if !ok {
		return false
	}
	return t == TileWall
}

// InHouse reports whether loc is inside the ghost house interior.
func (m *Map) InHouse(loc Location) bool {
	t, ok := m.at(loc)
	return ok && (t == TileGhostHouse || t == TileGhostHouseDoor)
}

// InMap reports whether loc is inside the outer walls. The tunnel beyond them
// is not in the map.
func (m *Map) InMap(loc Location) bool {
	return m.xInMap(loc.X) && m.yInMap(loc.Y)
}

func (m *Map) xInMap(x float64) bool {
	return x > 0 && x < float64(m.width-1)
}

func (m *Map) yInMap(y float64) bool {
	return y > 0 && y < float64(m.height-1)
}

// PossibleDirections lists the headings a character at loc may take. Exactly
// halfway between two tiles only the crossing axis is available; elsewhere
// every heading whose next tile is open.
func (m *Map) PossibleDirections(loc Location) []Direction {
	if fract(loc.X) == 0.5 || !m.xInMap(loc.X) {
		return []Direction{Left, Right}
	}
	if fract(loc.Y) == 0.5 || !m.yInMap(loc.Y) {
		return []Direction{Up, Down}
	}

	out := make([]Direction, 0, 4)
	for _, d := range Directions() {
		if !m.Blocked(loc.NextTile(d)) {
			out = append(out, d)
		}
	}
	return out
}

// Wrap teleports a location that left the board through a tunnel to the
// opposite side, preserving the overshoot.
func (m *Map) Wrap(loc Location) Location {
	w := float64(m.width)
	h := float64(m.height)

	if loc.X <= -2 {
		loc.X = w + 1 + (loc.X + 2)
	} else if loc.X >= w+1 {
		loc.X = -2 + (loc.X - (w + 1))
	}

	if loc.Y <= -2 {
		loc.Y = h + 1 + (loc.Y + 2)
	} else if loc.Y >= h+1 {
		loc.Y = -2 + (loc.Y - (h + 1))
	}

	return loc
}

func mean(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func minOf(vs []float64) float64 {
	out := vs[0]
	for _, v := range vs[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

func maxOf(vs []float64) float64 {
	out := vs[0]
	for _, v := range vs[1:] {
		if v > out {
			out = v
		}
	}
	return out
}
