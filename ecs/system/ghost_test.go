package system

import (
	"testing"

	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/maze"
)

// ringBoard is a 7x7 loop corridor around a walled center with the ghost
// house at the bottom of the island.
const ringBoard = `#######
#     #
# #D# #
# #H# #
# ### #
#     #
#######`

// crossBoard has an open 3x3 room for planner choice tests.
const crossBoard = `#####
#   #
#D  #
#H  #
#####`

func mustParse(t *testing.T, text string) *maze.Map {
	t.Helper()
	m, err := maze.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func newTestWorld(level int) (*ecs.World, *component.Session) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	sess := &component.Session{Lives: 3}
	sess.Levels.Current = level
	ecs.Add(w, e, component.SessionComponent.Kind(), sess)
	return w, sess
}

func spawnTestPlayer(t *testing.T, w *ecs.World, loc maze.Location, dir maze.Direction) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{})
	ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Loc: loc})
	ecs.Add(w, e, component.HeadingComponent.Kind(), &component.Heading{Dir: dir})
	ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
	ecs.Add(w, e, component.SpeedComponent.Kind(), component.NewSpeed(0.8))
	return e
}

func spawnTestGhost(t *testing.T, w *ecs.World, name component.GhostName, loc maze.Location, dir maze.Direction, mode component.GhostMode) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.GhostComponent.Kind(), &component.Ghost{
		Name:          name,
		Mode:          mode,
		Directions:    []maze.Direction{dir},
		ScatterTarget: maze.Loc(1, 5),
	})
	ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Loc: loc})
	ecs.Add(w, e, component.HeadingComponent.Kind(), &component.Heading{Dir: dir})
	ecs.Add(w, e, component.SpeedComponent.Kind(), component.NewSpeed(1.05))
	return e
}

func TestDefaultChaseTarget(t *testing.T) {
	tests := []struct {
		name  string
		ghost component.GhostName
		ctx   TargetContext
		want  maze.Location
	}{
		{
			name:  "blinky_targets_player",
			ghost: component.Blinky,
			ctx:   TargetContext{Player: maze.Loc(10, 10)},
			want:  maze.Loc(10, 10),
		},
		{
			name:  "pinky_targets_four_ahead",
			ghost: component.Pinky,
			ctx:   TargetContext{Player: maze.Loc(10, 10), PlayerDir: maze.Up},
			want:  maze.Loc(10, 14),
		},
		{
			name:  "inky_doubles_blinky_vector",
			ghost: component.Inky,
			ctx:   TargetContext{Player: maze.Loc(4, 4), PlayerDir: maze.Right, Blinky: maze.Loc(0, 0)},
			want:  maze.Loc(12, 8),
		},
		{
			name:  "clyde_far_chases",
			ghost: component.Clyde,
			ctx:   TargetContext{Player: maze.Loc(0, 0), Ghost: maze.Loc(10, 0), Scatter: maze.Loc(0, -1)},
			want:  maze.Loc(0, 0),
		},
		{
			name:  "clyde_near_retreats",
			ghost: component.Clyde,
			ctx:   TargetContext{Player: maze.Loc(0, 0), Ghost: maze.Loc(4, 0), Scatter: maze.Loc(0, -1)},
			want:  maze.Loc(0, -1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultChaseTarget(tt.ghost, tt.ctx); got != tt.want {
				t.Fatalf("target = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChooseGreedy(t *testing.T) {
	m := mustParse(t, crossBoard)
	ai := NewGhostAI(m, nil)
	g := &component.Ghost{Mode: component.ModeChase}

	tests := []struct {
		name     string
		target   maze.Location
		arriving maze.Direction
		want     maze.Direction
	}{
		{name: "below", target: maze.Loc(2, 0), arriving: maze.Right, want: maze.Down},
		{name: "right", target: maze.Loc(4, 2), arriving: maze.Right, want: maze.Right},
		{name: "above", target: maze.Loc(2, 4), arriving: maze.Right, want: maze.Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ai.choose(maze.Loc(2, 2), tt.arriving, tt.target, g)
			if got != tt.want {
				t.Fatalf("choose = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChooseNeverReverses(t *testing.T) {
	m := mustParse(t, crossBoard)
	ai := NewGhostAI(m, nil)
	g := &component.Ghost{Mode: component.ModeChase}

	// Target directly behind: the planner must pick a non-reversing detour.
	got := ai.choose(maze.Loc(2, 2), maze.Right, maze.Loc(1, 2), g)
	if got == maze.Left {
		t.Fatal("planner reversed into its own tail")
	}
}

func TestChooseDeadEndTurnsAround(t *testing.T) {
	m := mustParse(t, "#####\n# # #\n#H#D#\n# # #\n#####")
	ai := NewGhostAI(m, nil)
	g := &component.Ghost{Mode: component.ModeChase}

	got := ai.choose(maze.Loc(1, 1), maze.Down, maze.Loc(3, 1), g)
	if got != maze.Up {
		t.Fatalf("choose = %v, want reversal out of the dead end", got)
	}
}

func TestFrightenGhosts(t *testing.T) {
	w, sess := newTestWorld(1)
	chasing := spawnTestGhost(t, w, component.Blinky, maze.Loc(1, 1), maze.Left, component.ModeChase)
	eyes := spawnTestGhost(t, w, component.Pinky, maze.Loc(5, 1), maze.Left, component.ModeEyes)
	sess.GhostChain = 2

	FrightenGhosts(w, sess)

	g, _ := ecs.Get(w, chasing, component.GhostComponent.Kind())
	if g.Mode != component.ModeFrightened {
		t.Fatalf("mode = %v, want frightened", g.Mode)
	}
	if want := 6 * TicksPerSecond; g.FrightTicks != want {
		t.Fatalf("FrightTicks = %d, want %d", g.FrightTicks, want)
	}
	if len(g.Directions) != 1 || g.Directions[0] != maze.Right {
		t.Fatalf("Directions = %v, want reversal to [right]", g.Directions)
	}
	if sess.GhostChain != 0 {
		t.Fatalf("GhostChain = %d, want reset", sess.GhostChain)
	}

	e, _ := ecs.Get(w, eyes, component.GhostComponent.Kind())
	if e.Mode != component.ModeEyes {
		t.Fatalf("eyes ghost flipped to %v", e.Mode)
	}
}

func TestFrightenGhostsLateLevels(t *testing.T) {
	w, sess := newTestWorld(19)
	e := spawnTestGhost(t, w, component.Blinky, maze.Loc(1, 1), maze.Left, component.ModeChase)

	FrightenGhosts(w, sess)

	g, _ := ecs.Get(w, e, component.GhostComponent.Kind())
	if g.Mode != component.ModeChase {
		t.Fatalf("mode = %v, want chase: no fright time on level 19", g.Mode)
	}
}

func TestScatterChaseSchedule(t *testing.T) {
	m := mustParse(t, ringBoard)
	ai := NewGhostAI(m, nil)
	w, sess := newTestWorld(1)
	e := spawnTestGhost(t, w, component.Blinky, maze.Loc(1, 1), maze.Left, component.ModeScatter)

	if ai.globalMode() != component.ModeScatter {
		t.Fatal("schedule must open in scatter")
	}
	for i := 0; i < 7*TicksPerSecond; i++ {
		ai.advancePhase(w, sess)
	}
	if ai.globalMode() != component.ModeChase {
		t.Fatal("first scatter phase should last 7 seconds")
	}
	g, _ := ecs.Get(w, e, component.GhostComponent.Kind())
	if g.Mode != component.ModeChase {
		t.Fatalf("ghost mode = %v, want chase after switch", g.Mode)
	}
	if len(g.Directions) != 1 || g.Directions[0] != maze.Right {
		t.Fatalf("Directions = %v, want reversal on switch", g.Directions)
	}

	// Exhaust the whole table: chase becomes permanent.
	for i := 0; i < 90*TicksPerSecond; i++ {
		ai.advancePhase(w, sess)
	}
	if !ai.chaseForever || ai.globalMode() != component.ModeChase {
		t.Fatal("schedule should end in permanent chase")
	}
}

func TestGhostRoamStaysOnOpenTiles(t *testing.T) {
	m := mustParse(t, ringBoard)
	ai := NewGhostAI(m, nil)
	w, _ := newTestWorld(1)
	spawnTestPlayer(t, w, maze.Loc(5, 5), maze.Left)
	e := spawnTestGhost(t, w, component.Blinky, maze.Loc(1, 1), maze.Right, component.ModeScatter)

	start := maze.Loc(1, 1)
	for i := 0; i < 200; i++ {
		ai.Update(w)
		pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
		if pos.Loc.IsTileCenter() && m.Blocked(pos.Loc) {
			t.Fatalf("tick %d: ghost on blocked tile %v", i, pos.Loc)
		}
	}
	pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
	if pos.Loc == start {
		t.Fatal("ghost never moved")
	}
}

func TestEyesReviveInHouse(t *testing.T) {
	m := mustParse(t, ringBoard)
	ai := NewGhostAI(m, nil)
	w, _ := newTestWorld(1)
	spawnTestPlayer(t, w, maze.Loc(5, 5), maze.Left)

	// Start the eyes right at the house exit tile.
	e := spawnTestGhost(t, w, component.Pinky, m.HouseExit(), maze.Left, component.ModeEyes)

	for i := 0; i < 10*TicksPerSecond; i++ {
		ai.Update(w)
		g, _ := ecs.Get(w, e, component.GhostComponent.Kind())
		if g.Mode != component.ModeEyes {
			return
		}
	}
	t.Fatal("eyes never made it back into the house")
}
