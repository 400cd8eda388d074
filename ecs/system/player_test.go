package system

import (
	"testing"

	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/maze"
)

func TestPlayerStopsAtWalls(t *testing.T) {
	m := mustParse(t, ringBoard)
	sys := NewPlayerMovement(m)
	w, _ := newTestWorld(1)
	e := spawnTestPlayer(t, w, maze.Loc(1, 1), maze.Left)

	for i := 0; i < 10; i++ {
		sys.Update(w)
	}

	pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
	if pos.Loc != maze.Loc(1, 1) {
		t.Fatalf("player moved into a wall: %v", pos.Loc)
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !p.Blocked {
		t.Fatal("Blocked flag not set")
	}
}

func TestPlayerAdvancesAtLevelSpeed(t *testing.T) {
	m := mustParse(t, ringBoard)
	sys := NewPlayerMovement(m)
	w, _ := newTestWorld(1)
	e := spawnTestPlayer(t, w, maze.Loc(1, 1), maze.Right)

	const ticks = 21
	for i := 0; i < ticks; i++ {
		sys.Update(w)
	}

	pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
	steps := (pos.Loc.X - 1) / maze.AdvancementDelta
	// Level 1 player speed is 0.8 of the 1.05 scale: roughly 16 of 21 ticks.
	if steps < 14 || steps > 17 {
		t.Fatalf("advanced %v steps in %d ticks, want about 16", steps, ticks)
	}
}

func TestPlayerTurnsAtTileCenter(t *testing.T) {
	m := mustParse(t, ringBoard)
	sys := NewPlayerMovement(m)
	w, _ := newTestWorld(1)
	e := spawnTestPlayer(t, w, maze.Loc(1, 1), maze.Right)

	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	in.Want = maze.Up
	in.Pressed = true

	sys.Update(w)

	heading, _ := ecs.Get(w, e, component.HeadingComponent.Kind())
	if heading.Dir != maze.Up {
		t.Fatalf("heading = %v, want up", heading.Dir)
	}
}

func TestPlayerIgnoresTurnIntoWall(t *testing.T) {
	m := mustParse(t, ringBoard)
	sys := NewPlayerMovement(m)
	w, _ := newTestWorld(1)
	e := spawnTestPlayer(t, w, maze.Loc(2, 1), maze.Right)

	// (2,2) is the walled island: the up-turn must not commit.
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	in.Want = maze.Up
	in.Pressed = true

	sys.Update(w)

	heading, _ := ecs.Get(w, e, component.HeadingComponent.Kind())
	if heading.Dir != maze.Right {
		t.Fatalf("heading = %v, want unchanged right", heading.Dir)
	}
}

func TestPlayerReversesBetweenCenters(t *testing.T) {
	m := mustParse(t, ringBoard)
	sys := NewPlayerMovement(m)
	w, _ := newTestWorld(1)
	e := spawnTestPlayer(t, w, maze.Loc(2.5, 1), maze.Right)

	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	in.Want = maze.Left
	in.Pressed = true

	sys.Update(w)

	heading, _ := ecs.Get(w, e, component.HeadingComponent.Kind())
	if heading.Dir != maze.Left {
		t.Fatalf("heading = %v, want immediate reversal", heading.Dir)
	}
}

func TestPlayerCornersTowardCenter(t *testing.T) {
	m := mustParse(t, crossBoard)
	sys := NewPlayerMovement(m)
	w, _ := newTestWorld(1)
	e := spawnTestPlayer(t, w, maze.Loc(2.25, 2), maze.Up)

	for i := 0; i < 20; i++ {
		sys.Update(w)
	}

	pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
	if pos.Loc.X != 2 {
		t.Fatalf("x = %v, want drift back to the corridor center", pos.Loc.X)
	}
	if pos.Loc.Y != 3 {
		t.Fatalf("y = %v, want to stop below the top wall", pos.Loc.Y)
	}
}

func TestTunnelWrapsCharacters(t *testing.T) {
	m := mustParse(t, ringBoard)
	sys := NewTunnel(m)
	w, _ := newTestWorld(1)
	e := spawnTestPlayer(t, w, maze.Loc(-2, 1), maze.Left)

	hud := ecs.CreateEntity(w)
	ecs.Add(w, hud, component.PositionComponent.Kind(), &component.Position{Loc: maze.Loc(-2, 1)})
	ecs.Add(w, hud, component.HeadingComponent.Kind(), &component.Heading{})
	ecs.Add(w, hud, component.NoWrapComponent.Kind(), &component.NoWrap{})

	sys.Update(w)

	pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
	if pos.Loc != maze.Loc(8, 1) {
		t.Fatalf("wrapped to %v, want (8,1)", pos.Loc)
	}
	hudPos, _ := ecs.Get(w, hud, component.PositionComponent.Kind())
	if hudPos.Loc != maze.Loc(-2, 1) {
		t.Fatalf("NoWrap entity moved to %v", hudPos.Loc)
	}
}
