package main

import (
	"testing"

	"pacman/ecs"
	"pacman/ecs/component"
)

func TestAbortRoutesThroughGameOver(t *testing.T) {
	g := &Game{
		sess:   &component.Session{Score: 1500, Lives: 2},
		world:  ecs.NewWorld(),
		visual: ecs.NewScheduler(),
		state:  statePlaying,
	}

	g.abortToGameOver()

	if g.state != stateGameOver {
		t.Fatalf("state = %d, want game over", g.state)
	}
	if g.stateTicks != gameOverSignTicks {
		t.Fatalf("stateTicks = %d, want %d", g.stateTicks, gameOverSignTicks)
	}
	if _, ok := ecs.First(g.world, component.GameOverSignComponent.Kind()); !ok {
		t.Fatal("no game over sign on the board")
	}

	// The sign runs its course, then the score reaches name entry.
	for i := 0; i < gameOverSignTicks; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if g.state != stateNameEntry {
		t.Fatalf("state = %d, want name entry for a scoring run", g.state)
	}
}
