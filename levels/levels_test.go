package levels

import "testing"

func TestSpeedTable(t *testing.T) {
	cases := []struct {
		name   string
		level  int
		check  func(l *Levels) float64
		want   float64
	}{
		{"player_level1", 1, (*Levels).PlayerSpeed, 0.8},
		{"player_level5", 5, (*Levels).PlayerSpeed, 1.0},
		{"player_level21", 21, (*Levels).PlayerSpeed, 0.9},
		{"ghost_level1", 1, (*Levels).GhostNormalSpeed, 0.75},
		{"ghost_level3", 3, (*Levels).GhostNormalSpeed, 0.85},
		{"tunnel_level1", 1, (*Levels).GhostTunnelSpeed, 0.4},
		{"fright_ghost_level9", 9, (*Levels).GhostFrightSpeed, 0.6},
		{"elroy1_level1", 1, (*Levels).Elroy1Speed, 0.8},
		{"elroy2_level9", 9, (*Levels).Elroy2Speed, 1.05},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := &Levels{Current: c.level}
			if got := c.check(l); got != c.want {
				t.Fatalf("level %d: got %v, want %v", c.level, got, c.want)
			}
		})
	}
}

func TestFrightTiming(t *testing.T) {
	if got := (&Levels{Current: 1}).FrightSeconds(); got != 6 {
		t.Fatalf("level 1 fright = %v, want 6", got)
	}
	if got := (&Levels{Current: 19}).FrightSeconds(); got != 0 {
		t.Fatalf("level 19 fright = %v, want 0", got)
	}
	if got := (&Levels{Current: 9}).FrightFlashes(); got != 3 {
		t.Fatalf("level 9 flashes = %v, want 3", got)
	}
}

func TestModeSchedule(t *testing.T) {
	l := &Levels{Current: 1}
	want := []float64{7, 20, 7, 20, 5, 20, 5}
	for i, sec := range want {
		got, ok := l.ModeSwitchSeconds(i)
		if !ok || got != sec {
			t.Fatalf("phase %d: got %v ok=%v, want %v", i, got, ok, sec)
		}
	}
	if _, ok := l.ModeSwitchSeconds(len(want)); ok {
		t.Fatal("schedule should end after the final phase")
	}
}

func TestHouseExitDots(t *testing.T) {
	if got := (&Levels{Current: 1}).InkyHomeExitDots(); got != 30 {
		t.Fatalf("inky level 1 = %d, want 30", got)
	}
	if got := (&Levels{Current: 2}).ClydeHomeExitDots(); got != 50 {
		t.Fatalf("clyde level 2 = %d, want 50", got)
	}
	if got := (&Levels{Current: 3}).ClydeHomeExitDots(); got != 0 {
		t.Fatalf("clyde level 3 = %d, want 0", got)
	}
}

func TestBonusSymbols(t *testing.T) {
	cases := []struct {
		level int
		want  Symbol
	}{
		{1, Cherries}, {2, Strawberry}, {3, Peach}, {5, Apple},
		{7, Grapes}, {9, Galaxian}, {11, Bell}, {13, Key}, {40, Key},
	}
	for _, c := range cases {
		l := &Levels{Current: c.level}
		if got := l.BonusSymbol(); got != c.want {
			t.Fatalf("level %d symbol = %v, want %v", c.level, got, c.want)
		}
	}

	counter := (&Levels{Current: 2}).CounterSymbols()
	if len(counter) != 2 || counter[0] != Strawberry || counter[1] != Cherries {
		t.Fatalf("counter symbols = %v", counter)
	}
	if got := (&Levels{Current: 30}).CounterSymbols(); len(got) != 7 {
		t.Fatalf("counter should cap at 7, got %d", len(got))
	}
}

func TestSymbolPoints(t *testing.T) {
	if Cherries.Points() != 100 || Key.Points() != 5000 {
		t.Fatal("symbol points table is wrong")
	}
}
