// Package levels holds the per-level tuning table: character speeds,
// frightened timing, ghost house exit counters, and bonus symbols.
package levels

// Symbol is a bonus fruit kind.
type Symbol int

const (
	Cherries Symbol = iota
	Strawberry
	Peach
	Apple
	Grapes
	Galaxian
	Bell
	Key
)

// Points returns the score for eating the symbol.
func (s Symbol) Points() int {
	switch s {
	case Cherries:
		return 100
	case Strawberry:
		return 300
	case Peach:
		return 500
	case Apple:
		return 700
	case Grapes:
		return 1000
	case Galaxian:
		return 2000
	case Bell:
		return 3000
	default:
		return 5000
	}
}

func (s Symbol) String() string {
	switch s {
	case Cherries:
		return "cherries"
	case Strawberry:
		return "strawberry"
	case Peach:
		return "peach"
	case Apple:
		return "apple"
	case Grapes:
		return "grapes"
	case Galaxian:
		return "galaxian"
	case Bell:
		return "bell"
	default:
		return "key"
	}
}

// Levels tracks the current level number, starting at 1 after the first
// Next call.
type Levels struct {
	Current int
}

// Reset returns to the pre-game state.
func (l *Levels) Reset() {
	l.Current = 0
}

// Next advances to the next level.
func (l *Levels) Next() {
	l.Current++
}

// PlayerSpeed is the player's speed fraction of full tick rate.
func (l *Levels) PlayerSpeed() float64 {
	switch {
	case l.Current == 1:
		return 0.8
	case l.Current >= 5 && l.Current <= 20:
		return 1.0
	default:
		return 0.9
	}
}

// PlayerFrightSpeed applies while ghosts are frightened.
func (l *Levels) PlayerFrightSpeed() float64 {
	switch {
	case l.Current == 1:
		return 0.9
	case l.Current >= 2 && l.Current <= 4:
		return 0.95
	default:
		return 1.0
	}
}

func (l *Levels) GhostNormalSpeed() float64 {
	switch {
	case l.Current == 1:
		return 0.75
	case l.Current >= 2 && l.Current <= 4:
		return 0.85
	default:
		return 0.95
	}
}

func (l *Levels) GhostTunnelSpeed() float64 {
	switch {
	case l.Current == 1:
		return 0.4
	case l.Current >= 2 && l.Current <= 4:
		return 0.45
	default:
		return 0.5
	}
}

func (l *Levels) GhostFrightSpeed() float64 {
	switch {
	case l.Current == 1:
		return 0.5
	case l.Current >= 2 && l.Current <= 4:
		return 0.55
	default:
		return 0.6
	}
}

// Elroy1Dots is the remaining-pellet count at which Blinky speeds up.
func (l *Levels) Elroy1Dots() int {
	switch {
	case l.Current == 1:
		return 20
	case l.Current == 2:
		return 30
	case l.Current <= 5:
		return 40
	case l.Current <= 8:
		return 50
	case l.Current <= 11:
		return 60
	case l.Current <= 14:
		return 80
	case l.Current <= 18:
		return 100
	default:
		return 120
	}
}

// Elroy2Dots is the remaining-pellet count for the second speedup.
func (l *Levels) Elroy2Dots() int {
	return l.Elroy1Dots() / 2
}

func (l *Levels) Elroy1Speed() float64 {
	switch {
	case l.Current == 1:
		return 0.8
	case l.Current >= 2 && l.Current <= 4:
		return 0.9
	default:
		return 1.0
	}
}

func (l *Levels) Elroy2Speed() float64 {
	switch {
	case l.Current == 1:
		return 0.85
	case l.Current >= 2 && l.Current <= 4:
		return 0.95
	default:
		return 1.05
	}
}

// FrightSeconds is how long an energizer lasts.
func (l *Levels) FrightSeconds() float64 {
	switch l.Current {
	case 1:
		return 6
	case 2, 6, 10:
		return 5
	case 3:
		return 4
	case 4, 14:
		return 3
	case 5, 7, 8, 11:
		return 2
	case 9, 12, 13, 15, 16, 18:
		return 1
	default:
		return 0
	}
}

// FrightFlashes is how many times frightened ghosts flash before reverting.
func (l *Levels) FrightFlashes() int {
	switch {
	case l.Current <= 8:
		return 5
	case l.Current == 9:
		return 3
	default:
		return 0
	}
}

// ModeSwitchSeconds returns the duration of phase index in the global
// scatter/chase schedule (even indexes scatter, odd chase), or false when
// the schedule is exhausted and chase lasts forever.
func (l *Levels) ModeSwitchSeconds(index int) (float64, bool) {
	var table [7]float64
	switch {
	case l.Current == 1:
		table = [7]float64{7, 20, 7, 20, 5, 20, 5}
	case l.Current >= 2 && l.Current <= 4:
		table = [7]float64{7, 20, 7, 20, 5, 1033, 1.0 / 60.0}
	default:
		table = [7]float64{5, 20, 5, 20, 5, 1037, 1.0 / 60.0}
	}
	if index < 0 || index >= len(table) {
		return 0, false
	}
	return table[index], true
}

// InkyHomeExitDots is how many pellets must be eaten before Inky leaves the
// ghost house.
func (l *Levels) InkyHomeExitDots() int {
	if l.Current == 1 {
		return 30
	}
	return 0
}

// ClydeHomeExitDots is Clyde's house exit counter.
func (l *Levels) ClydeHomeExitDots() int {
	switch l.Current {
	case 1:
		return 90
	case 2:
		return 50
	default:
		return 0
	}
}

// BonusSymbol is the fruit spawned on the current level.
func (l *Levels) BonusSymbol() Symbol {
	switch {
	case l.Current <= 1:
		return Cherries
	case l.Current == 2:
		return Strawberry
	case l.Current <= 4:
		return Peach
	case l.Current <= 6:
		return Apple
	case l.Current <= 8:
		return Grapes
	case l.Current <= 10:
		return Galaxian
	case l.Current <= 12:
		return Bell
	default:
		return Key
	}
}

// CounterSymbols lists the HUD level counter fruits, most recent first,
// capped at seven like the arcade HUD row.
func (l *Levels) CounterSymbols() []Symbol {
	start := l.Current
	if start < 1 {
		start = 1
	}
	out := make([]Symbol, 0, 7)
	for lvl := start; lvl >= 1 && len(out) < 7; lvl-- {
		out = append(out, (&Levels{Current: lvl}).BonusSymbol())
	}
	return out
}
