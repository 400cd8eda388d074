package system

import (
	"math"
	"math/rand"
	"time"

	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/maze"
)

// TicksPerSecond is the fixed simulation rate.
const TicksPerSecond = 78

// flashTicksPerFlash is the length of one white/blue flash at the end of
// frightened mode.
const flashTicksPerFlash = 28

// TargetContext carries everything a targeting rule may look at. All
// locations are tile centers.
type TargetContext struct {
	Ghost     maze.Location
	Player    maze.Location
	PlayerDir maze.Direction
	Blinky    maze.Location
	Scatter   maze.Location
}

// TargetFunc computes a chase target. Prefab scripts compile to one of
// these; the built-in rules are the default.
type TargetFunc func(TargetContext) maze.Location

// DefaultChaseTarget implements the four classic targeting rules.
func DefaultChaseTarget(name component.GhostName, ctx TargetContext) maze.Location {
	switch name {
	case component.Blinky:
		return ctx.Player
	case component.Pinky:
		return ctx.Player.Add(ctx.PlayerDir.Vector().Scale(4))
	case component.Inky:
		ahead := ctx.Player.Add(ctx.PlayerDir.Vector().Scale(2))
		return ctx.Blinky.Add(ahead.Sub(ctx.Blinky).Scale(2))
	default:
		// Clyde chases from afar and retreats inside eight tiles.
		if ctx.Ghost.DistSq(ctx.Player) > 64 {
			return ctx.Player
		}
		return ctx.Scatter
	}
}

// GhostAI drives the four ghosts: the global scatter/chase schedule, house
// waiting and leaving, frightened mode, eyes returning home, and the
// per-tile greedy planner.
type GhostAI struct {
	m         *maze.Map
	rng       *rand.Rand
	overrides map[component.GhostName]TargetFunc

	phaseIndex   int
	phaseTicks   int
	chaseForever bool
}

func NewGhostAI(m *maze.Map, overrides map[component.GhostName]TargetFunc) *GhostAI {
	return &GhostAI{
		m:         m,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		overrides: overrides,
	}
}

// SetOverrides swaps the targeting overrides, for prefab hot reload.
func (s *GhostAI) SetOverrides(overrides map[component.GhostName]TargetFunc) {
	s.overrides = overrides
}

func (s *GhostAI) Update(w *ecs.World) {
	session := currentSession(w)
	if session == nil {
		return
	}

	// The phase clock pauses while any ghost is frightened.
	if !frightActive(w) {
		s.advancePhase(w, session)
	}

	playerLoc, playerDir := playerTile(w)
	blinkyLoc := s.ghostTile(w, component.Blinky)

	ecs.ForEach(w, component.GhostComponent.Kind(), func(e ecs.Entity, g *component.Ghost) {
		pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
		if !ok {
			return
		}
		heading, ok := ecs.Get(w, e, component.HeadingComponent.Kind())
		if !ok {
			return
		}
		speed, ok := ecs.Get(w, e, component.SpeedComponent.Kind())
		if !ok {
			return
		}

		s.tickFright(g, session)
		s.setSpeed(g, pos.Loc, speed, session)
		speed.Tick()
		if speed.ShouldMiss {
			return
		}

		switch g.Mode {
		case component.ModeInHouse:
			s.houseBob(g, pos, heading)
		case component.ModeLeavingHouse:
			s.leaveHouse(g, pos, heading)
		case component.ModeEyes:
			if !s.eyesEnterHouse(g, pos, heading) {
				s.roam(g, pos, heading, s.eyesTarget())
			}
		default:
			ctx := TargetContext{
				Ghost:     pos.Loc.Tile(heading.Dir),
				Player:    playerLoc,
				PlayerDir: playerDir,
				Blinky:    blinkyLoc,
				Scatter:   g.ScatterTarget,
			}
			elroy := g.Name == component.Blinky &&
				session.PelletsLeft <= session.Levels.Elroy1Dots()
			s.roam(g, pos, heading, s.target(g, ctx, elroy))
		}
	})
}

// advancePhase runs the global scatter/chase clock and reverses free ghosts
// on every switch.
func (s *GhostAI) advancePhase(w *ecs.World, session *component.Session) {
	if s.chaseForever {
		return
	}
	seconds, ok := session.Levels.ModeSwitchSeconds(s.phaseIndex)
	if !ok {
		s.chaseForever = true
		return
	}
	s.phaseTicks++
	if float64(s.phaseTicks) < seconds*TicksPerSecond {
		return
	}
	s.phaseIndex++
	s.phaseTicks = 0
	if _, ok := session.Levels.ModeSwitchSeconds(s.phaseIndex); !ok {
		s.chaseForever = true
	}

	mode := s.globalMode()
	ecs.ForEach(w, component.GhostComponent.Kind(), func(e ecs.Entity, g *component.Ghost) {
		if g.Mode != component.ModeScatter && g.Mode != component.ModeChase {
			return
		}
		g.Mode = mode
		if heading, ok := ecs.Get(w, e, component.HeadingComponent.Kind()); ok {
			g.Directions = []maze.Direction{heading.Dir.Opposite()}
		}
	})
}

// globalMode is the schedule's current mode: even phases scatter, odd chase.
func (s *GhostAI) globalMode() component.GhostMode {
	if s.chaseForever || s.phaseIndex%2 == 1 {
		return component.ModeChase
	}
	return component.ModeScatter
}

func (s *GhostAI) tickFright(g *component.Ghost, session *component.Session) {
	if g.Mode != component.ModeFrightened {
		g.Flashing = false
		return
	}
	g.FrightTicks--
	if g.FrightTicks <= 0 {
		g.Mode = s.globalMode()
		g.Flashing = false
		return
	}
	window := session.Levels.FrightFlashes() * flashTicksPerFlash
	g.Flashing = g.FrightTicks <= window && (g.FrightTicks/(flashTicksPerFlash/2))%2 == 0
}

func (s *GhostAI) setSpeed(g *component.Ghost, loc maze.Location, speed *component.Speed, session *component.Session) {
	lv := &session.Levels
	switch g.Mode {
	case component.ModeEyes:
		speed.Set(1.05)
	case component.ModeInHouse, component.ModeLeavingHouse:
		speed.Set(0.5)
	case component.ModeFrightened:
		speed.Set(lv.GhostFrightSpeed())
	default:
		switch {
		case !s.m.InMap(loc):
			speed.Set(lv.GhostTunnelSpeed())
		case g.Name == component.Blinky && session.PelletsLeft <= lv.Elroy2Dots():
			speed.Set(lv.Elroy2Speed())
		case g.Name == component.Blinky && session.PelletsLeft <= lv.Elroy1Dots():
			speed.Set(lv.Elroy1Speed())
		default:
			speed.Set(lv.GhostNormalSpeed())
		}
	}
}

// houseBob bounces a waiting ghost vertically around its home spot and
// releases it once its dot counter fills.
func (s *GhostAI) houseBob(g *component.Ghost, pos *component.Position, heading *component.Heading) {
	if g.DotCounter >= g.ExitDots {
		g.Mode = component.ModeLeavingHouse
		return
	}
	if !heading.Dir.Horizontal() {
		if pos.Loc.Y >= g.Home.Y+0.5 {
			heading.Dir = maze.Down
		} else if pos.Loc.Y <= g.Home.Y-0.5 {
			heading.Dir = maze.Up
		}
	} else {
		heading.Dir = maze.Up
	}
	pos.Loc = pos.Loc.Advance(heading.Dir)
}

// leaveHouse slides the ghost to the door column, raises it through the
// door, and hands it to the global schedule heading left.
func (s *GhostAI) leaveHouse(g *component.Ghost, pos *component.Position, heading *component.Heading) {
	center := s.m.HouseCenter()
	exit := s.m.HouseExit()

	if pos.Loc.X != center.X {
		if pos.Loc.X < center.X {
			heading.Dir = maze.Right
		} else {
			heading.Dir = maze.Left
		}
		pos.Loc = pos.Loc.Advance(heading.Dir)
		return
	}
	if pos.Loc.Y < exit.Y {
		heading.Dir = maze.Up
		pos.Loc = pos.Loc.Advance(heading.Dir)
	}
	if pos.Loc.Y >= exit.Y {
		pos.Loc = exit
		g.Mode = s.globalMode()
		heading.Dir = maze.Left
		g.Directions = []maze.Direction{maze.Left}
	}
}

// eyesTarget is where eaten ghosts head: the corridor tile above the door.
func (s *GhostAI) eyesTarget() maze.Location {
	return s.m.HouseExit()
}

// eyesEnterHouse handles the final approach: slide onto the door column,
// descend through the door, revive at the house center. Returns false while
// the ghost is still roaming the corridors.
func (s *GhostAI) eyesEnterHouse(g *component.Ghost, pos *component.Position, heading *component.Heading) bool {
	exit := s.m.HouseExit()
	center := s.m.HouseCenter()

	if pos.Loc.X == exit.X && pos.Loc.Y < exit.Y {
		heading.Dir = maze.Down
		pos.Loc = pos.Loc.Advance(maze.Down)
		if pos.Loc.Y <= center.Y {
			pos.Loc = center
			g.Mode = component.ModeLeavingHouse
			g.DotCounter = g.ExitDots
			g.Directions = nil
		}
		return true
	}
	if pos.Loc.Y == exit.Y && math.Abs(pos.Loc.X-exit.X) <= 0.5 {
		switch {
		case pos.Loc.X < exit.X:
			heading.Dir = maze.Right
			pos.Loc = pos.Loc.Advance(maze.Right)
		case pos.Loc.X > exit.X:
			heading.Dir = maze.Left
			pos.Loc = pos.Loc.Advance(maze.Left)
		default:
			heading.Dir = maze.Down
			pos.Loc = pos.Loc.Advance(maze.Down)
		}
		return true
	}
	return false
}

// roam advances the ghost along its planned queue and replans one tile
// ahead at every tile edge.
func (s *GhostAI) roam(g *component.Ghost, pos *component.Position, heading *component.Heading, target maze.Location) {
	if len(g.Directions) == 0 {
		g.Directions = []maze.Direction{s.choose(pos.Loc.Tile(heading.Dir), heading.Dir, target, g)}
	}

	dir := g.Directions[0]
	heading.Dir = dir
	pos.Loc = pos.Loc.Advance(dir)

	if !pos.Loc.IsTileCenter() {
		return
	}
	g.Directions = g.Directions[1:]
	if len(g.Directions) == 0 {
		g.Directions = append(g.Directions, s.choose(pos.Loc, dir, target, g))
	}
	if len(g.Directions) < 2 {
		from := pos.Loc.Add(g.Directions[0].Vector())
		g.Directions = append(g.Directions, s.choose(from, g.Directions[0], target, g))
	}
}

// choose picks the next heading out of a tile: never reverse, skip blocked
// tiles, minimize squared distance to the target. Frightened ghosts pick at
// random instead. A dead end forces the reversal.
func (s *GhostAI) choose(from maze.Location, arriving maze.Direction, target maze.Location, g *component.Ghost) maze.Direction {
	blocked := s.m.Blocked
	if g.Mode == component.ModeEyes {
		blocked = s.m.BlockedForEyes
	}

	var candidates []maze.Direction
	best := arriving.Opposite()
	bestDist := math.Inf(1)
	for _, d := range maze.Directions() {
		if d == arriving.Opposite() {
			continue
		}
		next := from.Add(d.Vector())
		if blocked(next) {
			continue
		}
		candidates = append(candidates, d)
		if dist := next.DistSq(target); dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	if len(candidates) == 0 {
		return arriving.Opposite()
	}
	if g.Mode == component.ModeFrightened {
		return candidates[s.rng.Intn(len(candidates))]
	}
	return best
}

// target resolves this ghost's current destination tile, honoring prefab
// overrides. Blinky in Cruise Elroy keeps chasing even during scatter.
func (s *GhostAI) target(g *component.Ghost, ctx TargetContext, elroy bool) maze.Location {
	if g.Mode == component.ModeScatter && !elroy {
		return g.ScatterTarget
	}
	if fn, ok := s.overrides[g.Name]; ok && fn != nil {
		return fn(ctx)
	}
	return DefaultChaseTarget(g.Name, ctx)
}

func playerTile(w *ecs.World) (maze.Location, maze.Direction) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return maze.Location{}, maze.Left
	}
	pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
	if !ok {
		return maze.Location{}, maze.Left
	}
	dir := maze.Left
	if heading, ok := ecs.Get(w, e, component.HeadingComponent.Kind()); ok {
		dir = heading.Dir
	}
	return pos.Loc.Tile(dir), dir
}

func (s *GhostAI) ghostTile(w *ecs.World, name component.GhostName) maze.Location {
	var out maze.Location
	ecs.ForEach(w, component.GhostComponent.Kind(), func(e ecs.Entity, g *component.Ghost) {
		if g.Name != name {
			return
		}
		if pos, ok := ecs.Get(w, e, component.PositionComponent.Kind()); ok {
			heading, _ := ecs.Get(w, e, component.HeadingComponent.Kind())
			dir := maze.Left
			if heading != nil {
				dir = heading.Dir
			}
			out = pos.Loc.Tile(dir)
		}
	})
	return out
}

// FrightenGhosts flips every free ghost to frightened mode with a fresh
// timer, reversing it in place. Levels past the fright table do nothing.
func FrightenGhosts(w *ecs.World, session *component.Session) {
	seconds := session.Levels.FrightSeconds()
	if seconds <= 0 {
		return
	}
	ticks := int(seconds * TicksPerSecond)

	ecs.ForEach(w, component.GhostComponent.Kind(), func(e ecs.Entity, g *component.Ghost) {
		switch g.Mode {
		case component.ModeScatter, component.ModeChase:
			g.Mode = component.ModeFrightened
			g.FrightTicks = ticks
			if heading, ok := ecs.Get(w, e, component.HeadingComponent.Kind()); ok {
				g.Directions = []maze.Direction{heading.Dir.Opposite()}
			}
		case component.ModeFrightened:
			g.FrightTicks = ticks
			g.Flashing = false
		}
	})
	session.GhostChain = 0
}
