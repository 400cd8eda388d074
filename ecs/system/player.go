package system

import (
	"math"

	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/maze"
)

// PlayerMovement steers and advances the player. Turns commit only at tile
// centers; reversals along the current axis apply immediately.
type PlayerMovement struct {
	m *maze.Map
}

func NewPlayerMovement(m *maze.Map) *PlayerMovement {
	return &PlayerMovement{m: m}
}

func (s *PlayerMovement) Update(w *ecs.World) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
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
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}

	session := currentSession(w)
	if session != nil {
		if frightActive(w) {
			speed.Set(session.Levels.PlayerFrightSpeed())
		} else {
			speed.Set(session.Levels.PlayerSpeed())
		}
	}

	if in.Pressed && hasDirection(s.m.PossibleDirections(pos.Loc), in.Want) {
		heading.Dir = in.Want
	}

	speed.Tick()
	moved := false
	if !speed.ShouldMiss {
		blocked := pos.Loc.IsTileCenter() && s.m.Blocked(pos.Loc.NextTile(heading.Dir))
		player.Blocked = blocked
		if !blocked {
			pos.Loc = pos.Loc.Advance(heading.Dir)
			// Cornering: drift the off-axis coordinate back to the
			// corridor center.
			switch heading.Dir {
			case maze.Up, maze.Down:
				pos.Loc.X = towardCenter(pos.Loc.X)
			case maze.Left, maze.Right:
				pos.Loc.Y = towardCenter(pos.Loc.Y)
			}
			moved = true
		}
	}

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Rotation = heading.Dir.Rotation()
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		if moved {
			anim.Play("chomp")
		} else {
			anim.Play("idle")
		}
	}
}

// towardCenter moves an off-axis coordinate one advancement delta toward
// the nearest tile center.
func towardCenter(v float64) float64 {
	center := math.Round(v)
	switch {
	case v < center:
		return v + maze.AdvancementDelta
	case v > center:
		return v - maze.AdvancementDelta
	default:
		return v
	}
}

// frightActive reports whether any ghost is currently frightened.
func frightActive(w *ecs.World) bool {
	active := false
	ecs.ForEach(w, component.GhostComponent.Kind(), func(_ ecs.Entity, g *component.Ghost) {
		if g.Mode == component.ModeFrightened {
			active = true
		}
	})
	return active
}

func currentSession(w *ecs.World) *component.Session {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	session, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	return session
}

func hasDirection(dirs []maze.Direction, d maze.Direction) bool {
	for _, have := range dirs {
		if have == d {
			return true
		}
	}
	return false
}
