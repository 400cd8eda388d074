package system

import (
	"pacman/assets"
	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/ecs/render"
	"pacman/maze"
)

const (
	firstFruitPellets  = 70
	secondFruitPellets = 170
	fruitSeconds       = 9.5
)

// Bonus spawns the level fruit at the two pellet thresholds and scores it
// when the player reaches it before it times out.
type Bonus struct {
	reg     *render.Registry
	spawnAt maze.Location

	spawned [2]bool
}

func NewBonus(reg *render.Registry, spawnAt maze.Location) *Bonus {
	return &Bonus{reg: reg, spawnAt: spawnAt}
}

func (s *Bonus) Update(w *ecs.World) {
	session := currentSession(w)
	if session == nil {
		return
	}

	if session.PelletsEaten >= firstFruitPellets && !s.spawned[0] {
		s.spawned[0] = true
		s.spawn(w, session)
	}
	if session.PelletsEaten >= secondFruitPellets && !s.spawned[1] {
		s.spawned[1] = true
		s.spawn(w, session)
	}

	playerLoc, _ := playerTile(w)
	ecs.ForEach2(w, component.BonusComponent.Kind(), component.PositionComponent.Kind(),
		func(e ecs.Entity, b *component.Bonus, pos *component.Position) {
			b.Ticks--
			if b.Ticks <= 0 {
				ecs.DestroyEntity(w, e)
				return
			}
			// The fruit sits between two columns; either tile eats it.
			if pos.Loc.DistSq(playerLoc) > 0.3 {
				return
			}
			points := b.Symbol.Points()
			session.Score += points
			triggerPlayerSound(w, assets.SoundFruit)
			w.Events().Push(ecs.Event{Type: EventFruitEaten, Data: FruitEaten{Symbol: b.Symbol, Points: points}})
			ecs.DestroyEntity(w, e)
		})
}

func (s *Bonus) spawn(w *ecs.World, session *component.Session) {
	symbol := session.Levels.BonusSymbol()
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.BonusComponent.Kind(), &component.Bonus{
		Symbol: symbol,
		Ticks:  int(fruitSeconds * TicksPerSecond),
	})
	ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Loc: s.spawnAt})
	sprite := &component.Sprite{ScaleX: 1, ScaleY: 1}
	if s.reg != nil {
		sprite.Image = s.reg.Fruit(symbol)
	}
	ecs.Add(w, e, component.SpriteComponent.Kind(), sprite)
	ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerBonus})
	ecs.Add(w, e, component.NoWrapComponent.Kind(), &component.NoWrap{})
}
