package entity

import (
	"fmt"
	"image/color"

	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/ecs/render"
	"pacman/levels"
	"pacman/maze"
)

// maxLifeIcons caps the spare-life row like the arcade HUD.
const maxLifeIcons = 5

var (
	hudWhite  = color.RGBA{R: 222, G: 222, B: 255, A: 255}
	hudYellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	hudRed    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	hudCyan   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// SpawnHUD creates the score rows above the board and the life icon row
// below it.
func SpawnHUD(w *ecs.World, reg *render.Registry) {
	spawnLabel(w, maze.Loc(3, 33), "1UP", hudWhite, component.LayerHUD, func(e ecs.Entity) {
		ecs.Add(w, e, component.BlinkComponent.Kind(), &component.Blink{IntervalTicks: 26})
	})
	spawnLabel(w, maze.Loc(4.5, 32), "", hudWhite, component.LayerHUD, func(e ecs.Entity) {
		ecs.Add(w, e, component.ScoreBindingComponent.Kind(), &component.ScoreBinding{Kind: component.ScoreCurrent})
	})
	spawnLabel(w, maze.Loc(13.5, 33), "HIGH SCORE", hudWhite, component.LayerHUD, nil)
	spawnLabel(w, maze.Loc(14.5, 32), "", hudWhite, component.LayerHUD, func(e ecs.Entity) {
		ecs.Add(w, e, component.ScoreBindingComponent.Kind(), &component.ScoreBinding{Kind: component.ScoreHigh})
	})

	for i := 0; i < maxLifeIcons; i++ {
		e := ecs.CreateEntity(w)
		ecs.Add(w, e, component.LifeIconComponent.Kind(), &component.LifeIcon{Index: i})
		ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Loc: maze.Loc(float64(2+2*i), -1)})
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: reg.LifeIcon, Hidden: true})
		ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerHUD})
		ecs.Add(w, e, component.NoWrapComponent.Kind(), &component.NoWrap{})
	}
}

// SpawnLevelCounter rebuilds the fruit row in the bottom right corner,
// most recent level first.
func SpawnLevelCounter(w *ecs.World, reg *render.Registry, lv *levels.Levels) {
	ecs.ForEach(w, component.LevelCounterComponent.Kind(), func(e ecs.Entity, _ *component.LevelCounter) {
		ecs.DestroyEntity(w, e)
	})
	for i, s := range lv.CounterSymbols() {
		e := ecs.CreateEntity(w)
		ecs.Add(w, e, component.LevelCounterComponent.Kind(), &component.LevelCounter{})
		ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Loc: maze.Loc(float64(25-2*i), -1)})
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: reg.Fruit(s)})
		ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerHUD})
		ecs.Add(w, e, component.NoWrapComponent.Kind(), &component.NoWrap{})
	}
}

// SpawnReadySign shows READY! below the ghost house.
func SpawnReadySign(w *ecs.World) ecs.Entity {
	return spawnLabel(w, maze.Loc(13.5, 13), "READY!", hudYellow, component.LayerOnBoardText, func(e ecs.Entity) {
		ecs.Add(w, e, component.ReadySignComponent.Kind(), &component.ReadySign{})
	})
}

// SpawnGameOverSign shows GAME OVER in the same spot.
func SpawnGameOverSign(w *ecs.World) ecs.Entity {
	return spawnLabel(w, maze.Loc(13.5, 13), "GAME OVER", hudRed, component.LayerOnBoardText, func(e ecs.Entity) {
		ecs.Add(w, e, component.GameOverSignComponent.Kind(), &component.GameOverSign{})
	})
}

// SpawnScorePopup shows transient points where a ghost or fruit was eaten.
func SpawnScorePopup(w *ecs.World, loc maze.Location, points, ticks int) ecs.Entity {
	e := spawnLabel(w, loc, fmt.Sprintf("%d", points), hudCyan, component.LayerOnBoardText, nil)
	ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Ticks: ticks})
	return e
}

func spawnLabel(w *ecs.World, loc maze.Location, text string, col color.Color, layer int, extra func(ecs.Entity)) ecs.Entity {
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Loc: loc})
	ecs.Add(w, e, component.LabelComponent.Kind(), &component.Label{Text: text, Color: col, Scale: 1})
	ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer})
	ecs.Add(w, e, component.NoWrapComponent.Kind(), &component.NoWrap{})
	if extra != nil {
		extra(e)
	}
	return e
}
